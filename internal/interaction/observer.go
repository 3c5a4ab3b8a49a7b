package interaction

import (
	"log/slog"
)

// observer reports recognizer outcomes to the logger and metrics.
type observer struct {
	log     *slog.Logger
	metrics *Metrics
}

func (o observer) recognized(gt GestureType, el Element, attrs ...any) {
	o.metrics.recognize(gt)
	args := append([]any{"gesture", string(gt), "family", gt.Family().String(), "element", elementName(el)}, attrs...)
	o.log.Debug("gesture recognized", args...)
}

func (o observer) discarded(el Element, count int) {
	o.metrics.discard()
	o.log.Debug("click burst discarded", "element", elementName(el), "count", count)
}

// run invokes actions in order, skipping nil ones.
func run(actions []Action, el Element) {
	for _, a := range actions {
		if a != nil {
			a(el)
		}
	}
}
