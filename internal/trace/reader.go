package trace

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dshills/gestures/internal/input"
)

// Parse reads every record from r. Blank lines and lines starting with
// '#' are skipped.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		rec, err := decode(line, text)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return records, nil
}

func decode(line int, data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return Record{}, &ParseError{Line: line, Message: "invalid JSON"}
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return Record{}, &ParseError{Line: line, Message: "expected an object"}
	}

	kindName := res.Get("kind").String()
	kind, ok := input.ParseEventKind(kindName)
	if !ok {
		return Record{}, &ParseError{Line: line, Message: fmt.Sprintf("kind %q", kindName), Err: ErrUnknownKind}
	}

	rec := Record{
		Kind:    kind,
		Element: res.Get("element").String(),
		X:       res.Get("x").Float(),
		Y:       res.Get("y").Float(),
		Key:     res.Get("key").String(),
		Delay:   time.Duration(res.Get("delay_ms").Int()) * time.Millisecond,
	}
	if rec.Delay < 0 {
		return Record{}, &ParseError{Line: line, Message: "negative delay"}
	}
	if kind.IsKey() && rec.Key == "" {
		return Record{}, &ParseError{Line: line, Message: "missing key", Err: ErrMissingKey}
	}
	return rec, nil
}
