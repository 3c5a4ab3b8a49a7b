// Package trace records input events as JSON lines and replays them onto a
// surface tree.
//
// Each line is one object:
//
//	{"kind":"contactstart","element":"board","x":10,"y":4,"delay_ms":0}
//	{"kind":"keydown","element":"board","key":"ctrl","delay_ms":35}
//
// delay_ms is the time since the previous record. element may be omitted
// for pointer records, in which case replay hit-tests x and y.
package trace
