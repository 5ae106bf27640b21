package transcript

import "fmt"

// RangeError reports a character position outside [0, Total].
type RangeError struct {
	Pos      int
	Total    int
	Category string // set by callers that know which extraction failed
}

func (e *RangeError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("%s: offset %d out of range [0, %d]", e.Category, e.Pos, e.Total)
	}
	return fmt.Sprintf("offset %d out of range [0, %d]", e.Pos, e.Total)
}

// DataError reports a segment sequence that breaks the time ordering
// invariants. It is fatal for a whole mapping pass.
type DataError struct {
	Index  int
	Reason string
	Start  float64
	End    float64
}

func (e *DataError) Error() string {
	return fmt.Sprintf("segment %d: %s (start=%.3f end=%.3f)", e.Index, e.Reason, e.Start, e.End)
}
