// Package transcript indexes diarized transcript segments by character
// offset and converts offsets back into audio timestamps.
//
// Character positions are counted in Unicode code points over the
// concatenation produced by Concat. The extraction collaborator computes
// its offsets against the same string, so anything that builds extraction
// input must go through Concat.
package transcript

import (
	"strings"
	"unicode/utf8"
)

// Segment is one speaker-attributed span of transcript.
type Segment struct {
	Start   float64 `json:"start_s"` // sec, inclusive
	End     float64 `json:"end_s"`   // sec, exclusive
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
}

// Len is the segment text length in characters.
func (s Segment) Len() int { return utf8.RuneCountInString(s.Text) }

// Duration in seconds.
func (s Segment) Duration() float64 { return s.End - s.Start }

// Separator is inserted between segment texts in the concatenation.
// Offsets in Index include it, so changing it here keeps both sides in step.
const Separator = ""

// Concat joins segment texts exactly the way Build counts them.
func Concat(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// Validate checks the ordering assumptions Locate and Interpolate rely on.
// It returns the first *DataError found.
func Validate(segs []Segment) error {
	for i, s := range segs {
		if s.End < s.Start {
			return &DataError{Index: i, Reason: "negative duration", Start: s.Start, End: s.End}
		}
		if strings.TrimSpace(s.Speaker) == "" {
			return &DataError{Index: i, Reason: "empty speaker", Start: s.Start, End: s.End}
		}
		if i > 0 && s.Start < segs[i-1].Start {
			return &DataError{Index: i, Reason: "start before previous segment", Start: s.Start, End: s.End}
		}
	}
	return nil
}
