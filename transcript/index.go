package transcript

import (
	"sort"
	"unicode/utf8"
)

// Span is the [Start, End) character range one segment occupies in the
// concatenated transcript.
type Span struct {
	Segment int
	Start   int
	End     int
}

func (s Span) Len() int { return s.End - s.Start }

// Index maps global character positions to segments. It is built once per
// segment sequence and never mutated, so it can be shared between goroutines.
type Index struct {
	segs  []Segment
	spans []Span
	total int
}

// Build computes the cumulative character offsets of segs. An empty input
// yields an empty index.
func Build(segs []Segment) *Index {
	x := &Index{
		segs:  append([]Segment(nil), segs...),
		spans: make([]Span, len(segs)),
	}
	sep := utf8.RuneCountInString(Separator)
	pos := 0
	for i, s := range segs {
		if i > 0 {
			pos += sep
		}
		n := s.Len()
		x.spans[i] = Span{Segment: i, Start: pos, End: pos + n}
		pos += n
	}
	x.total = pos
	return x
}

// Total is the length of the concatenated transcript.
func (x *Index) Total() int { return x.total }

// Len is the number of indexed segments.
func (x *Index) Len() int { return len(x.spans) }

// Segment returns the i-th indexed segment.
func (x *Index) Segment(i int) Segment { return x.segs[i] }

// Span returns the character range of the i-th segment.
func (x *Index) Span(i int) Span { return x.spans[i] }

// Spans returns a copy of all spans in segment order.
func (x *Index) Spans() []Span { return append([]Span(nil), x.spans...) }

// Locate resolves pos as the start of a span. A position on a boundary
// belongs to the segment that starts there; zero-length segments never win
// over a non-empty neighbour. pos == Total resolves to the end of the last
// non-empty segment.
func (x *Index) Locate(pos int) (seg, local int, err error) {
	if err := x.check(pos); err != nil {
		return 0, 0, err
	}
	if pos == x.total {
		seg = x.tail()
		return seg, x.spans[seg].Len(), nil
	}
	// First span ending after pos. Its start is the previous span's end,
	// so it is never empty.
	seg = sort.Search(len(x.spans), func(i int) bool { return x.spans[i].End > pos })
	return seg, x.local(seg, pos), nil
}

// LocateEnd resolves pos as an exclusive end offset: a position on a
// boundary belongs to the segment it closes.
func (x *Index) LocateEnd(pos int) (seg, local int, err error) {
	if err := x.check(pos); err != nil {
		return 0, 0, err
	}
	if pos == 0 {
		return x.Locate(0)
	}
	// First span reaching pos. For pos > 0 it is non-empty.
	seg = sort.Search(len(x.spans), func(i int) bool { return x.spans[i].End >= pos })
	return seg, x.local(seg, pos), nil
}

func (x *Index) check(pos int) error {
	if len(x.spans) == 0 || pos < 0 || pos > x.total {
		return &RangeError{Pos: pos, Total: x.total}
	}
	return nil
}

// tail is the last non-empty segment, or the last segment when all are empty.
func (x *Index) tail() int {
	for i := len(x.spans) - 1; i >= 0; i-- {
		if x.spans[i].Len() > 0 {
			return i
		}
	}
	return len(x.spans) - 1
}

func (x *Index) local(seg, pos int) int {
	l := pos - x.spans[seg].Start
	if l < 0 {
		// pos sits inside a separator
		return 0
	}
	return l
}
