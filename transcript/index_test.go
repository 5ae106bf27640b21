package transcript

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func seg(start, end float64, speaker, text string) Segment {
	return Segment{Start: start, End: end, Speaker: speaker, Text: text}
}

func twoSpeakers() []Segment {
	return []Segment{
		seg(0, 10, "A", "hello world"),
		seg(10, 20, "B", "goodbye"),
	}
}

func TestBuildEmpty(t *testing.T) {
	x := Build(nil)
	if x.Total() != 0 || x.Len() != 0 {
		t.Fatalf("empty index: total=%d len=%d", x.Total(), x.Len())
	}
	_, _, err := x.Locate(0)
	var rerr *RangeError
	if !errors.As(err, &rerr) {
		t.Fatalf("Locate on empty index: want RangeError, got %v", err)
	}
}

func TestBuildOffsets(t *testing.T) {
	x := Build([]Segment{
		seg(0, 10, "A", "hello world"),
		seg(10, 10, "A", ""),
		seg(10, 20, "B", "goodbye"),
	})
	want := []Span{{0, 0, 11}, {1, 11, 11}, {2, 11, 18}}
	for i, w := range want {
		if got := x.Span(i); got != w {
			t.Errorf("span %d: want=%+v got=%+v", i, w, got)
		}
	}
	if x.Total() != 18 {
		t.Fatalf("total: want=18 got=%d", x.Total())
	}
}

func TestBuildCountsCharactersNotBytes(t *testing.T) {
	x := Build([]Segment{seg(0, 1, "A", "héllo"), seg(1, 2, "B", "日本")})
	if x.Total() != 7 {
		t.Fatalf("total: want=7 got=%d", x.Total())
	}
	if got := x.Span(1).Start; got != 5 {
		t.Fatalf("second span start: want=5 got=%d", got)
	}
}

func TestConcatMatchesIndex(t *testing.T) {
	segs := []Segment{seg(0, 1, "A", "héllo "), seg(1, 1, "A", ""), seg(1, 3, "B", "wörld")}
	text := Concat(segs)
	x := Build(segs)
	if n := utf8.RuneCountInString(text); n != x.Total() {
		t.Fatalf("concat length %d != index total %d", n, x.Total())
	}
	runes := []rune(text)
	for i := 0; i < x.Len(); i++ {
		sp := x.Span(i)
		if got := string(runes[sp.Start:sp.End]); got != segs[i].Text {
			t.Errorf("span %d text: want=%q got=%q", i, segs[i].Text, got)
		}
	}
}

func TestLocateRoundTrip(t *testing.T) {
	cases := map[string][]Segment{
		"two speakers": twoSpeakers(),
		"zero length middle": {
			seg(0, 5, "A", "abc"), seg(5, 5, "A", ""), seg(5, 9, "B", "defg"),
		},
		"leading and trailing empty": {
			seg(0, 0, "A", ""), seg(0, 3, "A", "xy"), seg(3, 3, "B", ""),
		},
		"single char segments": {
			seg(0, 1, "A", "a"), seg(1, 2, "B", "b"), seg(2, 3, "A", "c"),
		},
		"all empty": {
			seg(0, 0, "A", ""), seg(0, 0, "B", ""),
		},
	}
	for name, segs := range cases {
		t.Run(name, func(t *testing.T) {
			x := Build(segs)
			for p := 0; p <= x.Total(); p++ {
				for _, locate := range []func(int) (int, int, error){x.Locate, x.LocateEnd} {
					i, local, err := locate(p)
					if err != nil {
						t.Fatalf("locate(%d): %v", p, err)
					}
					sp := x.Span(i)
					if sp.Start+local != p {
						t.Fatalf("locate(%d): seg=%d local=%d reconstructs %d", p, i, local, sp.Start+local)
					}
					if local < 0 || local > sp.Len() {
						t.Fatalf("locate(%d): local %d outside segment %d of length %d", p, local, i, sp.Len())
					}
				}
			}
		})
	}
}

func TestLocateBoundaryPrefersLaterSegment(t *testing.T) {
	x := Build([]Segment{seg(0, 5, "A", strings.Repeat("a", 10)), seg(5, 8, "B", "bbbbb")})
	i, local, err := x.Locate(10)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if i != 1 || local != 0 {
		t.Fatalf("Locate(10): want=(1,0) got=(%d,%d)", i, local)
	}
}

func TestLocateBoundaryZeroLengthTail(t *testing.T) {
	x := Build([]Segment{seg(0, 5, "A", strings.Repeat("a", 10)), seg(5, 5, "B", "")})
	i, local, err := x.Locate(10)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if i != 0 || local != 10 {
		t.Fatalf("Locate(10): want=(0,10) got=(%d,%d)", i, local)
	}
}

func TestLocateSkipsZeroLengthMiddle(t *testing.T) {
	x := Build([]Segment{
		seg(0, 5, "A", strings.Repeat("a", 10)),
		seg(5, 5, "S", ""),
		seg(5, 9, "B", "bbbbb"),
	})
	i, local, err := x.Locate(10)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if i != 2 || local != 0 {
		t.Fatalf("Locate(10): want=(2,0) got=(%d,%d)", i, local)
	}
	i, local, err = x.LocateEnd(10)
	if err != nil {
		t.Fatalf("LocateEnd: %v", err)
	}
	if i != 0 || local != 10 {
		t.Fatalf("LocateEnd(10): want=(0,10) got=(%d,%d)", i, local)
	}
}

func TestLocateTotalResolvesToLastNonEmpty(t *testing.T) {
	x := Build(append(twoSpeakers(), seg(20, 20, "C", "")))
	for _, locate := range []func(int) (int, int, error){x.Locate, x.LocateEnd} {
		i, local, err := locate(18)
		if err != nil {
			t.Fatalf("locate: %v", err)
		}
		if i != 1 || local != 7 {
			t.Fatalf("locate(18): want=(1,7) got=(%d,%d)", i, local)
		}
	}
}

func TestLocateAllEmpty(t *testing.T) {
	x := Build([]Segment{seg(0, 0, "A", ""), seg(0, 0, "B", "")})
	i, local, err := x.Locate(0)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if i != 1 || local != 0 {
		t.Fatalf("Locate(0): want=(1,0) got=(%d,%d)", i, local)
	}
}

func TestLocateOutOfRange(t *testing.T) {
	x := Build(twoSpeakers())
	for _, p := range []int{-1, 19, 100} {
		_, _, err := x.Locate(p)
		var rerr *RangeError
		if !errors.As(err, &rerr) {
			t.Fatalf("Locate(%d): want RangeError, got %v", p, err)
		}
		if rerr.Pos != p || rerr.Total != 18 {
			t.Errorf("Locate(%d): got pos=%d total=%d", p, rerr.Pos, rerr.Total)
		}
		if !strings.Contains(err.Error(), "[0, 18]") {
			t.Errorf("error should name the valid range: %q", err.Error())
		}
		if _, _, err := x.LocateEnd(p); !errors.As(err, &rerr) {
			t.Fatalf("LocateEnd(%d): want RangeError, got %v", p, err)
		}
	}
}
