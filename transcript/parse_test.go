package transcript

import "testing"

const interview = `TRANSCRIPT
Interviewer: [00:00] Hi there
Interviewee: [00:05] Hello
continued line

Interviewer: [01:10] Next question`

func TestParseLines(t *testing.T) {
	got := ParseLines(interview, 90)
	want := []Segment{
		seg(0, 5, "Interviewer", "Hi there"),
		seg(5, 70, "Interviewee", "Hello continued line"),
		seg(70, 90, "Interviewer", "Next question"),
	}
	if len(got) != len(want) {
		t.Fatalf("segments: want=%d got=%d (%+v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: want=%+v got=%+v", i, want[i], got[i])
		}
	}
	if err := Validate(got); err != nil {
		t.Fatalf("parsed segments should validate: %v", err)
	}
}

func TestParseLinesUnknownDuration(t *testing.T) {
	got := ParseLines(interview, 0)
	last := got[len(got)-1]
	if last.End != last.Start {
		t.Fatalf("last segment: want end == start, got %+v", last)
	}
}
