package transcript

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		segs    []Segment
		wantIdx int // -1 for no error
	}{
		{"nil", nil, -1},
		{"sorted", twoSpeakers(), -1},
		{"equal starts", []Segment{seg(0, 1, "A", "a"), seg(0, 2, "B", "b")}, -1},
		{"unsorted", []Segment{seg(10, 20, "A", "a"), seg(0, 5, "B", "b")}, 1},
		{"negative duration", []Segment{seg(0, 5, "A", "a"), seg(6, 5, "B", "b")}, 1},
		{"empty speaker", []Segment{seg(0, 5, " ", "a")}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.segs)
			if tc.wantIdx < 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var derr *DataError
			if !errors.As(err, &derr) {
				t.Fatalf("want DataError, got %v", err)
			}
			if derr.Index != tc.wantIdx {
				t.Fatalf("index: want=%d got=%d", tc.wantIdx, derr.Index)
			}
		})
	}
}

func TestAssignRoles(t *testing.T) {
	segs := []Segment{
		seg(0, 1, "B", "hi"),
		seg(1, 2, "A", "hello"),
		seg(2, 3, "B", "so"),
		seg(3, 4, "C", "hey"),
	}
	roles := AssignRoles(segs)
	if roles["B"] != RoleInterviewer || roles["A"] != RoleInterviewee || roles["C"] != RoleInterviewee {
		t.Fatalf("roles: got=%v", roles)
	}
	out := ApplyRoles(segs, roles)
	if out[0].Speaker != RoleInterviewer || out[1].Speaker != RoleInterviewee {
		t.Fatalf("relabel: got %q, %q", out[0].Speaker, out[1].Speaker)
	}
	if segs[0].Speaker != "B" {
		t.Fatalf("ApplyRoles mutated its input")
	}
}
