package transcript

const (
	RoleInterviewer = "Interviewer"
	RoleInterviewee = "Interviewee"
)

// AssignRoles maps raw diarization labels to interview roles: whoever
// speaks first is the interviewer, everyone else an interviewee.
func AssignRoles(segs []Segment) map[string]string {
	roles := map[string]string{}
	for _, s := range segs {
		if _, ok := roles[s.Speaker]; ok {
			continue
		}
		if len(roles) == 0 {
			roles[s.Speaker] = RoleInterviewer
			continue
		}
		roles[s.Speaker] = RoleInterviewee
	}
	return roles
}

// ApplyRoles returns a copy of segs with speakers relabelled through roles.
// Labels missing from roles are left as they are.
func ApplyRoles(segs []Segment, roles map[string]string) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		if r, ok := roles[s.Speaker]; ok {
			s.Speaker = r
		}
		out[i] = s
	}
	return out
}
