package transcript

import (
	"regexp"
	"strings"
)

var reLine = regexp.MustCompile(`^\s*([^:\[\]]+?)\s*:\s*(\[(?:\d{1,2}:)?\d{1,2}:\d{2}\])\s*(.*)$`)

// ParseLines turns "Speaker: [MM:SS] text" lines into segments. Each
// segment ends where the next one starts; the last one ends at duration,
// or at its own start when duration is unknown. Lines without a speaker
// stamp continue the previous segment.
func ParseLines(text string, duration float64) []Segment {
	var segs []Segment
	for _, line := range strings.Split(text, "\n") {
		m := reLine.FindStringSubmatch(line)
		if m == nil {
			cont := strings.TrimSpace(line)
			if cont == "" || len(segs) == 0 {
				continue
			}
			last := &segs[len(segs)-1]
			if last.Text == "" {
				last.Text = cont
			} else {
				last.Text += " " + cont
			}
			continue
		}
		ts, _ := LineTimestamp(m[2])
		segs = append(segs, Segment{
			Start:   float64(ts),
			Speaker: strings.TrimSpace(m[1]),
			Text:    strings.TrimSpace(m[3]),
		})
	}
	for i := range segs {
		end := duration
		if i+1 < len(segs) {
			end = segs[i+1].Start
		}
		segs[i].End = max(end, segs[i].Start)
	}
	return segs
}
