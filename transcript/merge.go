package transcript

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ChunkTranscript is the text the transcription collaborator returned for
// one Chunk. Lines carry absolute [MM:SS] timestamps.
type ChunkTranscript struct {
	Number int    `json:"chunk_number"`
	Start  int    `json:"start_seconds"`
	End    int    `json:"end_seconds"`
	Text   string `json:"transcript_text"`
}

var reStamp = regexp.MustCompile(`\[(?:(\d{1,2}):)?(\d{1,2}):(\d{2})\]`)

// ErrNoChunks is returned when there is nothing to merge.
var ErrNoChunks = errors.New("no transcript chunks to merge")

// LineTimestamp returns the first [MM:SS] or [HH:MM:SS] stamp in line, in seconds.
func LineTimestamp(line string) (int, bool) {
	m := reStamp.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	h := 0
	if m[1] != "" {
		h, _ = strconv.Atoi(m[1])
	}
	mm, _ := strconv.Atoi(m[2])
	ss, _ := strconv.Atoi(m[3])
	return h*3600 + mm*60 + ss, true
}

// MergeChunks joins overlapping chunk transcripts. Lines of a later chunk
// stamped at or before the previous chunk's end minus tolerance are
// treated as overlap and dropped.
func MergeChunks(chunks []ChunkTranscript, tolerance int) (string, error) {
	if len(chunks) == 0 {
		return "", ErrNoChunks
	}
	sorted := append([]ChunkTranscript(nil), chunks...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	var merged []string
	for i, c := range sorted {
		lines := strings.Split(strings.TrimSpace(c.Text), "\n")
		if i == 0 {
			merged = append(merged, lines...)
			continue
		}
		cutoff := sorted[i-1].End - tolerance
		for _, line := range lines {
			ts, ok := LineTimestamp(line)
			if !ok || ts > cutoff {
				merged = append(merged, line)
			}
		}
	}
	return strings.Join(merged, "\n"), nil
}

// DropBackwards removes stamped lines whose timestamp is earlier than the
// last kept stamp. Unstamped lines are kept.
func DropBackwards(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0:0]
	last := -1
	for _, line := range lines {
		ts, ok := LineTimestamp(line)
		if !ok {
			out = append(out, line)
			continue
		}
		if ts >= last {
			out = append(out, line)
			last = ts
		}
	}
	return strings.Join(out, "\n")
}

// CheckComplete reports whether the last stamped line reaches within
// tolerance seconds of expected, with a human-readable reason.
func CheckComplete(text string, expected, tolerance int) (bool, string) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	last, found := 0, false
	for i := len(lines) - 1; i >= 0; i-- {
		if ts, ok := LineTimestamp(lines[i]); ok {
			last, found = ts, true
			break
		}
	}
	if !found {
		return false, "no timestamps found in transcript"
	}
	if last >= expected-tolerance {
		return true, fmt.Sprintf("complete: final timestamp %ds (expected ~%ds)", last, expected)
	}
	return false, fmt.Sprintf("incomplete: final timestamp %ds, missing ~%ds of %ds", last, expected-last, expected)
}

// ProcessMerge merges chunks, drops backwards lines and fails if the
// result does not cover the expected duration.
func ProcessMerge(chunks []ChunkTranscript, expected, mergeTolerance, completeTolerance int) (string, error) {
	merged, err := MergeChunks(chunks, mergeTolerance)
	if err != nil {
		return "", err
	}
	merged = DropBackwards(merged)
	if ok, msg := CheckComplete(merged, expected, completeTolerance); !ok {
		return "", fmt.Errorf("transcript validation failed: %s", msg)
	}
	return merged, nil
}
