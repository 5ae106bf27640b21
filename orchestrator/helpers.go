package orchestrator

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/buildercards/workflow-pipeline/transcript"
	"github.com/buildercards/workflow-pipeline/workflow"
)

// chunkText cuts the concatenated transcript at segment boundaries into
// pieces of at most limit characters. A single segment longer than limit
// becomes its own piece. limit <= 0 yields one piece.
func chunkText(segs []transcript.Segment, limit int) []textChunk {
	idx := transcript.Build(segs)
	if idx.Total() == 0 {
		return nil
	}
	text := []rune(transcript.Concat(segs))
	if limit <= 0 {
		return []textChunk{{Number: 1, Base: 0, Text: string(text)}}
	}

	var out []textChunk
	flush := func(from, to int) {
		if to > from {
			out = append(out, textChunk{Number: len(out) + 1, Base: from, Text: string(text[from:to])})
		}
	}
	from, to := 0, 0
	for _, sp := range idx.Spans() {
		if sp.Len() == 0 {
			continue
		}
		if to > from && sp.End-from > limit {
			flush(from, to)
			from = sp.Start
		}
		to = sp.End
	}
	flush(from, to)
	return out
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func loadSegmentsFile(path string) ([]transcript.Segment, error) {
	var segs []transcript.Segment
	if err := readJSON(path, &segs); err != nil {
		return nil, err
	}
	return segs, nil
}

func loadTranscriptFile(path string, duration float64) ([]transcript.Segment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return transcript.ParseLines(string(b), duration), nil
}

func loadExtractionsFile(path string) ([]workflow.Extraction, error) {
	var exs []workflow.Extraction
	if err := readJSON(path, &exs); err != nil {
		return nil, err
	}
	return exs, nil
}
