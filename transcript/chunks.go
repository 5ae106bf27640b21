package transcript

import "fmt"

const (
	DefaultChunkSeconds   = 480
	DefaultOverlapSeconds = 30
)

// Chunk is one audio window handed to the transcription collaborator.
type Chunk struct {
	Number int `json:"chunk_number"` // 1-based
	Start  int `json:"start_seconds"`
	End    int `json:"end_seconds"`
}

// PlanChunks splits total seconds of audio into windows of length chunk
// that overlap by overlap seconds. The last window is cut at total.
func PlanChunks(total, chunk, overlap int) ([]Chunk, error) {
	if total <= 0 {
		return nil, fmt.Errorf("plan chunks: total duration must be positive, got %d", total)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("plan chunks: overlap cannot be negative, got %d", overlap)
	}
	if chunk <= overlap {
		return nil, fmt.Errorf("plan chunks: chunk %ds must be longer than overlap %ds", chunk, overlap)
	}
	step := chunk - overlap

	var out []Chunk
	for t0 := 0; t0 < total; t0 += step {
		t1 := min(t0+chunk, total)
		out = append(out, Chunk{Number: len(out) + 1, Start: t0, End: t1})
		if t0+step >= total {
			break
		}
	}
	return out, nil
}
