package clients

import (
	"context"
	"net/http"
	"net/url"

	"github.com/buildercards/workflow-pipeline/transcript"
)

// --- Transcription (/transcripts/{id}/segments) ---
type SegmentsResp struct {
	TranscriptID string               `json:"transcript_id"`
	Language     string               `json:"language"`
	Duration     float64              `json:"duration_s"`
	Segments     []transcript.Segment `json:"segments"`
}

// Segments fetches the diarized segments of a finished transcription job.
func (h *HTTP) Segments(ctx context.Context, baseURL, transcriptID string) (*SegmentsResp, error) {
	var out SegmentsResp
	u := baseURL + "/transcripts/" + url.PathEscape(transcriptID) + "/segments"
	if err := h.do(ctx, "segments", http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
