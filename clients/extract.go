package clients

import (
	"context"
	"net/http"

	"github.com/buildercards/workflow-pipeline/workflow"
)

// --- Extraction (/extract) ---
type ExtractReq struct {
	Text       string   `json:"text"`
	Chunk      int      `json:"chunk"`
	Categories []string `json:"categories,omitempty"`
}

// ExtractResp offsets are relative to ExtractReq.Text.
type ExtractResp struct {
	Extractions []workflow.Extraction `json:"extractions"`
	Model       string                `json:"model,omitempty"`
}

func (h *HTTP) Extract(ctx context.Context, url string, req ExtractReq) (*ExtractResp, error) {
	var out ExtractResp
	if err := h.do(ctx, "extract", http.MethodPost, url+"/extract", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
