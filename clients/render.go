package clients

import (
	"context"
	"net/http"

	"github.com/buildercards/workflow-pipeline/workflow"
)

// --- Rendering (/render) ---
type RenderReq struct {
	RunID   string            `json:"run_id"`
	Profile *workflow.Profile `json:"profile"`
	Cards   []workflow.Card   `json:"cards"`
	Partial bool              `json:"partial"`
}
type RenderResp struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

func (h *HTTP) Render(ctx context.Context, url string, req RenderReq) (*RenderResp, error) {
	var out RenderResp
	if err := h.do(ctx, "render", http.MethodPost, url+"/render", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
