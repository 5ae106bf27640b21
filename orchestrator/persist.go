package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/buildercards/workflow-pipeline/workflow"
)

type PersistBundle struct {
	RunID       string                   `json:"run_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	Segments    int                      `json:"segments"`
	Entities    int                      `json:"entities"`
	Partial     bool                     `json:"partial"`
	Profile     *workflow.Profile        `json:"profile"`
	Cards       []workflow.Card          `json:"cards"`
	Warnings    []workflow.SchemaWarning `json:"warnings,omitempty"`
}

func mkRunDir(outputsRoot, runID string) (string, error) {
	dir := filepath.Join(outputsRoot, "run_"+runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// persist writes profile.json and skips.json under outputsRoot/run_<id>.
func persist(outputsRoot string, res *Result) (dir string, err error) {
	dir, err = mkRunDir(outputsRoot, res.RunID)
	if err != nil {
		return "", err
	}

	bundle := PersistBundle{
		RunID:       res.RunID,
		GeneratedAt: time.Now().UTC(),
		Segments:    len(res.Segments),
		Entities:    res.Profile.Count(),
		Partial:     res.Partial,
		Profile:     res.Profile,
		Cards:       res.Cards,
		Warnings:    res.Warnings,
	}
	if err = writeJSON(filepath.Join(dir, "profile.json"), bundle); err != nil {
		return "", err
	}
	// skips stay out of the profile so renderers never see them
	if err = writeJSON(filepath.Join(dir, "skips.json"), res.Skipped); err != nil {
		return "", err
	}
	return dir, nil
}
