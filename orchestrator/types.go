package orchestrator

import (
	"github.com/buildercards/workflow-pipeline/transcript"
	"github.com/buildercards/workflow-pipeline/workflow"
)

// Input names where one run takes its segments and extractions from.
// Exactly one segment source and at most one extraction source is used;
// without ExtractionsPath the extraction service is called.
type Input struct {
	SegmentsPath   string  // JSON []transcript.Segment
	TranscriptPath string  // "Speaker: [MM:SS] text" lines
	TranscriptID   string  // fetched from the transcription service
	Duration       float64 // sec, closes the last parsed line
	Roles          bool    // relabel speakers as Interviewer/Interviewee

	ExtractionsPath string // JSON []workflow.Extraction
}

// textChunk is a slice of the concatenated transcript sent to the
// extraction service. Base is its offset in the full concatenation.
type textChunk struct {
	Number int
	Base   int
	Text   string
}

type Result struct {
	RunID     string                   `json:"run_id"`
	Segments  []transcript.Segment     `json:"-"`
	Profile   *workflow.Profile        `json:"profile"`
	Cards     []workflow.Card          `json:"cards"`
	Skipped   []workflow.Skip          `json:"skipped"`
	Warnings  []workflow.SchemaWarning `json:"warnings,omitempty"`
	Partial   bool                     `json:"partial"`
	OutputDir string                   `json:"output_dir,omitempty"`
}
