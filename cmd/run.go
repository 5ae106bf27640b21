package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildercards/workflow-pipeline/orchestrator"
	"github.com/buildercards/workflow-pipeline/tracing"
)

func (a *app) runCmd() *cobra.Command {
	var in orchestrator.Input
	c := &cobra.Command{
		Use:   "run",
		Short: "Map extractions onto a transcript and build the workflow profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.SegmentsPath == "" && in.TranscriptPath == "" && in.TranscriptID == "" {
				return fmt.Errorf("one of --segments, --transcript or --transcript-id is required")
			}
			ctx := cmd.Context()
			shutdown, err := tracing.Init(ctx, a.conf.Tracing, a.conf.Pipeline.Name, a.conf.Pipeline.Version, nil, a.log)
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					a.log.WithError(err).Warn("tracing shutdown")
				}
			}()

			// a failed render hand-off still returns the persisted result
			res, err := orchestrator.NewPipeline(a.conf, a.log).Run(ctx, in)
			if res != nil {
				if perr := printJSON(cmd.OutOrStdout(), res); perr != nil && err == nil {
					err = perr
				}
			}
			return err
		},
	}
	f := c.Flags()
	f.StringVar(&in.SegmentsPath, "segments", "", "diarized segments JSON")
	f.StringVar(&in.TranscriptPath, "transcript", "", "merged 'Speaker: [MM:SS] text' transcript")
	f.StringVar(&in.TranscriptID, "transcript-id", "", "fetch segments from the transcription service")
	f.Float64Var(&in.Duration, "duration", 0, "audio length in seconds, closes the last transcript line")
	f.BoolVar(&in.Roles, "roles", false, "relabel speakers as Interviewer/Interviewee")
	f.StringVar(&in.ExtractionsPath, "extractions", "", "extractions JSON (skips the extraction service)")
	return c
}
