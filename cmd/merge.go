package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildercards/workflow-pipeline/transcript"
)

func (a *app) mergeChunksCmd() *cobra.Command {
	var (
		expected int
		out      string
	)
	c := &cobra.Command{
		Use:   "merge-chunks <chunks.json>",
		Short: "Merge overlapping chunk transcripts into one timestamped transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var chunks []transcript.ChunkTranscript
			if err := json.Unmarshal(b, &chunks); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			ch := a.conf.Chunking
			merged, err := transcript.ProcessMerge(chunks, expected, ch.MergeToleranceSeconds, ch.CompletenessToleranceSeconds)
			if err != nil {
				return err
			}
			a.log.WithField("chunks", len(chunks)).Info("transcript merged")

			if out != "" {
				return os.WriteFile(out, []byte(merged+"\n"), 0o644)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), merged)
			return err
		},
	}
	c.Flags().IntVar(&expected, "expected", 0, "expected audio length in seconds")
	c.Flags().StringVarP(&out, "output", "o", "", "write the transcript here instead of stdout")
	_ = c.MarkFlagRequired("expected")
	return c
}
