package cmd

import (
	"github.com/spf13/cobra"

	"github.com/buildercards/workflow-pipeline/transcript"
)

func (a *app) planChunksCmd() *cobra.Command {
	var total int
	c := &cobra.Command{
		Use:   "plan-chunks",
		Short: "Print the overlapping audio windows for a recording",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chunks, err := transcript.PlanChunks(total, a.conf.Chunking.ChunkSeconds, a.conf.Chunking.OverlapSeconds)
			if err != nil {
				return err
			}
			a.log.WithField("chunks", len(chunks)).Debug("planned")
			return printJSON(cmd.OutOrStdout(), chunks)
		},
	}
	c.Flags().IntVar(&total, "duration", 0, "audio length in seconds")
	_ = c.MarkFlagRequired("duration")
	return c
}
