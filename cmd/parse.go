package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/buildercards/workflow-pipeline/transcript"
)

func (a *app) parseCmd() *cobra.Command {
	var (
		duration float64
		roles    bool
	)
	c := &cobra.Command{
		Use:   "parse-transcript <transcript.txt>",
		Short: "Convert a merged transcript into diarized segments JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			segs := transcript.ParseLines(string(b), duration)
			if roles {
				segs = transcript.ApplyRoles(segs, transcript.AssignRoles(segs))
			}
			if err := transcript.Validate(segs); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), segs)
		},
	}
	c.Flags().Float64Var(&duration, "duration", 0, "audio length in seconds")
	c.Flags().BoolVar(&roles, "roles", false, "relabel speakers as Interviewer/Interviewee")
	return c
}
