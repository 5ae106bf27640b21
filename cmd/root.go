// Package cmd wires the pipeline stages to the command line.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/buildercards/workflow-pipeline/config"
)

type app struct {
	cfgPath  string
	logLevel string
	conf     *config.Root
	log      *logrus.Logger
}

// NewRoot builds the command tree. Every subcommand sees a loaded config
// and a configured logger.
func NewRoot() *cobra.Command {
	a := &app{log: logrus.New()}
	root := &cobra.Command{
		Use:           "workflow-pipeline",
		Short:         "Turn interview transcripts into timestamped workflow profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.log.SetOutput(cmd.ErrOrStderr())
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default config/$CONFIG_ENV/config.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override pipeline.log_level")

	root.AddCommand(
		a.runCmd(),
		a.planChunksCmd(),
		a.mergeChunksCmd(),
		a.parseCmd(),
	)
	return root
}

func (a *app) setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	conf, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.conf = conf

	lvl := conf.Pipeline.LogLvl
	if a.logLevel != "" {
		lvl = a.logLevel
	}
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)
	if strings.EqualFold(conf.Pipeline.LogFormat, "json") {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func Execute(ctx context.Context) error {
	return NewRoot().ExecuteContext(ctx)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
