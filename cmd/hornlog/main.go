// Command hornlog is the CLI entry point: it wires cobra/pflag flag
// parsing, logrus structured logging, and the interactive REPL (or a
// batch file-consult run) around pkg/hornlog.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/hornlog/internal/parser"
	"github.com/gitrdm/hornlog/internal/repl"
	"github.com/gitrdm/hornlog/pkg/hornlog"
)

var (
	loadFile string
	batch    bool
	logLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hornlog",
		Short: "A minimal Prolog-style resolution engine and REPL",
		RunE:  run,
	}
	cmd.PersistentFlags().StringVar(&loadFile, "load", "", "clause file to consult before starting")
	cmd.PersistentFlags().BoolVar(&batch, "batch", false, "exit after loading --load instead of starting the REPL")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logrus.WarnLevel.String(), "logging verbosity")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)

	session := hornlog.NewSession()

	if loadFile != "" {
		if err := session.ConsultFile(loadFile, parser.ParseClauses); err != nil {
			return err
		}
		log.WithField("file", loadFile).Info("consulted clause file")
	}

	if batch {
		return nil
	}

	r, err := repl.New(session, log)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.Run()
}
