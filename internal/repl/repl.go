// Package repl implements the interactive query loop: a `?- ` prompt,
// whitespace stripped from the input line before parsing, `halt.` to end
// the session, and one `V = t.` line per asked variable on a successful
// query.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/gitrdm/hornlog/internal/parser"
	"github.com/gitrdm/hornlog/pkg/hornlog"
)

// REPL drives one interactive session over a *readline.Instance.
type REPL struct {
	session *hornlog.Session
	rl      *readline.Instance
	log     *logrus.Logger
	out     io.Writer
}

// New returns a REPL reading from and writing to stdin/stdout via
// readline, sharing session across the whole interactive lifetime.
func New(session *hornlog.Session, log *logrus.Logger) (*REPL, error) {
	rl, err := readline.New("?- ")
	if err != nil {
		return nil, fmt.Errorf("repl: opening readline: %w", err)
	}
	return &REPL{session: session, rl: rl, log: log, out: os.Stdout}, nil
}

// Close releases the underlying readline instance.
func (r *REPL) Close() error {
	return r.rl.Close()
}

// Run reads and handles lines until halt., EOF, or an unrecoverable
// readline error. It never returns a non-nil error for parse or file
// errors — those are printed and the loop continues so one bad line
// doesn't end the session.
func (r *REPL) Run() error {
	for {
		line, err := r.rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return fmt.Errorf("repl: reading line: %w", err)
		}

		stripped := stripWhitespace(line)
		if stripped == "" {
			continue
		}
		if stripped == "halt." {
			return nil
		}

		r.handleLine(stripped)
	}
}

func (r *REPL) handleLine(stripped string) {
	parsed, err := parser.ParseQuery(stripped)
	if err != nil {
		r.log.WithError(err).Debug("parse error")
		color.New(color.FgRed).Fprintln(r.out, err.Error())
		return
	}

	status, err := r.session.HandleQuery(parsed, parser.ParseClauses)
	if err != nil {
		r.log.WithError(err).Debug("query error")
		color.New(color.FgRed).Fprintln(r.out, err.Error())
		return
	}

	if !status.Found {
		color.New(color.FgYellow).Fprintln(r.out, "false.")
		return
	}

	if len(status.Answer) == 0 {
		color.New(color.FgGreen).Fprintln(r.out, "true.")
		return
	}

	for _, v := range status.Vars {
		t, ok := status.Answer[v]
		if !ok {
			continue
		}
		fmt.Fprintf(r.out, "%s = %s.\n", v, t.String())
	}
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
