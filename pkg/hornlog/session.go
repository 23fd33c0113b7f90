package hornlog

import (
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Parsed is the result of parsing one REPL line: either a goal list to
// resolve, or a file reference to consult (the `['path.pl'].` form). A
// non-empty File takes precedence; Goals is read otherwise.
type Parsed struct {
	Goals []Term
	File  string
}

// Status is the outcome of HandleQuery: either an answer binding the
// session's asked variables, or a plain "done" with no binding — the
// result of a file consult or, equivalently, a query with no free
// variables that nonetheless succeeds.
type Status struct {
	Vars   []Var
	Answer map[Var]Term
	Found  bool
}

// Session holds everything that persists across a line of interaction:
// the append-only clause database, the monotone fresh-variable counter
// used by clause instantiation, and the current query's asked variables.
type Session struct {
	Rules     *Database
	Counter   int
	AskedVars []Var
	Mode      Mode
}

// NewSession returns an empty session with occurs-checking off.
func NewSession() *Session {
	return &Session{Rules: NewDatabase()}
}

// ConsultFile reads path, strips all whitespace, parses it into clauses
// via parse, and appends every resulting clause to the database. parse is
// supplied by the caller (internal/parser) so pkg/hornlog stays free of
// any lexer/grammar dependency.
func (s *Session) ConsultFile(path string, parse func(stripped string) ([]Clause, error)) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	stripped := stripWhitespace(string(raw))
	clauses, err := parse(stripped)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	for _, c := range clauses {
		s.Rules.Append(c)
	}
	return nil
}

// dedupeVars keeps the first occurrence of each variable, preserving
// order, so a variable mentioned in two goals is reported once.
func dedupeVars(vars []Var) []Var {
	seen := make(map[Var]bool, len(vars))
	out := make([]Var, 0, len(vars))
	for _, v := range vars {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// stripWhitespace removes every whitespace rune from a consulted file's
// contents before parsing, since no token in the grammar may contain
// internal whitespace.
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

// HandleQuery dispatches a parsed line: a file reference is consulted
// and reported as a "done, empty binding" status; a goal list has its
// free variables recorded as the asked variables, is run through the
// resolution engine, and has its asked variables cleared before
// returning the resulting status.
func (s *Session) HandleQuery(p Parsed, parse func(stripped string) ([]Clause, error)) (Status, error) {
	if p.File != "" {
		if err := s.ConsultFile(p.File, parse); err != nil {
			return Status{}, err
		}
		return Status{Found: true}, nil
	}

	s.AskedVars = dedupeVars(FreeVarsSum(p.Goals))
	asked := s.AskedVars
	defer func() { s.AskedVars = nil }()

	answer, ok := Query(p.Goals, asked, s.Rules, &s.Counter, s.Mode)
	return Status{Vars: asked, Answer: answer, Found: ok}, nil
}
