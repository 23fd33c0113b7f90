// Package parser turns lexer.Tokens into hornlog terms, clauses, and
// parsed queries. It is the only package that knows about concrete
// surface syntax; pkg/hornlog never imports it, so the term algebra and
// resolution engine stay usable from any front end that can produce
// hornlog.Term and hornlog.Clause values directly.
package parser

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/gitrdm/hornlog/internal/lexer"
	"github.com/gitrdm/hornlog/pkg/hornlog"
)

// Parser consumes tokens from a lexer.Lexer with one token of lookahead.
type Parser struct {
	lex *lexer.Lexer
	tok lexer.Token
}

// New returns a Parser ready to read from a whitespace-stripped input
// string.
func New(input string) (*Parser, error) {
	p := &Parser{lex: lexer.New(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	t, err := p.lex.Next()
	if err != nil {
		return errors.Wrap(err, "parser")
	}
	p.tok = t
	return nil
}

func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	if p.tok.Kind != k {
		return lexer.Token{}, errors.Errorf("parser: expected %s, got %s at %d", k, p.tok.Kind, p.tok.Pos)
	}
	t := p.tok
	err := p.advance()
	return t, err
}

// ParseClauses parses a whole consulted file's contents as a sequence of
// clauses, each terminated by '.', until EOF.
func ParseClauses(stripped string) ([]hornlog.Clause, error) {
	p, err := New(stripped)
	if err != nil {
		return nil, err
	}
	var out []hornlog.Clause
	for p.tok.Kind != lexer.EOF {
		c, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (p *Parser) parseClause() (hornlog.Clause, error) {
	head, err := p.parseCompoundOrAtomTerm()
	if err != nil {
		return hornlog.Clause{}, err
	}

	if p.tok.Kind == lexer.Arrow {
		if err := p.advance(); err != nil {
			return hornlog.Clause{}, err
		}
		body, err := p.parseGoalList()
		if err != nil {
			return hornlog.Clause{}, err
		}
		if _, err := p.expect(lexer.Dot); err != nil {
			return hornlog.Clause{}, err
		}
		return hornlog.NewRule(head, body...), nil
	}

	if _, err := p.expect(lexer.Dot); err != nil {
		return hornlog.Clause{}, err
	}
	return hornlog.NewFact(head), nil
}

// ParseQuery parses one REPL line into a Parsed value: either the
// file-load form `['path'].` or a goal sequence `g1, ..., gn.`
func ParseQuery(stripped string) (hornlog.Parsed, error) {
	// The file-load form ['path'] . uses '[' ']' '\'' characters outside
	// the lexer's token alphabet, so it is recognized on the raw string
	// before any tokenizing is attempted.
	if isFileLoadForm(stripped) {
		path := stripped[2 : len(stripped)-3]
		return hornlog.Parsed{File: path}, nil
	}

	p, err := New(stripped)
	if err != nil {
		return hornlog.Parsed{}, err
	}

	goals, err := p.parseGoalList()
	if err != nil {
		return hornlog.Parsed{}, err
	}
	if _, err := p.expect(lexer.Dot); err != nil {
		return hornlog.Parsed{}, err
	}
	return hornlog.Parsed{Goals: goals}, nil
}

// isFileLoadForm reports whether stripped matches the literal
// ['path']. wrapper, whose bracket and quote characters the token
// alphabet above does not cover.
func isFileLoadForm(stripped string) bool {
	const prefix = "['"
	const suffix = "']."
	if len(stripped) < len(prefix)+len(suffix) {
		return false
	}
	return stripped[:len(prefix)] == prefix && stripped[len(stripped)-len(suffix):] == suffix
}

func (p *Parser) parseGoalList() ([]hornlog.Term, error) {
	var out []hornlog.Term
	for {
		t, err := p.parseCompoundOrAtomTerm()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		if p.tok.Kind != lexer.Comma {
			return out, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

// parseCompoundOrAtomTerm parses a head or goal position term: an atom,
// optionally followed by a parenthesized, comma-separated argument list.
// A bare atom with no parentheses is a zero-arity term, which pkg/hornlog
// represents as an Atom Const.
func (p *Parser) parseCompoundOrAtomTerm() (hornlog.Term, error) {
	name, err := p.expect(lexer.Atom)
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != lexer.LParen {
		return hornlog.Atom(name.Text), nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var args []hornlog.Term
	for {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.tok.Kind == lexer.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return hornlog.NewCompound(name.Text, args...), nil
}

// parseTerm parses any argument-position term: a variable, an integer, a
// string, or a (possibly compound) atom.
func (p *Parser) parseTerm() (hornlog.Term, error) {
	switch p.tok.Kind {
	case lexer.Variable:
		t := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return hornlog.Var(t.Text), nil
	case lexer.Int:
		t := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(t.Text, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "parser: integer %q out of 32-bit range at %d", t.Text, t.Pos)
		}
		return hornlog.Int32(int32(n)), nil
	case lexer.String:
		t := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return hornlog.Str(t.Text), nil
	case lexer.Atom:
		return p.parseCompoundOrAtomTerm()
	default:
		return nil, errors.Errorf("parser: unexpected %s at %d, want a term", p.tok.Kind, p.tok.Pos)
	}
}
