package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/hornlog/pkg/hornlog"
)

func TestParseClausesFact(t *testing.T) {
	clauses, err := ParseClauses("parent(tom,bob).")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.Equal(t, hornlog.NewCompound("parent", hornlog.Atom("tom"), hornlog.Atom("bob")), clauses[0].Head)
	assert.Empty(t, clauses[0].Body)
}

func TestParseClausesRule(t *testing.T) {
	clauses, err := ParseClauses("ancestor(X,Y):-parent(X,Y).")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.Len(t, clauses[0].Body, 1)
}

func TestParseClausesMultiple(t *testing.T) {
	clauses, err := ParseClauses("parent(a,b).parent(b,c).")
	require.NoError(t, err)
	assert.Len(t, clauses, 2)
}

func TestParseClausesPeanoRule(t *testing.T) {
	clauses, err := ParseClauses("add(s(X),Y,s(Z)):-add(X,Y,Z).")
	require.NoError(t, err)
	require.Len(t, clauses, 1)

	head := clauses[0].Head.(hornlog.Compound)
	assert.Equal(t, "add", head.Functor)
	assert.Equal(t, hornlog.NewCompound("s", hornlog.Var("X")), head.Args[0])
}

func TestParseQueryGoalList(t *testing.T) {
	p, err := ParseQuery("parent(tom,X).")
	require.NoError(t, err)
	require.Len(t, p.Goals, 1)
	assert.Empty(t, p.File)
}

func TestParseQueryFileLoadForm(t *testing.T) {
	p, err := ParseQuery("['facts.pl'].")
	require.NoError(t, err)
	assert.Equal(t, "facts.pl", p.File)
	assert.Empty(t, p.Goals)
}

func TestParseQueryMultipleGoals(t *testing.T) {
	p, err := ParseQuery("parent(tom,X),parent(X,bob).")
	require.NoError(t, err)
	assert.Len(t, p.Goals, 2)
}

func TestParseTermKinds(t *testing.T) {
	p, err := ParseQuery(`f(1,-2,"s",X,g(a)).`)
	require.NoError(t, err)
	require.Len(t, p.Goals, 1)

	c := p.Goals[0].(hornlog.Compound)
	assert.Equal(t, hornlog.Int32(1), c.Args[0])
	assert.Equal(t, hornlog.Int32(-2), c.Args[1])
	assert.Equal(t, hornlog.Str("s"), c.Args[2])
	assert.Equal(t, hornlog.Var("X"), c.Args[3])
	assert.Equal(t, hornlog.NewCompound("g", hornlog.Atom("a")), c.Args[4])
}

func TestParseErrorMissingDot(t *testing.T) {
	_, err := ParseClauses("parent(tom,bob)")
	assert.Error(t, err)
}

func TestParseErrorUnbalancedParens(t *testing.T) {
	_, err := ParseClauses("parent(tom,bob.")
	assert.Error(t, err)
}
