package hornlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstExtendDoesNotMutate(t *testing.T) {
	s1 := NewSubst()
	s2 := s1.Extend("X", Atom("a"))

	assert.Empty(t, s1, "Extend must not mutate the receiver")
	assert.Equal(t, Atom("a"), s2["X"])
}

func TestApplyIsOnePass(t *testing.T) {
	s := NewSubst().Extend("X", Var("Y")).Extend("Y", Atom("a"))

	// Apply does not re-expand X's image, so it stops at Y.
	assert.Equal(t, Var("Y"), Apply(s, Var("X")))
}

func TestApplyIteratedFollowsChains(t *testing.T) {
	s := NewSubst().Extend("X", Var("Y")).Extend("Y", Atom("a"))
	assert.Equal(t, Atom("a"), ApplyIterated(s, Var("X")))
}

func TestApplyRebuildsCompound(t *testing.T) {
	s := NewSubst().Extend("X", Atom("a"))
	term := NewCompound("f", Var("X"), Var("Y"))
	got := Apply(s, term)
	assert.Equal(t, NewCompound("f", Atom("a"), Var("Y")), got)
}

func TestSearchChasesAndRecurses(t *testing.T) {
	s := NewSubst().Extend("X", Var("Y")).Extend("Y", NewCompound("f", Var("Z")))
	t.Run("chases a variable chain to its root", func(t *testing.T) {
		got := Search(Var("X"), s)
		assert.Equal(t, NewCompound("f", Var("Z")), got)
	})
	t.Run("unbound variable is returned as itself", func(t *testing.T) {
		assert.Equal(t, Var("W"), Search(Var("W"), s))
	})
}

func TestCompose(t *testing.T) {
	s1 := NewSubst().Extend("X", Var("Y"))
	s2 := NewSubst().Extend("Y", Atom("a")).Extend("Z", Atom("b"))

	got := Compose(s1, s2)

	assert.Equal(t, Atom("a"), got["X"], "X's image from s1 should be transformed by s2")
	assert.Equal(t, Atom("b"), got["Z"], "s2-only bindings are carried over unchanged")
	assert.Len(t, got, 3)
}
