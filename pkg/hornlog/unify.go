package hornlog

// Mode controls whether Unify performs the classical occurs-check.
// Off is the default, since the occurs-check is expensive and most
// programs never build a cyclic term; On rejects cyclic substitutions
// such as X -> f(X).
type Mode int

const (
	OccursCheckOff Mode = iota
	OccursCheckOn
)

// constraint is a pair of terms that must be made equal.
type constraint struct {
	L, R Term
}

// Unify attempts to unify goal and head under the given substitution,
// returning an extended substitution on success or (nil, false) on
// failure. It implements the Robinson-style, iterated-removal algorithm:
// constraints are held on a LIFO stack so that sub-constraints produced by
// decomposing a Compound are processed before older pairs, bounding the
// live working set to the term's depth.
func Unify(goal, head Term, s Subst, mode Mode) (Subst, bool) {
	stack := []constraint{{goal, head}}
	return unify(stack, s, mode)
}

// UnifyPairs unifies a list of already-paired constraints — the
// element-wise equivalent of unifying two same-length compounds
// argument-by-argument — under s.
func UnifyPairs(pairs [][2]Term, s Subst, mode Mode) (Subst, bool) {
	stack := make([]constraint, len(pairs))
	for i, p := range pairs {
		stack[i] = constraint{p[0], p[1]}
	}
	return unify(stack, s, mode)
}

func unify(stack []constraint, s Subst, mode Mode) (Subst, bool) {
	for len(stack) > 0 {
		n := len(stack) - 1
		c := stack[n]
		stack = stack[:n]

		// Search (not a single Apply pass) so a variable already bound to
		// another bound variable resolves to its ultimate representative;
		// otherwise a later Extend could re-bind an already-bound variable
		// and silently orphan its existing binding.
		l := Search(c.L, s)
		r := Search(c.R, s)

		if l.Equal(r) {
			continue
		}

		lv, lIsVar := l.(Var)
		rv, rIsVar := r.(Var)

		switch {
		case lIsVar:
			if mode == OccursCheckOn && occursIn(lv, r, s) {
				return nil, false
			}
			s = s.Extend(lv, r)
		case rIsVar:
			if mode == OccursCheckOn && occursIn(rv, l, s) {
				return nil, false
			}
			s = s.Extend(rv, l)
		default:
			// Equal case already handled above, so a Const reaching here
			// can only be a clash: constant/constant or constant/compound.
			if _, lIsConst := l.(Const); lIsConst {
				return nil, false
			}
			if _, rIsConst := r.(Const); rIsConst {
				return nil, false
			}

			lcomp, lOK := l.(Compound)
			rcomp, rOK := r.(Compound)
			if !lOK || !rOK || lcomp.Functor != rcomp.Functor || len(lcomp.Args) != len(rcomp.Args) {
				return nil, false
			}
			for i := range lcomp.Args {
				stack = append(stack, constraint{lcomp.Args[i], rcomp.Args[i]})
			}
		}
	}
	return s, true
}

// occursIn reports whether v appears (after walking s) anywhere in t.
func occursIn(v Var, t Term, s Subst) bool {
	switch t := Search(t, s).(type) {
	case Var:
		return t == v
	case Compound:
		for _, a := range t.Args {
			if occursIn(v, a, s) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
