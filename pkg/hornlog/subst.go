package hornlog

// Subst is a substitution: a mapping from variable name to bound term.
// It is not kept in composed normal form: a binding's image may mention
// variables that are themselves bound in the same map (X -> Y, Y -> a), so
// grounding a term goes through Search or ApplyIterated, which follow such
// chains, rather than a single Apply pass.
//
// Subst values are never mutated in place once handed to a frontier item;
// Extend always returns a new map, so two derivations that share a prefix
// of bindings never see each other's later extensions.
type Subst map[Var]Term

// NewSubst returns an empty substitution.
func NewSubst() Subst {
	return make(Subst)
}

// Extend returns a new substitution equal to s plus the binding v -> t.
func (s Subst) Extend(v Var, t Term) Subst {
	out := make(Subst, len(s)+1)
	for k, val := range s {
		out[k] = val
	}
	out[v] = t
	return out
}

// Apply performs one substitution pass over t: constants are fixed points,
// a bound variable is replaced by its (unexpanded) image, an unbound
// variable is returned as itself, and compounds are rebuilt arg-by-arg.
// This does NOT re-expand the image within the call — use ApplyIterated
// or Search when s may contain chains.
func Apply(s Subst, t Term) Term {
	switch t := t.(type) {
	case Const:
		return t
	case Var:
		if bound, ok := s[t]; ok {
			return bound
		}
		return t
	case Compound:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = Apply(s, a)
		}
		return Compound{Functor: t.Functor, Args: args}
	default:
		return t
	}
}

// ApplyIterated applies Apply repeatedly until a fixed point, so chains
// like X -> Y, Y -> a resolve all the way to the ground term. Because a
// sound Subst never lets a variable's image mention that same variable,
// this always terminates.
func ApplyIterated(s Subst, t Term) Term {
	for {
		next := Apply(s, t)
		if next.Equal(t) {
			return next
		}
		t = next
	}
}

// Search walks a Variable repeatedly through s until a non-variable root
// is reached, or a variable with no binding is found, then recurses into
// a Compound's args. It is the canonical way to ground a term after
// resolution succeeds.
func Search(t Term, s Subst) Term {
	for {
		v, ok := t.(Var)
		if !ok {
			break
		}
		bound, ok := s[v]
		if !ok {
			return v
		}
		t = bound
	}
	if c, ok := t.(Compound); ok {
		args := make([]Term, len(c.Args))
		for i, a := range c.Args {
			args[i] = Search(a, s)
		}
		return Compound{Functor: c.Functor, Args: args}
	}
	return t
}

// Compose returns the substitution that, applied to a term, behaves as
// "apply s1 first, then s2": for every (v -> t) in s1 the result holds
// (v -> apply(s2, t)); then every (v -> t) in s2 whose v is not already in
// s1's domain is added as-is. When both define v, s1's entry wins, since
// it already carries the s2-transformed image; s2's own binding for that
// v only matters for variables s1 doesn't mention.
func Compose(s1, s2 Subst) Subst {
	out := make(Subst, len(s1)+len(s2))
	for v, t := range s1 {
		out[v] = Apply(s2, t)
	}
	for v, t := range s2 {
		if _, ok := s1[v]; !ok {
			out[v] = t
		}
	}
	return out
}
