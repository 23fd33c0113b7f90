package hornlog

// frontierItem is a partial derivation: the remaining goals (a stack —
// the last element is the next goal to resolve) and the substitution
// accumulated along this derivation path so far.
type frontierItem struct {
	goals []Term
	subst Subst
}

// Query runs SLD-style resolution over goals against db, exploring the
// frontier breadth-first (FIFO) so that earlier, shallower derivations are
// tried before deeper ones. For each derivation that empties its goal
// stack, the asked variables are extracted via Answer; a derivation that
// leaves one of them unbound is treated as non-answering and the search
// continues with the next frontier item instead of stopping there. Query
// returns the first fully-bound answer found, or (nil, false) once the
// frontier is exhausted.
//
// counter seeds and is advanced by clause instantiation; it must be the
// session's monotone fresh-variable counter so instantiated clauses never
// collide with the query's variables across the whole session, not just
// within one Query call.
func Query(goals []Term, asked []Var, db *Database, counter *int, mode Mode) (map[Var]Term, bool) {
	frontier := []frontierItem{{goals: goals, subst: NewSubst()}}

	for len(frontier) > 0 {
		item := frontier[0]
		frontier = frontier[1:]

		if len(item.goals) == 0 {
			if answer, ok := Answer(asked, item.subst); ok {
				return answer, true
			}
			continue
		}

		n := len(item.goals) - 1
		goal := item.goals[n]
		rest := item.goals[:n]

		for _, c := range db.Clauses() {
			renamed := Instantiate(c, counter)

			// Unify walks goal through item.subst itself (via Search), so
			// it is passed in unsubstituted.
			mu, ok := Unify(goal, renamed.Head, item.subst, mode)
			if !ok {
				continue
			}

			newGoals := make([]Term, 0, len(rest)+len(renamed.Body))
			newGoals = append(newGoals, rest...)
			newGoals = append(newGoals, renamed.Body...)

			frontier = append(frontier, frontierItem{goals: newGoals, subst: mu})
		}
	}

	return nil, false
}

// Answer extracts, for each variable in asked, the ground term it is
// bound to under subst (via Search). If any asked variable is still free
// after walking subst, ok is false — the proof succeeded but left that
// variable unbound, which Query treats as a non-answering branch.
func Answer(asked []Var, subst Subst) (map[Var]Term, bool) {
	out := make(map[Var]Term, len(asked))
	for _, v := range asked {
		t := Search(Term(v), subst)
		if HasFreeVar(t) {
			return nil, false
		}
		out[v] = t
	}
	return out, true
}
