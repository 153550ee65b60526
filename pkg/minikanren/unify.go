package minikanren

// Unify attempts to make u and v equal under s, returning the extended
// substitution and true on success, or the zero Substitution and false on
// failure. The algorithm:
//
//  1. walk both terms
//  2. if they are the same variable or equal atoms, s is already sufficient
//  3. if either side is an unbound variable, bind it to the other
//  4. if both are pairs, unify car then cdr, threading the substitution
//  5. otherwise fail
func Unify(u, v Term, s Substitution) (Substitution, bool) {
	return unify(u, v, s, false)
}

// UnifyOccurs is Unify's occurs-check variant: before binding a variable x
// to a term t, it requires that the deep walk of t does not mention x.
// This guarantees the resulting substitution is strictly acyclic, at the
// cost of a walk over t on every binding.
func UnifyOccurs(u, v Term, s Substitution) (Substitution, bool) {
	return unify(u, v, s, true)
}

func unify(u, v Term, s Substitution, occurs bool) (Substitution, bool) {
	uw := s.Walk(u)
	vw := s.Walk(v)

	if equalTerms(uw, vw) {
		return s, true
	}

	if uv, ok := uw.(*Var); ok {
		return bindVar(uv, vw, s, occurs)
	}
	if vv, ok := vw.(*Var); ok {
		return bindVar(vv, uw, s, occurs)
	}

	up, uIsPair := uw.(*Pair)
	vp, vIsPair := vw.(*Pair)
	if uIsPair && vIsPair {
		s, ok := unify(up.Car, vp.Car, s, occurs)
		if !ok {
			return Substitution{}, false
		}
		return unify(up.Cdr, vp.Cdr, s, occurs)
	}

	return Substitution{}, false
}

func bindVar(v *Var, t Term, s Substitution, occurs bool) (Substitution, bool) {
	if occurs && occursIn(v, t, s) {
		return Substitution{}, false
	}
	return s.Extend(v.id, t), true
}

// occursIn reports whether v appears anywhere in the deep walk of t.
func occursIn(v *Var, t Term, s Substitution) bool {
	walked := s.Walk(t)
	switch w := walked.(type) {
	case *Var:
		return w.id == v.id
	case *Pair:
		return occursIn(v, w.Car, s) || occursIn(v, w.Cdr, s)
	default:
		return false
	}
}
