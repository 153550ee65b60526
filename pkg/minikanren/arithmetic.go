package minikanren

import "math/big"

// This file implements the arithmetic relations: Succo, Pluso, Betweeno,
// Numbero, rebuilt on *big.Int and grounded on the teacher's Pluso/Minuso
// family in relational_arithmetic.go, generalized beyond the teacher's
// machine-int extractNumber helper and its two-of-three-ground
// restriction.

// groundInt walks t and reports its value as a *big.Int if it resolves to
// a number atom, or false if it is unbound or not a number.
func groundInt(s Substitution, t Term) (*big.Int, bool) {
	w := s.Walk(t)
	atom, ok := w.(*Atom)
	if !ok {
		return nil, false
	}
	return normalizeNumber(atom.value)
}

// Numbero constrains term to be a ground number atom. It never
// enumerates: an unbound term makes Numbero raise an InstantiationError
// rather than silently succeed or fail, since "is a number" is not
// something unification can search over.
func Numbero(term Term) Goal {
	return func(s Substitution) Stream {
		w := s.Walk(term)
		if _, ok := w.(*Var); ok {
			return streamErr(&InstantiationError{Predicate: "numbero", Detail: "argument is unbound"})
		}
		if _, ok := groundInt(s, term); ok {
			return streamUnit(s)
		}
		return streamEmpty
	}
}

// Succo relates a number to its successor: Succo(n, m) holds iff m = n+1.
// At least one of n, m must be ground.
func Succo(n, m Term) Goal {
	return func(s Substitution) Stream {
		nv, nOk := groundInt(s, n)
		mv, mOk := groundInt(s, m)
		switch {
		case nOk:
			return Eq(m, NewAtom(new(big.Int).Add(nv, big.NewInt(1))))(s)
		case mOk:
			return Eq(n, NewAtom(new(big.Int).Sub(mv, big.NewInt(1))))(s)
		default:
			return streamErr(&InstantiationError{Predicate: "succo", Detail: "at least one of n, m must be a ground number"})
		}
	}
}

// Pluso relates three numbers such that the third is the sum of the first
// two. With any two of x, y, z ground it computes the third directly;
// with only z ground it enumerates every (x, y) pair of non-negative
// integers summing to z, the same generate-and-test fallback the
// teacher's Pluso uses for its equivalent case; in every other mode (no
// argument ground, or only x or only y ground) it raises
// InstantiationError, since summation alone does not bound the search.
func Pluso(x, y, z Term) Goal {
	return func(s Substitution) Stream {
		xv, xOk := groundInt(s, x)
		yv, yOk := groundInt(s, y)
		zv, zOk := groundInt(s, z)

		switch {
		case xOk && yOk:
			return Eq(z, NewAtom(new(big.Int).Add(xv, yv)))(s)
		case xOk && zOk:
			return Eq(y, NewAtom(new(big.Int).Sub(zv, xv)))(s)
		case yOk && zOk:
			return Eq(x, NewAtom(new(big.Int).Sub(zv, yv)))(s)
		case zOk:
			return plusoGenerate(x, y, zv)(s)
		default:
			return streamErr(&InstantiationError{Predicate: "pluso", Detail: "need at least two of x, y, z ground, or z ground alone to enumerate"})
		}
	}
}

// plusoGenerate enumerates (x, y) pairs of non-negative integers summing
// to the ground target z, in increasing order of x, exactly the bound
// search the teacher's Pluso performs when only the sum is known.
func plusoGenerate(x, y Term, target *big.Int) Goal {
	if target.Sign() < 0 {
		return Fail
	}
	return plusoGenerateFrom(x, y, target, big.NewInt(0))
}

func plusoGenerateFrom(x, y Term, target, i *big.Int) Goal {
	if i.Cmp(target) > 0 {
		return Fail
	}
	rest := new(big.Int).Sub(target, i)
	next := new(big.Int).Add(i, big.NewInt(1))
	return Disj(
		Conj(Eq(x, NewAtom(new(big.Int).Set(i))), Eq(y, NewAtom(rest))),
		Delay(func() Goal { return plusoGenerateFrom(x, y, target, next) }),
	)
}

// PosInf is the sentinel hi value meaning "no upper bound". Passing it to
// Betweeno enumerates n starting at lo without ever terminating on its
// own, so callers must bound consumption with Take or Run(n, ...).
var PosInf = NewAtom("+inf")

// Betweeno relates a number n to the inclusive range [lo, hi]: lo must be
// ground; hi must be ground or PosInf; n may be ground (verification) or
// unbound (enumeration in increasing order).
func Betweeno(lo, hi, n Term) Goal {
	return func(s Substitution) Stream {
		lov, lOk := groundInt(s, lo)
		if !lOk {
			return streamErr(&InstantiationError{Predicate: "betweeno", Detail: "lo must be a ground number"})
		}
		if equalTerms(s.Walk(hi), PosInf) {
			return betweenoUnbounded(n, lov)(s)
		}
		hiv, hOk := groundInt(s, hi)
		if !hOk {
			return streamErr(&InstantiationError{Predicate: "betweeno", Detail: "hi must be a ground number or PosInf"})
		}
		return betweenoFrom(n, lov, hiv)(s)
	}
}

func betweenoFrom(n Term, i, hi *big.Int) Goal {
	if i.Cmp(hi) > 0 {
		return Fail
	}
	next := new(big.Int).Add(i, big.NewInt(1))
	return Disj(
		Eq(n, NewAtom(new(big.Int).Set(i))),
		Delay(func() Goal { return betweenoFrom(n, next, hi) }),
	)
}

// betweenoUnbounded is betweenoFrom with no upper-bound check, for the
// hi = PosInf mode.
func betweenoUnbounded(n Term, i *big.Int) Goal {
	next := new(big.Int).Add(i, big.NewInt(1))
	return Disj(
		Eq(n, NewAtom(new(big.Int).Set(i))),
		Delay(func() Goal { return betweenoUnbounded(n, next) }),
	)
}
