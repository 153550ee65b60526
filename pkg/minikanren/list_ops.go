package minikanren

import "math/big"

// This file implements the list relations: Membero, Listo, Lengtho,
// Appendo, Conso, Firsto, Lasto, Ntho, plus Reverso. Each is rebuilt on
// the Goal/Stream types in this package instead of the teacher's
// context/ConstraintStore plumbing.

// Conso relates head, tail, and a pair built from them: Conso(h, t, p) holds
// iff p is (h . t). It is the one list relation that never recurses; every
// other list predicate below is built out of it and Eq.
func Conso(head, tail, pair Term) Goal {
	return Eq(pair, NewPair(head, tail))
}

// Firsto relates a pair to its car: Firsto(p, h) holds iff p is (h . _).
func Firsto(pair, head Term) Goal {
	return CallFresh("", func(tail *Var) Goal {
		return Conso(head, tail, pair)
	})
}

// Membero relates an element to a list it occurs in. With list ground, it
// enumerates el once per matching position; with list unbound, it
// enumerates longer and longer unbound-tailed lists whose k-th element is
// el. The first answer binds only the head, matching the teacher's own
// Membero ordering.
func Membero(el, list Term) Goal {
	return Disj(
		Firsto(list, el),
		CallFresh("", func(tail *Var) Goal {
			return Conj(
				Conso(FreshVar(""), tail, list),
				Delay(func() Goal { return Membero(el, tail) }),
			)
		}),
	)
}

// Listo relates a single term to "is a proper list": Nil, or a pair whose
// cdr is itself a proper list. Left unbound, it enumerates proper lists of
// every length, which is why Run with no bound never terminates on it.
func Listo(list Term) Goal {
	return Disj(
		Eq(list, Nil),
		CallFresh("", func(tail *Var) Goal {
			return Conj(
				Conso(FreshVar(""), tail, list),
				Delay(func() Goal { return Listo(tail) }),
			)
		}),
	)
}

// Lengtho relates a list to its length as a ground, arbitrary-precision
// integer atom, collapsing the teacher's Peano-number Lengtho/LengthoInt
// split into a single representation, so no separate int-vs-Peano
// conversion layer is needed.
func Lengtho(list, length Term) Goal {
	return func(s Substitution) Stream {
		if n, ok := groundLength(s, list); ok {
			return Eq(length, NewAtom(big.NewInt(int64(n))))(s)
		}
		return lengthoGenerate(list, length, 0)(s)
	}
}

// groundLength walks list as far as it is a chain of ground pairs and
// reports its length if it terminates in Nil before hitting an unbound cdr.
func groundLength(s Substitution, list Term) (int, bool) {
	n := 0
	cur := s.Walk(list)
	for {
		if equalTerms(cur, Nil) {
			return n, true
		}
		p, ok := cur.(*Pair)
		if !ok {
			return 0, false
		}
		n++
		cur = s.Walk(p.Cdr)
	}
}

// lengthoGenerate handles the modes groundLength cannot: list unbound (or
// partially ground), length possibly ground. n counts the elements placed
// so far, and list is never extended past a ground length, so a ground
// length yields its answer and terminates rather than walking list forever.
func lengthoGenerate(list, length Term, n int) Goal {
	return Disj(
		Conj(Eq(list, Nil), Eq(length, NewAtom(big.NewInt(int64(n))))),
		CallFresh("", func(tail *Var) Goal {
			return Conj(
				func(s Substitution) Stream {
					if lv, ok := groundInt(s, length); ok && lv.Cmp(big.NewInt(int64(n))) <= 0 {
						return streamEmpty
					}
					return streamUnit(s)
				},
				Conso(FreshVar(""), tail, list),
				Delay(func() Goal { return lengthoGenerate(tail, length, n+1) }),
			)
		}),
	)
}

// Appendo relates three lists such that the third is the first appended to
// the second. Fully relational: any argument may be unbound.
func Appendo(l1, l2, l3 Term) Goal {
	return Disj(
		Conj(Eq(l1, Nil), Eq(l2, l3)),
		Fresh([]string{"", "", ""}, func(vs []*Var) Goal {
			a, d, res := vs[0], vs[1], vs[2]
			return Conj(
				Conso(a, d, l1),
				Conso(a, res, l3),
				Delay(func() Goal { return Appendo(d, l2, res) }),
			)
		}),
	)
}

// SameLengtho succeeds iff xs and ys have equal length, ground or not. It
// exists to keep Reverso from diverging the way unconstrained Appendo
// would when both lists are unbound, the same guard the teacher's Reverso
// applies.
func SameLengtho(xs, ys Term) Goal {
	return Conde(
		Clause{Eq(xs, Nil), Eq(ys, Nil)},
		Clause{Fresh([]string{"", "", ""}, func(vs []*Var) Goal {
			x, xt, yt := vs[0], vs[1], vs[2]
			return Conj(
				Conso(x, xt, xs),
				Conso(FreshVar(""), yt, ys),
				Delay(func() Goal { return SameLengtho(xt, yt) }),
			)
		})},
	)
}

func reversoCore(list, reversed Term) Goal {
	return Conde(
		Clause{Eq(list, Nil), Eq(reversed, Nil)},
		Clause{Fresh([]string{"", "", ""}, func(vs []*Var) Goal {
			head, tail, revTail := vs[0], vs[1], vs[2]
			return Conj(
				Conso(head, tail, list),
				Delay(func() Goal { return reversoCore(tail, revTail) }),
				Appendo(revTail, NewPair(head, Nil), reversed),
			)
		})},
	)
}

// Reverso relates a list to its reverse, grounded on the teacher's
// Reverso/reversoCore pair. It constrains both arguments to equal length
// before recursing so that running it with both arguments unbound still
// terminates per length, rather than letting Appendo's second argument
// grow without bound.
func Reverso(list, reversed Term) Goal {
	return Conj(SameLengtho(list, reversed), reversoCore(list, reversed))
}

// Ntho relates a zero-based index, a list, and the element at that index.
// With index ground it projects directly; with index unbound it
// enumerates index = k with el at position k for k = 0, 1, 2, and so on,
// and when list is unbound too, each answer binds it to a list of exactly
// k+1 elements. It does not treat an unbound index as an error the way
// Numbero/Succo treat an underdetermined argument set.
func Ntho(index, list, el Term) Goal {
	return func(s Substitution) Stream {
		iw := s.Walk(index)
		if _, ok := iw.(*Var); ok {
			enum := nthoEnumerate(index, list, el, big.NewInt(0))
			if _, listUnbound := s.Walk(list).(*Var); listUnbound {
				return CallFresh("", func(length *Var) Goal {
					return Conj(enum, Succo(index, length), Lengtho(list, length))
				})(s)
			}
			return enum(s)
		}
		atom, ok := iw.(*Atom)
		if !ok {
			return streamErr(&InstantiationError{Predicate: "ntho", Detail: "index must be a ground integer or unbound"})
		}
		n, ok := normalizeNumber(atom.value)
		if !ok {
			return streamErr(&InstantiationError{Predicate: "ntho", Detail: "index must be a ground integer or unbound"})
		}
		if n.Sign() < 0 {
			return streamEmpty
		}
		return nthoFrom(n.Int64(), list, el)(s)
	}
}

// nthoEnumerate drives the unbound-index mode of Ntho, trying successively
// larger indices k and binding index to k alongside each attempt.
func nthoEnumerate(index, list, el Term, k *big.Int) Goal {
	kk := new(big.Int).Set(k)
	next := new(big.Int).Add(k, big.NewInt(1))
	return Disj(
		Conj(Eq(index, NewAtom(kk)), nthoFrom(kk.Int64(), list, el)),
		Delay(func() Goal { return nthoEnumerate(index, list, el, next) }),
	)
}

func nthoFrom(n int64, list, el Term) Goal {
	if n == 0 {
		return Firsto(list, el)
	}
	return CallFresh("", func(tail *Var) Goal {
		return Conj(
			Conso(FreshVar(""), tail, list),
			Delay(func() Goal { return nthoFrom(n-1, tail, el) }),
		)
	})
}

// Lasto relates a list to its final element. The base case requires list
// to be exactly a one-element list; using Firsto here instead would also
// match longer lists at their head, yielding a spurious extra answer
// alongside the true last element.
func Lasto(list, last Term) Goal {
	return Disj(
		Eq(list, NewPair(last, Nil)),
		Fresh([]string{"", ""}, func(vs []*Var) Goal {
			head, tail := vs[0], vs[1]
			return Conj(
				Conso(head, tail, list),
				Delay(func() Goal { return Lasto(tail, last) }),
			)
		}),
	)
}
