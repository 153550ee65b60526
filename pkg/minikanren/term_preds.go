package minikanren

import (
	"math/big"
	"strings"
)

// This file implements the ground/type/conversion relations: Groundo,
// StringCharso, NumberCharso. None of these have a direct analogue in the
// teacher's library (its Symbolo/Numbero are constraint-store predicates,
// not term walks), so they are built on the deep-walk machinery already
// present in subst.go (WalkStar) and on term.go's atom value model.

// Groundo succeeds iff the deep walk of x contains no unbound variable
// anywhere in its structure.
func Groundo(x Term) Goal {
	return func(s Substitution) Stream {
		if isGround(s.WalkStar(x)) {
			return streamUnit(s)
		}
		return streamEmpty
	}
}

func isGround(t Term) bool {
	switch v := t.(type) {
	case *Var:
		return false
	case *Pair:
		return isGround(v.Car) && isGround(v.Cdr)
	default:
		return true
	}
}

// StringCharso relates a string atom to the proper list of its
// single-character string atoms. At least one side must be ground: given
// str, it computes cs; given a fully ground cs, it computes str; with
// neither ground it raises InstantiationError, since there is nothing to
// walk to produce the other side.
func StringCharso(str, cs Term) Goal {
	return func(s Substitution) Stream {
		if sv, ok := groundString(s, str); ok {
			return Eq(cs, stringToCharList(sv))(s)
		}
		if chars, ok := groundCharList(s, cs); ok {
			return Eq(str, NewAtom(strings.Join(chars, "")))(s)
		}
		return streamErr(&InstantiationError{Predicate: "string-chars", Detail: "at least one of str, cs must be ground"})
	}
}

func groundString(s Substitution, t Term) (string, bool) {
	w := s.Walk(t)
	atom, ok := w.(*Atom)
	if !ok {
		return "", false
	}
	str, ok := atom.value.(string)
	return str, ok
}

func groundCharList(s Substitution, t Term) ([]string, bool) {
	var chars []string
	cur := s.Walk(t)
	for {
		if equalTerms(cur, Nil) {
			return chars, true
		}
		p, ok := cur.(*Pair)
		if !ok {
			return nil, false
		}
		ch, ok := groundString(s, p.Car)
		if !ok {
			return nil, false
		}
		chars = append(chars, ch)
		cur = s.Walk(p.Cdr)
	}
}

func stringToCharList(str string) Term {
	runes := []rune(str)
	terms := make([]Term, len(runes))
	for i, r := range runes {
		terms[i] = NewAtom(string(r))
	}
	return List(terms...)
}

// NumberCharso relates a number to the proper list of its decimal-digit
// character strings. One side must be ground. Negative numbers are
// rendered with a leading "-" character, matching the natural reading of
// *big.Int.String().
func NumberCharso(n, cs Term) Goal {
	return func(s Substitution) Stream {
		if nv, ok := groundInt(s, n); ok {
			return Eq(cs, stringToCharList(nv.String()))(s)
		}
		if chars, ok := groundCharList(s, cs); ok {
			joined := strings.Join(chars, "")
			bi, ok := new(big.Int).SetString(joined, 10)
			if !ok {
				return streamEmpty
			}
			return Eq(n, NewAtom(bi))(s)
		}
		return streamErr(&InstantiationError{Predicate: "number-chars", Detail: "at least one of n, cs must be ground"})
	}
}
