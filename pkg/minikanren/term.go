// Package minikanren implements a miniKanren-family relational programming
// engine: first-class logic variables, syntactic unification over ground
// terms and list structure, and a goal combinator algebra whose goals
// produce lazy, possibly infinite streams of satisfying substitutions.
//
// The engine is single-threaded and cooperative. A Goal is a function from
// a Substitution to a Stream; nothing in this package spawns a goroutine or
// shares mutable state across calls, so the usual Go data-race concerns do
// not apply here. Callers are free to run independent Run calls on
// separate goroutines, but a single Stream must not be consumed from more
// than one goroutine at a time.
package minikanren

import (
	"fmt"
	"math/big"
)

// Term is any value in the logic universe: a variable, an atom, or a cons
// pair. It is a closed sum: term() is unexported so no package outside
// minikanren can introduce a new variant.
type Term interface {
	term()
	fmt.Stringer
}

// Var is a logic variable, identified by id. Two Vars are the same
// variable iff their ids are equal.
type Var struct {
	id string
}

func (*Var) term() {}

// String returns the variable's id prefixed with an underscore, following
// the teacher's `_name_id` convention for anonymous-looking output.
func (v *Var) String() string {
	return "_" + v.id
}

// ID returns the variable's unique string identifier.
func (v *Var) ID() string { return v.id }

// Atom is an atomic ground value: an int64, a *big.Int, a string, a bool,
// or nil (the "undefined" sentinel). NewAtom does not validate the Go
// type of value; unification and the relational predicates treat
// unrecognized value types as opaque and only equal to themselves.
type Atom struct {
	value any
}

func (*Atom) term() {}

// NewAtom wraps any Go value as an atomic term.
func NewAtom(value any) *Atom {
	return &Atom{value: value}
}

// Value returns the underlying Go value.
func (a *Atom) Value() any { return a.value }

func (a *Atom) String() string {
	if a.value == nil {
		return "()"
	}
	return fmt.Sprintf("%v", a.value)
}

// Nil is the distinguished empty-list atom.
var Nil = NewAtom(nil)

// Pair is a cons cell: the classic building block for lists. A proper list
// is a chain of Pairs terminated by Nil; an improper (partial) list has an
// unbound Var as its final cdr, which is exactly what lets Conso/Appendo
// relate lists whose tail is not yet known.
type Pair struct {
	Car, Cdr Term
}

func (*Pair) term() {}

// NewPair builds a single cons cell.
func NewPair(car, cdr Term) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

func (p *Pair) String() string {
	return "(" + p.Car.String() + " . " + p.Cdr.String() + ")"
}

// List builds a proper list out of terms, terminated by Nil. This is the
// usual way to construct ground list literals in goal bodies.
func List(terms ...Term) Term {
	var result Term = Nil
	for i := len(terms) - 1; i >= 0; i-- {
		result = NewPair(terms[i], result)
	}
	return result
}

// equalTerms reports strict structural equality: same variable identity,
// equal atom values, or recursively equal pairs. This is distinct from
// unification, since it never consults a substitution and never binds
// anything.
func equalTerms(a, b Term) bool {
	switch av := a.(type) {
	case *Var:
		bv, ok := b.(*Var)
		return ok && av.id == bv.id
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && atomValuesEqual(av.value, bv.value)
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && equalTerms(av.Car, bv.Car) && equalTerms(av.Cdr, bv.Cdr)
	default:
		return false
	}
}

func atomValuesEqual(a, b any) bool {
	an, aIsNum := normalizeNumber(a)
	bn, bIsNum := normalizeNumber(b)
	if aIsNum && bIsNum {
		return an.Cmp(bn) == 0
	}
	if aIsNum != bIsNum {
		return false
	}
	return a == b
}

// normalizeNumber reports whether v is a number atom (int, int64 or *big.Int)
// and, if so, returns its value as a *big.Int for uniform comparison and
// arithmetic. Arbitrary-precision integers and plain machine integers are
// interchangeable as far as the relational library is concerned; they
// differ only in magnitude, not in representation.
func normalizeNumber(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case int64:
		return big.NewInt(n), true
	case int:
		return big.NewInt(int64(n)), true
	case *big.Int:
		return n, true
	default:
		return nil, false
	}
}
