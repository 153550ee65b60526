package minikanren

import (
	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// Substitution is an immutable mapping from variable id to the term it is
// bound to. It is backed by a persistent radix tree (the same family of
// structure hashicorp/nomad's state store uses via go-memdb) so that
// Extend never mutates the receiver and shares every untouched subtree
// with it. Extension is non-destructive without any locking, since the
// engine never touches a Substitution from more than one goroutine.
type Substitution struct {
	tree *iradix.Tree[Term]
}

// Empty returns the unique initial substitution.
func Empty() Substitution {
	return Substitution{tree: iradix.New[Term]()}
}

// Size returns the number of bindings in the substitution.
func (s Substitution) Size() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Extend returns a new substitution with one added binding. It does not
// check whether id is already bound. The unifier only ever calls Extend
// on variables it has just walked to an unbound state, so a pre-existing
// binding would indicate a bug upstream, not a condition Extend itself
// needs to guard against.
func (s Substitution) Extend(id string, t Term) Substitution {
	tree, _, _ := s.tree.Insert([]byte(id), t)
	return Substitution{tree: tree}
}

// lookup returns the term bound to id, or nil, false if id is unbound.
func (s Substitution) lookup(id string) (Term, bool) {
	if s.tree == nil {
		return nil, false
	}
	return s.tree.Get([]byte(id))
}

// Walk resolves term one step at a time: if term is a variable bound in s,
// it follows the binding chain until it reaches either a non-variable or
// an unbound variable. A self-binding v ↦ v (which Unify never produces,
// but a hand-built Substitution might) terminates at v rather than
// looping, since the chain only advances when the looked-up term is a
// different variable or changes kind.
func (s Substitution) Walk(t Term) Term {
	for {
		v, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, found := s.lookup(v.id)
		if !found {
			return t
		}
		if bv, ok := bound.(*Var); ok && bv.id == v.id {
			return v
		}
		t = bound
	}
}

// WalkStar performs a deep walk: Walk followed by recursion into Pair
// elements, so the result contains no variable that is itself bound in s.
func (s Substitution) WalkStar(t Term) Term {
	walked := s.Walk(t)
	if p, ok := walked.(*Pair); ok {
		return NewPair(s.WalkStar(p.Car), s.WalkStar(p.Cdr))
	}
	return walked
}
