package minikanren

import "testing"

func TestUnify(t *testing.T) {
	t.Run("two equal atoms unify without extending the substitution", func(t *testing.T) {
		s := Empty()
		s2, ok := Unify(NewAtom(1), NewAtom(1), s)
		if !ok {
			t.Fatal("expected unification to succeed")
		}
		if s2.Size() != 0 {
			t.Errorf("expected no new bindings, got %d", s2.Size())
		}
	})

	t.Run("two different atoms fail to unify", func(t *testing.T) {
		_, ok := Unify(NewAtom(1), NewAtom(2), Empty())
		if ok {
			t.Error("expected unification to fail")
		}
	})

	t.Run("an unbound var unifies with any term, binding it", func(t *testing.T) {
		x := FreshVar("x")
		s, ok := Unify(x, NewAtom("hi"), Empty())
		if !ok {
			t.Fatal("expected unification to succeed")
		}
		if got := s.Walk(x); !equalTerms(got, NewAtom("hi")) {
			t.Errorf("expected x to walk to \"hi\", got %v", got)
		}
	})

	t.Run("unifying a var with itself extends nothing", func(t *testing.T) {
		x := FreshVar("x")
		s, ok := Unify(x, x, Empty())
		if !ok {
			t.Fatal("expected unification to succeed")
		}
		if s.Size() != 0 {
			t.Errorf("expected no new bindings, got %d", s.Size())
		}
	})

	t.Run("pairs unify element-wise", func(t *testing.T) {
		x, y := FreshVar("x"), FreshVar("y")
		l1 := List(x, NewAtom(2))
		l2 := List(NewAtom(1), y)
		s, ok := Unify(l1, l2, Empty())
		if !ok {
			t.Fatal("expected unification to succeed")
		}
		if got := s.Walk(x); !equalTerms(got, NewAtom(1)) {
			t.Errorf("expected x = 1, got %v", got)
		}
		if got := s.Walk(y); !equalTerms(got, NewAtom(2)) {
			t.Errorf("expected y = 2, got %v", got)
		}
	})

	t.Run("lists of unequal length fail to unify", func(t *testing.T) {
		l1 := List(NewAtom(1), NewAtom(2))
		l2 := List(NewAtom(1), NewAtom(2), NewAtom(3))
		if _, ok := Unify(l1, l2, Empty()); ok {
			t.Error("expected unification to fail on unequal-length lists")
		}
	})

	t.Run("transitive binding walks through an intermediate var", func(t *testing.T) {
		x, y := FreshVar("x"), FreshVar("y")
		s, ok := Unify(x, y, Empty())
		if !ok {
			t.Fatal("expected unification to succeed")
		}
		s, ok = Unify(y, NewAtom(5), s)
		if !ok {
			t.Fatal("expected unification to succeed")
		}
		if got := s.Walk(x); !equalTerms(got, NewAtom(5)) {
			t.Errorf("expected x to walk through y to 5, got %v", got)
		}
	})
}

func TestUnifyOccurs(t *testing.T) {
	t.Run("Unify allows a cyclic binding that UnifyOccurs rejects", func(t *testing.T) {
		x := FreshVar("x")
		cyclic := NewPair(NewAtom(1), x)

		if _, ok := Unify(x, cyclic, Empty()); !ok {
			t.Error("plain Unify should accept the cyclic binding")
		}
		if _, ok := UnifyOccurs(x, cyclic, Empty()); ok {
			t.Error("UnifyOccurs should reject a term mentioning the variable being bound")
		}
	})

	t.Run("UnifyOccurs behaves like Unify on acyclic terms", func(t *testing.T) {
		x := FreshVar("x")
		s, ok := UnifyOccurs(x, NewAtom(7), Empty())
		if !ok {
			t.Fatal("expected unification to succeed")
		}
		if got := s.Walk(x); !equalTerms(got, NewAtom(7)) {
			t.Errorf("expected x = 7, got %v", got)
		}
	})
}
