package minikanren

import "testing"

func TestConjDisjIdentities(t *testing.T) {
	t.Run("conj() behaves like Succeed", func(t *testing.T) {
		results, err := Conj()(Empty()).TakeAll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected exactly one substitution, got %d", len(results))
		}
	})

	t.Run("disj() behaves like Fail", func(t *testing.T) {
		results, err := Disj()(Empty()).TakeAll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("expected no substitutions, got %d", len(results))
		}
	})

	t.Run("disj yields all of clause i before any of clause i+1", func(t *testing.T) {
		q := FreshVar("q")
		goal := Disj(
			Eq(q, NewAtom(1)),
			Eq(q, NewAtom(2)),
			Eq(q, NewAtom(3)),
		)
		results, err := goal(Empty()).TakeAll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int64{1, 2, 3}
		if len(results) != len(want) {
			t.Fatalf("expected %d results, got %d", len(want), len(results))
		}
		for i, s := range results {
			got := s.WalkStar(q).(*Atom).Value()
			if normalizeToInt64(t, got) != want[i] {
				t.Errorf("result %d: expected %d, got %v", i, want[i], got)
			}
		}
	})
}

func normalizeToInt64(t *testing.T, v any) int64 {
	t.Helper()
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	default:
		bi, ok := normalizeNumber(v)
		if !ok {
			t.Fatalf("not a number: %v (%T)", v, v)
		}
		return bi.Int64()
	}
}

func TestDisjiFairness(t *testing.T) {
	// An infinite clause interleaved with a single-answer clause must not
	// starve the finite one: Disji must reach it within a bounded number
	// of pulls even though the first clause alone never terminates.
	t.Run("a finite clause is reachable alongside an infinite sibling", func(t *testing.T) {
		q := FreshVar("q")
		var neverEnding Goal
		neverEnding = Disj(
			Eq(q, NewAtom("looping")),
			Delay(func() Goal { return neverEnding }),
		)
		goal := Disji(neverEnding, Eq(q, NewAtom("finite")))
		results, err := goal(Empty()).Take(20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found := false
		for _, s := range results {
			if v, ok := s.WalkStar(q).(*Atom); ok && v.Value() == "finite" {
				found = true
				break
			}
		}
		if !found {
			t.Error("expected the finite clause's answer to appear within 20 pulls")
		}
	})
}

func TestTake(t *testing.T) {
	t.Run("Take truncates an infinite goal's stream", func(t *testing.T) {
		q := FreshVar("q")
		goal := Take(3, Listo(q))
		results, err := goal(Empty()).TakeAll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Errorf("expected exactly 3 results, got %d", len(results))
		}
	})
}

func TestCallFreshAndFresh(t *testing.T) {
	t.Run("CallFresh introduces an unbound variable", func(t *testing.T) {
		goal := CallFresh("x", func(v *Var) Goal {
			return Eq(v, NewAtom(1))
		})
		results, err := goal(Empty()).TakeAll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
	})

	t.Run("Fresh mints one variable per id", func(t *testing.T) {
		goal := Fresh([]string{"a", "b"}, func(vs []*Var) Goal {
			if len(vs) != 2 {
				t.Fatalf("expected 2 fresh vars, got %d", len(vs))
			}
			return Conj(Eq(vs[0], NewAtom(1)), Eq(vs[1], NewAtom(2)))
		})
		results, err := goal(Empty()).TakeAll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
	})
}
