package minikanren

import "testing"

func TestSucco(t *testing.T) {
	t.Run("computes the successor of a ground number", func(t *testing.T) {
		results, err := Run(1, func(q *Var) Goal { return Succo(NewAtom(int64(4)), q) })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || normalizeToInt64(t, results[0].(*Atom).Value()) != 5 {
			t.Errorf("expected 5, got %v", results)
		}
	})

	t.Run("computes the predecessor given the successor", func(t *testing.T) {
		results, err := Run(1, func(q *Var) Goal { return Succo(q, NewAtom(int64(5))) })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || normalizeToInt64(t, results[0].(*Atom).Value()) != 4 {
			t.Errorf("expected 4, got %v", results)
		}
	})

	t.Run("raises InstantiationError when both sides are unbound", func(t *testing.T) {
		_, err := Run(1, func(q *Var) Goal {
			return Fresh([]string{"n"}, func(vs []*Var) Goal { return Succo(vs[0], q) })
		})
		if _, ok := err.(*InstantiationError); !ok {
			t.Errorf("expected *InstantiationError, got %v", err)
		}
	})
}

func TestPluso(t *testing.T) {
	t.Run("adds two ground numbers", func(t *testing.T) {
		results, err := Run(1, func(q *Var) Goal {
			return Pluso(NewAtom(int64(2)), NewAtom(int64(3)), q)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || normalizeToInt64(t, results[0].(*Atom).Value()) != 5 {
			t.Errorf("expected 5, got %v", results)
		}
	})

	t.Run("solves for an addend given the sum", func(t *testing.T) {
		results, err := Run(1, func(q *Var) Goal {
			return Pluso(NewAtom(int64(2)), q, NewAtom(int64(5)))
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || normalizeToInt64(t, results[0].(*Atom).Value()) != 3 {
			t.Errorf("expected 3, got %v", results)
		}
	})

	t.Run("enumerates pairs summing to a ground target", func(t *testing.T) {
		results, err := Run(6, func(q *Var) Goal {
			return Fresh([]string{"x", "y"}, func(vs []*Var) Goal {
				return Conj(Pluso(vs[0], vs[1], NewAtom(int64(3))), Eq(q, List(vs[0], vs[1])))
			})
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 4 {
			t.Errorf("expected 4 pairs summing to 3 (0+3..3+0), got %d", len(results))
		}
	})

	t.Run("raises InstantiationError when no argument is ground", func(t *testing.T) {
		_, err := Run(1, func(q *Var) Goal {
			return Fresh([]string{"x", "y"}, func(vs []*Var) Goal { return Pluso(vs[0], vs[1], q) })
		})
		if _, ok := err.(*InstantiationError); !ok {
			t.Errorf("expected *InstantiationError, got %v", err)
		}
	})
}

func TestBetweeno(t *testing.T) {
	t.Run("enumerates an inclusive range in increasing order", func(t *testing.T) {
		results, err := Run(10, func(q *Var) Goal {
			return Betweeno(NewAtom(int64(1)), NewAtom(int64(3)), q)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int64{1, 2, 3}
		if len(results) != len(want) {
			t.Fatalf("expected %d results, got %d", len(want), len(results))
		}
		for i, r := range results {
			if normalizeToInt64(t, r.(*Atom).Value()) != want[i] {
				t.Errorf("result %d: expected %d, got %v", i, want[i], r)
			}
		}
	})

	t.Run("verifies a ground member of the range", func(t *testing.T) {
		results, err := Run(1, func(q *Var) Goal {
			return Conj(Eq(q, NewAtom(int64(2))), Betweeno(NewAtom(int64(1)), NewAtom(int64(3)), q))
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("expected 1 result, got %d", len(results))
		}
	})

	t.Run("enumerates without an upper bound when hi is PosInf", func(t *testing.T) {
		results, err := Run(3, func(q *Var) Goal {
			return Betweeno(NewAtom(int64(5)), PosInf, q)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int64{5, 6, 7}
		if len(results) != len(want) {
			t.Fatalf("expected %d results, got %d", len(want), len(results))
		}
		for i, r := range results {
			if normalizeToInt64(t, r.(*Atom).Value()) != want[i] {
				t.Errorf("result %d: expected %d, got %v", i, want[i], r)
			}
		}
	})
}

func TestNumbero(t *testing.T) {
	t.Run("accepts a ground number atom", func(t *testing.T) {
		results, err := Run(1, func(q *Var) Goal {
			return Conj(Eq(q, NewAtom(int64(9))), Numbero(q))
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("expected 1 result, got %d", len(results))
		}
	})

	t.Run("rejects a ground non-number atom", func(t *testing.T) {
		results, err := Run(1, func(q *Var) Goal {
			return Conj(Eq(q, NewAtom("nope")), Numbero(q))
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})
}
