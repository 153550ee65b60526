package minikanren

import "math/rand/v2"

// Clause is a sequence of goals conjoined together; a bare goal is simply
// a Clause of length 1.
type Clause []Goal

// Conde takes each clause to be a conjunction of its goals and builds a
// sequential disjunction of those conjunctions: conde is disj over the
// conjunction of each clause's goals.
func Conde(clauses ...Clause) Goal {
	return Disj(clauseGoals(clauses)...)
}

// Condi is Conde's fair counterpart, built with Disji instead of Disj.
func Condi(clauses ...Clause) Goal {
	return Disji(clauseGoals(clauses)...)
}

func clauseGoals(clauses []Clause) []Goal {
	goals := make([]Goal, len(clauses))
	for i, c := range clauses {
		goals[i] = Conj(c...)
	}
	return goals
}

// Conda implements the soft cut: it finds the first clause whose head goal
// yields at least one substitution, commits to that clause's remaining
// goals run over the head's *entire* stream, and discards every later
// clause. A clause whose head succeeds once but whose tail then fails
// yields nothing further; the commitment is to the clause, not to any
// particular answer.
func Conda(clauses ...Clause) Goal {
	return func(s Substitution) Stream {
		return condaFrom(clauses, s)
	}
}

func condaFrom(clauses []Clause, s Substitution) Stream {
	if len(clauses) == 0 {
		return streamEmpty
	}
	head, tail := clauses[0][0], clauses[0][1:]
	headStream := head(s)
	if headStream.IsEmpty() {
		if err := headStream.Err(); err != nil {
			return streamErr(err)
		}
		return condaFrom(clauses[1:], s)
	}
	return bind(headStream, Conj(tail...))
}

// Condu is Conda's committed-choice sibling: once a clause's head succeeds
// at least once, only its *first* substitution is kept and the clause's
// tail is evaluated exactly once against it.
func Condu(clauses ...Clause) Goal {
	return func(s Substitution) Stream {
		return conduFrom(clauses, s)
	}
}

func conduFrom(clauses []Clause, s Substitution) Stream {
	if len(clauses) == 0 {
		return streamEmpty
	}
	head, tail := clauses[0][0], clauses[0][1:]
	results, err := head(s).Take(1)
	if len(results) == 0 {
		if err != nil {
			return streamErr(err)
		}
		return conduFrom(clauses[1:], s)
	}
	return Conj(tail...)(results[0])
}

// Condr is a randomized interleaved disjunction: each pull selects a
// uniformly random non-exhausted clause. It makes no stream-order
// guarantee and must not appear in deterministic tests. The randomness
// comes from math/rand/v2, the host runtime's own random source.
func Condr(clauses ...Clause) Goal {
	goals := clauseGoals(clauses)
	return func(s Substitution) Stream {
		streams := make([]Stream, len(goals))
		for i, g := range goals {
			gg := g
			streams[i] = streamDelay(func() Stream { return gg(s) })
		}
		return mplusRand(streams)
	}
}

func mplusRand(streams []Stream) Stream {
	return streamDelay(func() Stream {
		active := make([]Stream, 0, len(streams))
		for _, st := range streams {
			f := st.force()
			if !f.empty {
				active = append(active, f)
			} else if f.err != nil {
				return f
			}
		}
		if len(active) == 0 {
			return streamEmpty
		}
		i := rand.IntN(len(active))
		chosen := active[i]
		rest := chosen.rest
		next := make([]Stream, len(active))
		copy(next, active)
		if rest != nil {
			next[i] = rest()
		} else {
			next[i] = streamEmpty
		}
		return streamCons(chosen.state, func() Stream { return mplusRand(next) })
	})
}
