package minikanren

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Goal is a function from a substitution to a (lazy) stream of
// substitutions. It is the one abstraction the rest of this package
// builds on. A Goal must be pure: invoking it on the same substitution any
// number of times yields streams with identical element sequences (the
// one exception is Condr, which is explicitly randomized).
type Goal func(Substitution) Stream

var varCounter uint64

// FreshVar mints a new logic variable. A non-empty name produces a
// readable id (name plus a monotonic counter, following the teacher's
// `_name_id` convention); an empty name produces a globally unique
// anonymous id via uuid. The anonymous form is for scratch vars that
// relational predicates manufacture internally, so they don't need to
// thread a naming counter through every predicate.
func FreshVar(name string) *Var {
	if name == "" {
		return &Var{id: uuid.NewString()}
	}
	n := atomic.AddUint64(&varCounter, 1)
	return &Var{id: fmt.Sprintf("%s.%d", name, n)}
}

// Succeed is the goal that always succeeds, yielding the incoming
// substitution unchanged.
func Succeed(s Substitution) Stream {
	return streamUnit(s)
}

// Fail is the goal that never succeeds.
func Fail(s Substitution) Stream {
	return streamEmpty
}

// Eq is the unification goal: it succeeds with u and v unified, or fails
// if they cannot be made equal. Named Eq rather than == because == is not
// a legal Go identifier.
func Eq(u, v Term) Goal {
	return func(s Substitution) Stream {
		s2, ok := Unify(u, v, s)
		if !ok {
			return streamEmpty
		}
		return streamUnit(s2)
	}
}

// EqOccurs is Eq using the occurs-check unifier.
func EqOccurs(u, v Term) Goal {
	return func(s Substitution) Stream {
		s2, ok := UnifyOccurs(u, v, s)
		if !ok {
			return streamEmpty
		}
		return streamUnit(s2)
	}
}

// Conj is a left fold of goals with bind: conj() == Succeed, conj(g) == g,
// and any goal after the first operates on the substitutions the previous
// goals produced.
func Conj(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Succeed
	case 1:
		return goals[0]
	}
	return func(s Substitution) Stream {
		result := goals[0](s)
		for _, g := range goals[1:] {
			result = bind(result, g)
		}
		return result
	}
}

// Disj is a left fold of goals with sequential mplus: disj() == Fail,
// disj(g) == g, and disj yields all of clause i's substitutions before any
// of clause i+1's.
func Disj(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Fail
	case 1:
		return goals[0]
	}
	return func(s Substitution) Stream {
		result := goals[0](s)
		for _, g := range goals[1:] {
			gg := g
			prev := result
			result = mplusSeq(prev, streamDelay(func() Stream { return gg(s) }))
		}
		return result
	}
}

// Disji is Disj's fair counterpart: an n-ary interleaved disjunction.
// disji() == Fail, disji(g) == g. Unlike Disj, the k-th pull from the
// combined stream comes from clause k mod m, skipping exhausted clauses,
// so a finite answer in any clause is reached within a bounded number of
// pulls even when sibling clauses are infinite.
func Disji(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Fail
	case 1:
		return goals[0]
	}
	return func(s Substitution) Stream {
		streams := make([]Stream, len(goals))
		for i, g := range goals {
			gg := g
			streams[i] = streamDelay(func() Stream { return gg(s) })
		}
		return mplusIntN(streams...)
	}
}

// Delay returns a goal that constructs its inner goal only when invoked,
// never at construction time. This is the primitive that breaks otherwise
// unguarded left recursion: a recursive relation must wrap its self-call
// in Delay so that building the goal tree does not itself recurse
// infinitely before any substitution has been produced.
func Delay(gc func() Goal) Goal {
	return func(s Substitution) Stream {
		return streamDelay(func() Stream { return gc()(s) })
	}
}

// Take truncates the stream a goal produces to at most n substitutions.
// Unlike Run's n, which stops pulling once n answers are found, Take is a
// goal combinator: it can appear anywhere inside a larger goal tree to
// bound a sub-search.
func Take(n int, g Goal) Goal {
	return func(s Substitution) Stream {
		results, err := g(s).Take(n)
		return sliceToStream(results, err)
	}
}

func sliceToStream(results []Substitution, err error) Stream {
	if len(results) == 0 {
		if err != nil {
			return streamErr(err)
		}
		return streamEmpty
	}
	head, tail := results[0], results[1:]
	return streamCons(head, func() Stream { return sliceToStream(tail, err) })
}

// CallFresh creates a single fresh variable named id and invokes gc with
// it, running the resulting goal against the unchanged incoming
// substitution. The fresh variable starts unbound; nothing is added to
// the substitution until a goal unifies it with something.
func CallFresh(id string, gc func(*Var) Goal) Goal {
	return func(s Substitution) Stream {
		v := FreshVar(id)
		return gc(v)(s)
	}
}

// Fresh is call-fresh iterated over ids: it mints len(ids) fresh
// variables and invokes gc with all of them.
func Fresh(ids []string, gc func([]*Var) Goal) Goal {
	return func(s Substitution) Stream {
		vars := make([]*Var, len(ids))
		for i, id := range ids {
			vars[i] = FreshVar(id)
		}
		return gc(vars)(s)
	}
}
