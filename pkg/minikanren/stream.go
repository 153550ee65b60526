package minikanren

// Stream is a lazy, forward-only, single-consumption sequence of
// substitutions. It is represented as a tagged variant that is either
// empty, a single mature substitution paired with a thunk for the rest,
// or an immature thunk that has not been forced yet.
//
// A terminated stream additionally carries an optional error: an
// InstantiationError raised by a predicate that cannot decide without
// more information. Once a node carries an error the stream is done;
// nothing downstream recovers from it, it only propagates.
//
// A zero-value Stream is empty. Streams are not safe for concurrent
// consumption. Nothing in this package needs that, since every Goal
// runs on a single substitution at a time.
type Stream struct {
	empty bool
	err   error
	state Substitution
	rest  func() Stream // valid when !empty; nil means "no more after state"
	delay func() Stream // valid when state/rest/err are not yet known
}

// streamEmpty is the canonical empty stream.
var streamEmpty = Stream{empty: true}

// streamErr terminates a stream with an error that must propagate to the
// nearest consumer. err should normally be an *InstantiationError.
func streamErr(err error) Stream {
	return Stream{empty: true, err: err}
}

// streamUnit returns a single-element stream containing s.
func streamUnit(s Substitution) Stream {
	return Stream{state: s, rest: func() Stream { return streamEmpty }}
}

// streamCons returns a stream whose first element is s and whose
// remainder is produced by forcing rest lazily.
func streamCons(s Substitution, rest func() Stream) Stream {
	return Stream{state: s, rest: rest}
}

// streamDelay wraps a thunk that produces a stream without forcing it.
// This is the primitive Delay is built on: constructing a streamDelay
// never evaluates the thunk, only pulling from the resulting Stream does.
func streamDelay(thunk func() Stream) Stream {
	return Stream{delay: thunk}
}

// force resolves one level of laziness, turning a delayed stream into
// either a terminal node (empty, possibly with an error) or a mature
// head+rest pair. It does not recursively force the entire chain, only
// the minimum needed to inspect the head.
func (s Stream) force() Stream {
	for s.delay != nil {
		s = s.delay()
	}
	return s
}

// IsEmpty reports whether the stream is exhausted (with or without an
// error). It forces one level of laziness if necessary.
func (s Stream) IsEmpty() bool {
	return s.force().empty
}

// Err returns the error that terminated the stream, if any. Only
// meaningful once IsEmpty() is true.
func (s Stream) Err() error {
	return s.force().err
}

// Uncons forces the stream and returns its head substitution together
// with the remainder stream. Calling Uncons on an empty (or errored)
// stream panics; callers must check IsEmpty first.
func (s Stream) Uncons() (Substitution, Stream) {
	forced := s.force()
	if forced.empty {
		panic("minikanren: Uncons of empty Stream")
	}
	var next Stream
	if forced.rest != nil {
		next = forced.rest()
	} else {
		next = streamEmpty
	}
	return forced.state, next
}

// mplusSeq concatenates two streams sequentially: every substitution of a
// is yielded before any substitution of b. This is the combinator behind
// Disj/Conde, which yield all substitutions of clause i before any from
// clause i+1. An error on a terminates the combination immediately
// without falling through to b.
func mplusSeq(a, b Stream) Stream {
	return streamDelay(func() Stream {
		fa := a.force()
		if fa.empty {
			if fa.err != nil {
				return fa
			}
			return b
		}
		rest := fa.rest
		return streamCons(fa.state, func() Stream {
			tail := streamEmpty
			if rest != nil {
				tail = rest()
			}
			return mplusSeq(tail, b)
		})
	})
}

// mplusInt interleaves two streams: each pull draws one element from the
// next non-exhausted source in round-robin order. This is the combinator
// behind Disji/Condi and is what gives fair disjunction its
// termination-in-the-presence-of-infinite-siblings guarantee.
func mplusInt(a, b Stream) Stream {
	return streamDelay(func() Stream {
		fa := a.force()
		if fa.empty {
			if fa.err != nil {
				return fa
			}
			return b
		}
		rest := fa.rest
		return streamCons(fa.state, func() Stream {
			tail := streamEmpty
			if rest != nil {
				tail = rest()
			}
			// Swap operand order on every recursive step: this is what
			// makes the recursion visit a, b, a, b, ... in strict
			// round-robin instead of always draining a first.
			return mplusInt(b, tail)
		})
	})
}

// mplusIntN interleaves an arbitrary number of streams in round-robin
// order, skipping exhausted sources, implementing Disji/Condi's n-ary
// fairness guarantee.
func mplusIntN(streams ...Stream) Stream {
	switch len(streams) {
	case 0:
		return streamEmpty
	case 1:
		return streams[0]
	}
	return streamDelay(func() Stream {
		fa := streams[0].force()
		switch {
		case fa.err != nil:
			return fa
		case fa.empty:
			return mplusIntN(streams[1:]...)
		}
		return streamCons(fa.state, func() Stream {
			next := append(make([]Stream, 0, len(streams)), streams[1:]...)
			if fa.rest != nil {
				return mplusIntN(append(next, fa.rest())...)
			}
			return mplusIntN(next...)
		})
	})
}

// bind splices goal into every substitution pulled from s, preserving
// order: for a fixed substitution from s, every substitution goal(that
// substitution) produces appears before s is advanced. This gives conj
// its lexicographic ordering and is the combinator behind Conj.
func bind(s Stream, goal Goal) Stream {
	return streamDelay(func() Stream {
		fs := s.force()
		if fs.empty {
			return fs
		}
		rest := fs.rest
		head := goal(fs.state)
		return mplusSeq(head, streamDelay(func() Stream {
			tail := streamEmpty
			if rest != nil {
				tail = rest()
			}
			return bind(tail, goal)
		}))
	})
}

// Take pulls up to n substitutions from the stream, forcing exactly as
// much of the lazy chain as needed and no more. n <= 0 returns no
// substitutions without forcing the stream at all. If the stream
// terminates with an InstantiationError before n substitutions have been
// produced, Take returns the substitutions gathered so far together with
// that error.
func (s Stream) Take(n int) ([]Substitution, error) {
	if n <= 0 {
		return nil, nil
	}
	results := make([]Substitution, 0, n)
	cur := s
	for i := 0; i < n; i++ {
		if cur.IsEmpty() {
			return results, cur.Err()
		}
		var st Substitution
		st, cur = cur.Uncons()
		results = append(results, st)
	}
	return results, nil
}

// TakeAll drains the entire stream. It must only be used on streams known
// to be finite: a predicate like Listo yields infinitely many bindings,
// and TakeAll on such a stream never returns.
func (s Stream) TakeAll() ([]Substitution, error) {
	var results []Substitution
	cur := s
	for !cur.IsEmpty() {
		var st Substitution
		st, cur = cur.Uncons()
		results = append(results, st)
	}
	return results, cur.Err()
}
