package minikanren

import "fmt"

// InstantiationError is raised when a relational predicate is called with
// a combination of ground/unbound arguments it cannot decide. It is a
// distinct failure kind from ordinary unification failure: a FAIL prunes
// a branch silently, while an InstantiationError must surface to the
// consumer pulling from the stream.
type InstantiationError struct {
	Predicate string // the predicate that could not decide, e.g. "pluso"
	Detail    string // what was insufficiently instantiated
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("minikanren: %s: %s", e.Predicate, e.Detail)
}

// MisuseError reports a construction-time programming error: bad
// arguments passed to Run itself, as opposed to anything about the goal's
// search. It is returned synchronously by Run, never surfaced through a
// Stream.
type MisuseError struct {
	Reason string
}

func (e *MisuseError) Error() string {
	return "minikanren: misuse: " + e.Reason
}
