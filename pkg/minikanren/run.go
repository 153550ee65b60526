package minikanren

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// RunOption configures a Run/RunAll call. The zero value of runConfig
// (no logger) is the common case; options exist purely for opt-in
// debugging.
type RunOption func(*runConfig)

type runConfig struct {
	logger hclog.Logger
}

// WithLogger attaches a structured logger that receives Trace-level
// entries as Run pulls substitutions from the root goal's stream. It has
// no effect on what Run returns, only on what it reports while doing so.
func WithLogger(logger hclog.Logger) RunOption {
	return func(c *runConfig) { c.logger = logger }
}

func buildRunConfig(opts []RunOption) *runConfig {
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// validateRunArgs collects every misuse-error condition at once instead
// of stopping at the first one, the way nomad's job submission
// validation reports every problem with a job in one pass.
func validateRunArgs(n int, goalFunc func(*Var) Goal) error {
	var result *multierror.Error
	if goalFunc == nil {
		result = multierror.Append(result, fmt.Errorf("goal function must not be nil"))
	}
	if n < 0 {
		result = multierror.Append(result, fmt.Errorf("n must be >= 0, got %d", n))
	}
	if result.ErrorOrNil() == nil {
		return nil
	}
	return &MisuseError{Reason: result.Error()}
}

// Run seeds the empty substitution, invokes goalFunc with a fresh query
// variable, and pulls up to n substitutions from the resulting stream,
// projecting out the query variable's value via a deep walk on each one.
// It returns the answers gathered so far together with a non-nil error
// if the stream terminated with an InstantiationError before n answers
// were produced, or a *MisuseError if n or goalFunc themselves are
// invalid.
func Run(n int, goalFunc func(*Var) Goal, opts ...RunOption) ([]Term, error) {
	if err := validateRunArgs(n, goalFunc); err != nil {
		return nil, err
	}
	cfg := buildRunConfig(opts)
	q := FreshVar("q")
	stream := goalFunc(q)(Empty())
	if cfg.logger != nil {
		cfg.logger.Trace("minikanren: run starting", "requested", n)
	}
	results := make([]Term, 0, n)
	cur := stream
	for len(results) < n && !cur.IsEmpty() {
		var s Substitution
		s, cur = cur.Uncons()
		val := s.WalkStar(q)
		results = append(results, val)
		if cfg.logger != nil {
			cfg.logger.Trace("minikanren: run yielded answer", "index", len(results)-1, "value", val.String())
		}
	}
	var err error
	if len(results) < n {
		err = cur.Err()
	}
	if cfg.logger != nil {
		cfg.logger.Trace("minikanren: run finished", "answers", len(results), "error", err)
	}
	return results, err
}

// RunAll is Run without a bound: it drains the entire stream. Callers
// must only use it on goals known to produce finitely many answers. A
// predicate like Listo yields infinitely many bindings, and RunAll on
// such a goal never returns.
func RunAll(goalFunc func(*Var) Goal, opts ...RunOption) ([]Term, error) {
	if err := validateRunArgs(0, goalFunc); err != nil {
		return nil, err
	}
	cfg := buildRunConfig(opts)
	q := FreshVar("q")
	stream := goalFunc(q)(Empty())
	if cfg.logger != nil {
		cfg.logger.Trace("minikanren: run-all starting")
	}
	var results []Term
	cur := stream
	for !cur.IsEmpty() {
		var s Substitution
		s, cur = cur.Uncons()
		val := s.WalkStar(q)
		results = append(results, val)
		if cfg.logger != nil {
			cfg.logger.Trace("minikanren: run-all yielded answer", "index", len(results)-1, "value", val.String())
		}
	}
	err := cur.Err()
	if cfg.logger != nil {
		cfg.logger.Trace("minikanren: run-all finished", "answers", len(results), "error", err)
	}
	return results, err
}
