package domain

import (
	"fmt"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

const (
	// DefaultMaxLength is the longest digit string that is actually enumerated.
	// Longer inputs report zero partitions without searching.
	DefaultMaxLength = 30
	// DefaultMaxOutputBytes bounds the solution text of a single query.
	DefaultMaxOutputBytes = 512 << 20
)

// Solver answers a single query: how many partitions, and optionally which ones.
type Solver interface {
	Solve(digits m.Digits, wantSolutions bool) (m.Result, error)
}

// SolverOption configures a Solver.
type SolverOption func(*solver)

// WithMaxLength overrides the enumeration length cap. Non-positive values keep the default.
func WithMaxLength(n int) SolverOption {
	return func(s *solver) {
		if n > 0 {
			s.maxLength = n
		}
	}
}

// WithMaxOutputBytes bounds the solution text. Zero disables the bound.
func WithMaxOutputBytes(n int) SolverOption {
	return func(s *solver) {
		if n >= 0 {
			s.maxOutput = n
		}
	}
}

type solver struct {
	maxLength int
	maxOutput int
}

// NewSolver creates a Solver with the default length cap and output bound.
func NewSolver(opts ...SolverOption) Solver {
	s := &solver{
		maxLength: DefaultMaxLength,
		maxOutput: DefaultMaxOutputBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve enumerates the partitions of digits. The input is assumed to be validated.
// Strings longer than the length cap yield a zero count and no text.
func (s *solver) Solve(digits m.Digits, wantSolutions bool) (m.Result, error) {
	if digits.Len() > s.maxLength {
		return m.Result{Capped: true}, nil
	}

	e := newEnumerator(digits, wantSolutions, s.maxOutput)
	if err := e.run(); err != nil {
		return m.Result{}, fmt.Errorf("failed to enumerate %d digits: %w", digits.Len(), err)
	}

	return m.Result{
		Count:     e.count,
		Solutions: string(e.out),
	}, nil
}
