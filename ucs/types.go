// Package ucs defines core types and configuration options
// for uniform-cost search over Rush Hour puzzle states.
//
// The search expands states in order of increasing cumulative cost and
// returns the first goal popped, which non-negative move costs make a
// minimum-cost solution.
//
// Options:
//
//	– Target:            identifier of the controlled vehicle (default 'X').
//	– UnitCost:          cost per cell of vehicle length per move (default 1, must be ≥ 0).
//	– ExitColumn:        goal column; ExitRightmost selects N-1 at solve time.
//	– Ctx:               cancellation context, checked once per frontier pop.
//	– MaxExpansions:     node-count budget; 0 disables the limit.
//	– OnExpand:          observer invoked as each state is expanded.
//
// Errors (sentinel):
//
//	– ErrNilState         if the initial state is nil.
//	– ErrTargetNotFound   if the controlled vehicle is absent from the state.
//	– ErrBadUnitCost      if UnitCost is negative.
//	– ErrBadExitColumn    if ExitColumn is negative or beyond the grid.
//	– ErrBadMaxExpansions if MaxExpansions is negative.
//	– ErrNoSolution       if the frontier exhausts without reaching a goal.
//	– ErrBudgetExhausted  if MaxExpansions states were expanded without a goal.
//	– ErrInvariant        if a generated successor fails the one-move diff.
//
// Example usage:
//
//	res, err := ucs.Solve(start,
//	    ucs.Target('X'),
//	    ucs.WithUnitCost(2),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, len(res.Path))
package ucs

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/DuckTonn/rushhour/board"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilState indicates a nil initial state.
	ErrNilState = errors.New("ucs: initial state is nil")

	// ErrTargetNotFound indicates the controlled vehicle's identifier is
	// absent from the initial state.
	ErrTargetNotFound = errors.New("ucs: target vehicle not found")

	// ErrBadUnitCost indicates a negative unit cost.
	ErrBadUnitCost = errors.New("ucs: unit cost must be non-negative")

	// ErrBadExitColumn indicates an exit column outside the grid.
	ErrBadExitColumn = errors.New("ucs: exit column out of range")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("ucs: expansion budget must be non-negative")

	// ErrNoSolution indicates the reachable state space holds no goal.
	// This is a normal negative result, not a failure of the engine;
	// the accompanying Result reports Cost == CostInfinite.
	ErrNoSolution = errors.New("ucs: no solution")

	// ErrBudgetExhausted indicates the MaxExpansions budget ran out
	// before a goal was popped.
	ErrBudgetExhausted = errors.New("ucs: expansion budget exhausted")

	// ErrInvariant indicates a successor that does not differ from its
	// parent by exactly the move the generator claims. It means a bug in
	// move generation, never a property of the puzzle.
	ErrInvariant = errors.New("ucs: successor violates the single-move invariant")
)

// CostInfinite is the cost reported for an unsolvable puzzle.
const CostInfinite int64 = math.MaxInt64

const (
	// DefaultTarget is the conventional identifier of the controlled vehicle.
	DefaultTarget byte = 'X'

	// DefaultUnitCost is the default cost per cell of vehicle length.
	DefaultUnitCost int64 = 1

	// ExitRightmost selects column N-1 of the puzzle at solve time.
	ExitRightmost int = -1
)

// Step is one move of a solution path: the vehicle, the direction, and
// the cumulative path cost after taking the move.
type Step struct {
	Vehicle byte
	Dir     board.Direction
	Cost    int64
}

// String renders a step as, e.g., "C down (cost 3)".
func (s Step) String() string {
	return fmt.Sprintf("%c %s (cost %d)", s.Vehicle, s.Dir, s.Cost)
}

// Result is the outcome of one search.
type Result struct {
	// Path holds the moves from the initial state to the goal, in order.
	// It is empty when the initial state is already a goal and nil when
	// Found is false.
	Path []Step

	// Cost is the total path cost, CostInfinite when Found is false.
	Cost int64

	// Expanded counts the states popped from the frontier and expanded.
	Expanded int

	// Found reports whether a goal state was reached.
	Found bool
}

// Options configures one Solve invocation.
//
// Target        – identifier of the controlled vehicle.
// UnitCost      – cost per cell of vehicle length per move. Must be ≥ 0.
// ExitColumn    – goal column; ExitRightmost means column N-1.
// Ctx           – cancellation context, checked once per frontier pop.
// MaxExpansions – expansion budget; 0 explicitly disables the limit.
// OnExpand      – called as each state is expanded, with its canonical
// key and cumulative cost. Useful for progress reporting and statistics.
type Options struct {
	Target        byte
	UnitCost      int64
	ExitColumn    int
	Ctx           context.Context
	MaxExpansions int
	OnExpand      func(key string, cost int64)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// Target sets the identifier of the controlled vehicle.
func Target(id byte) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithUnitCost sets the cost per cell of vehicle length per move.
// Negative values panic with ErrBadUnitCost; zero is allowed and makes
// every move free, so the search degenerates to reachability.
func WithUnitCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadUnitCost.Error())
		}
		o.UnitCost = c
	}
}

// WithExitColumn pins the goal column.
//
//	col ≥ 0:             use this column
//	col == ExitRightmost: explicit default, column N-1 at solve time
//	otherwise:           invalid, panics with ErrBadExitColumn
//
// Columns beyond the grid are caught at solve time, once N is known.
func WithExitColumn(col int) Option {
	return func(o *Options) {
		switch {
		case col < ExitRightmost:
			panic(ErrBadExitColumn.Error())
		default:
			o.ExitColumn = col
		}
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of states the search may expand.
//
//	n > 0:  abort with ErrBudgetExhausted after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid, panics with ErrBadMaxExpansions
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers an observer invoked as each state is expanded.
func WithOnExpand(fn func(key string, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use it as the starting point for functional overrides.
//
// Defaults:
//   - Target:        'X'.
//   - UnitCost:      1.
//   - ExitColumn:    ExitRightmost (column N-1 of the puzzle).
//   - Ctx:           context.Background().
//   - MaxExpansions: 0 (no limit).
//   - OnExpand:      no-op.
func DefaultOptions() Options {
	return Options{
		Target:        DefaultTarget,
		UnitCost:      DefaultUnitCost,
		ExitColumn:    ExitRightmost,
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(string, int64) {},
	}
}
