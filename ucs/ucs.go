// Package ucs implements uniform-cost search over Rush Hour states.
//
// Uniform-cost search is Dijkstra's algorithm run over the implicit
// graph whose vertices are board states and whose edges are single-cell
// vehicle slides weighted by vehicle length × unit cost. The engine
// expands states in order of increasing cumulative cost, so the first
// goal state popped from the frontier carries the minimum total cost.
//
// Complexity (S = reachable states, M = legal moves per state):
//
//   - Time:  O(S·M·(N² + log S))
//   - Each state is expanded at most once: S expansions.
//   - Each expansion generates up to M children, each costing one
//     O(N²) copy-on-write construction plus one heap push.
//   - Heap operations cost O(log N), N ≤ S·M under lazy deletion.
//   - Space: O(S·N²) for the state repository plus O(S·M) frontier
//     entries in the worst case.
//
// Notes on implementation choices:
//
//   - Lazy deletion: a state's key may sit in the frontier several
//     times with different costs; only the first pop counts, later pops
//     are discarded against the explored set.
//   - Equal-cost ties break on canonical key order, never on insertion
//     order, so repeated runs return identical paths.
//   - Frontier entries carry their path as a shared linked trail; the
//     winning trail is materialized once, on success.
package ucs

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/DuckTonn/rushhour/board"
)

// Solve searches for a minimum-cost move sequence that brings the
// target vehicle to the exit column of the start state. It accepts
// functional options to customize behavior (Target, WithUnitCost,
// WithExitColumn, WithContext, WithMaxExpansions, WithOnExpand).
//
// Returns:
//
//   - Result with Found=true, the ordered Path (empty when start is
//     already solved), its total Cost, and the expansion count; or
//   - Result with Found=false and Cost=CostInfinite, alongside
//     ErrNoSolution (frontier exhausted), ErrBudgetExhausted, a context
//     error (cancelled or deadline exceeded), or ErrInvariant.
//
// Preconditions and validation (in order):
//  1. start must be non-nil (ErrNilState).
//  2. The target vehicle must exist in start (ErrTargetNotFound).
//  3. The resolved exit column must lie on the grid (ErrBadExitColumn).
//  4. UnitCost and MaxExpansions must be non-negative (ErrBadUnitCost,
//     ErrBadMaxExpansions; option constructors already panic on these,
//     the checks cover hand-built Options).
//
// Complexity:
//
//   - Time:  O(S·M·(N² + log S))
//   - Space: O(S·N²)
func Solve(start *board.State, opts ...Option) (Result, error) {
	// 1) Build the configuration from defaults plus functional options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the initial state.
	if start == nil {
		return Result{Cost: CostInfinite}, ErrNilState
	}

	// 3) Validate the target vehicle exists in the state.
	if _, ok := start.Vehicle(cfg.Target); !ok {
		return Result{Cost: CostInfinite}, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
	}

	// 4) Resolve the exit column; ExitRightmost means column N-1.
	exitCol := cfg.ExitColumn
	if exitCol == ExitRightmost {
		exitCol = start.Size() - 1
	}
	if exitCol < 0 || exitCol >= start.Size() {
		return Result{Cost: CostInfinite}, fmt.Errorf("%w: column %d on a %dx%d grid",
			ErrBadExitColumn, exitCol, start.Size(), start.Size())
	}

	// 5) Validate numeric options for callers that built Options by hand.
	if cfg.UnitCost < 0 {
		return Result{Cost: CostInfinite}, ErrBadUnitCost
	}
	if cfg.MaxExpansions < 0 {
		return Result{Cost: CostInfinite}, ErrBadMaxExpansions
	}

	// 6) Fill the remaining zero values a hand-built Options may carry.
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}
	if cfg.OnExpand == nil {
		cfg.OnExpand = func(string, int64) {}
	}

	// 7) Initialize the runner and execute the main loop.
	r := &runner{opts: cfg, exitCol: exitCol}
	r.init(start)

	return r.process()
}

// runner holds the mutable state of a single search execution.
type runner struct {
	opts     Options                 // Resolved configuration for this run.
	exitCol  int                     // Goal column after ExitRightmost resolution.
	repo     map[string]*board.State // Canonical key → discovered state.
	explored map[string]struct{}     // Keys already popped and expanded.
	pq       entryPQ                 // Min-heap of frontier entries, lazy deletion.
	expanded int                     // States expanded so far.
}

// init seeds the repository and the frontier with the start state at
// cost 0 and an empty trail.
func (r *runner) init(start *board.State) {
	key := start.Key()

	r.repo = map[string]*board.State{key: start}
	r.explored = make(map[string]struct{}, 64)

	r.pq = make(entryPQ, 0, 64)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{cost: 0, key: key, trail: nil})
}

// process is the core loop: pop the cheapest frontier entry, discard
// stale duplicates, goal-test, then expand.
//
// Loop termination conditions:
//
//   - A goal state is popped (success; first pop is minimum-cost).
//   - The frontier empties (ErrNoSolution).
//   - The context is cancelled or the expansion budget runs out.
func (r *runner) process() (Result, error) {
	var (
		item *entry
		st   *board.State
	)
	for r.pq.Len() > 0 {
		// 1) Honor cancellation once per frontier pop.
		select {
		case <-r.opts.Ctx.Done():
			return Result{Cost: CostInfinite, Expanded: r.expanded}, r.opts.Ctx.Err()
		default:
		}

		// 2) Pop the smallest (cost, key) entry.
		item = heap.Pop(&r.pq).(*entry)

		// 3) Skip stale duplicates of already-expanded keys (lazy deletion).
		if _, done := r.explored[item.key]; done {
			continue
		}

		// 4) Mark explored. The cost to item.key is now final.
		r.explored[item.key] = struct{}{}

		// 5) Materialize the state and goal-test on pop; testing on pop
		//    rather than on push is what guarantees minimality.
		st = r.repo[item.key]
		if st.IsGoal(r.opts.Target, r.exitCol) {
			return Result{
				Path:     materialize(item.trail),
				Cost:     item.cost,
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		// 6) Enforce the expansion budget. Stale pops do not count, and
		//    the goal test above stays ahead of the budget check.
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Result{Cost: CostInfinite, Expanded: r.expanded}, ErrBudgetExhausted
		}
		r.expanded++
		r.opts.OnExpand(item.key, item.cost)

		// 7) Expand: push every unexplored child.
		if err := r.expand(st, item); err != nil {
			return Result{Cost: CostInfinite, Expanded: r.expanded}, err
		}
	}

	// 8) Frontier exhausted: the reachable space holds no goal.
	return Result{Cost: CostInfinite, Expanded: r.expanded}, ErrNoSolution
}

// expand generates st's successors and pushes each unexplored child
// onto the frontier with its accumulated cost and extended trail.
//
// Each child is re-derived through board.Diff and cross-checked against
// the generator's claimed move; a mismatch aborts with ErrInvariant
// rather than risking a plausible-looking corrupt path.
func (r *runner) expand(st *board.State, parent *entry) error {
	var (
		childKey string
		m        board.Move
		cost     int64
		err      error
	)
	for _, sc := range st.Successors() {
		// 1) Children already expanded can never improve; skip early.
		childKey = sc.State.Key()
		if _, done := r.explored[childKey]; done {
			continue
		}

		// 2) Derive the step independently of the generator's claim.
		m, err = board.Diff(st, sc.State)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvariant, err)
		}
		if m != sc.Move {
			return fmt.Errorf("%w: generator claims %v, diff finds %v", ErrInvariant, sc.Move, m)
		}

		// 3) Incremental cost = vehicle length × unit cost.
		length, ok := st.VehicleLength(m.Vehicle)
		if !ok {
			return fmt.Errorf("%w: moved vehicle %q absent from parent", ErrInvariant, m.Vehicle)
		}
		cost = parent.cost + int64(length)*r.opts.UnitCost

		// 4) Remember the first materialization of each key.
		if _, seen := r.repo[childKey]; !seen {
			r.repo[childKey] = sc.State
		}

		// 5) Push under lazy deletion: duplicates of a key are allowed,
		//    the explored set discards the stale ones on pop.
		heap.Push(&r.pq, &entry{
			cost: cost,
			key:  childKey,
			trail: &pathNode{
				prev: parent.trail,
				step: Step{Vehicle: m.Vehicle, Dir: m.Dir, Cost: cost},
			},
		})
	}

	return nil
}

// materialize walks a trail back to the root and reverses it into the
// ordered step list. A nil trail yields an empty, non-nil path.
func materialize(trail *pathNode) []Step {
	steps := []Step{}
	for n := trail; n != nil; n = n.prev {
		steps = append(steps, n.step)
	}
	// reverse into root → goal order
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

// pathNode is one link of the path-so-far carried by a frontier entry,
// most recent step first. Entries branching from one parent share the
// parent's chain, so the frontier stores each prefix once.
type pathNode struct {
	prev *pathNode
	step Step
}

// entry is one frontier element: a state's canonical key, the
// cumulative cost along one particular path to it, and that path.
type entry struct {
	cost  int64     // cumulative cost from the start state
	key   string    // canonical key; doubles as the tie-break
	trail *pathNode // moves taken to reach the state
}

// entryPQ is a min-heap (priority queue) of *entry ordered by cumulative
// cost ascending, then canonical key ascending. Under “lazy deletion”
// outdated entries remain in the heap and are ignored when popped
// (checked via the explored set).
type entryPQ []*entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority; equal
// costs fall back to canonical key order, keeping pops reproducible
// across runs regardless of insertion order.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].key < pq[j].key
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *entry.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
