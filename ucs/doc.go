// Package ucs solves Rush Hour puzzles by uniform-cost search,
// returning a minimum-cost move sequence for the controlled vehicle.
//
// What:
//
//   - Solve runs Dijkstra over the implicit graph of board states:
//     frontier ordered by (cumulative cost, canonical key), explored
//     set and state repository keyed by board.Key, lazy deletion of
//     stale frontier duplicates.
//   - A move's cost is vehicle length × UnitCost, so sliding a long
//     truck costs more than sliding a short car, and a multi-cell slide
//     pays once per cell as a chain of unit moves.
//   - Result reports the ordered Path with cumulative per-step costs,
//     the total Cost, the number of Expanded states, and Found.
//   - Every generated child is cross-checked by board.Diff before it
//     enters the frontier; a generator defect surfaces as ErrInvariant
//     instead of a corrupt solution.
//
// Why:
//
//   - Non-negative move costs plus cheapest-first expansion make the
//     first goal popped provably minimum-cost, with no heuristic to
//     tune and no admissibility argument to maintain.
//   - Canonical-key tie-breaking makes runs reproducible: equal-cost
//     frontiers pop in the same order on every run.
//
// Concurrency:
//
//   - Solve is synchronous and single-threaded; states are immutable
//     and each invocation owns its repository, explored set, and
//     frontier outright. Distinct invocations never share state.
//   - Cancellation is honored through WithContext, checked once per
//     frontier pop. WithMaxExpansions bounds worst-case runtime on
//     state spaces that grow exponentially with vehicle count.
//
// Options:
//
//   - Target(id):           identifier of the controlled vehicle (default 'X').
//   - WithUnitCost(c):      cost per cell of vehicle length (default 1).
//   - WithExitColumn(col):  goal column (default ExitRightmost = N-1).
//   - WithContext(ctx):     cancellation context.
//   - WithMaxExpansions(n): expansion budget, 0 = unlimited.
//   - WithOnExpand(fn):     per-expansion observer (progress, metrics).
//
// Errors:
//
//   - ErrNilState, ErrTargetNotFound, ErrBadExitColumn, ErrBadUnitCost,
//     ErrBadMaxExpansions: rejected input or configuration.
//   - ErrNoSolution: frontier exhausted; Result carries CostInfinite.
//   - ErrBudgetExhausted: MaxExpansions expansions without a goal.
//   - ErrInvariant: successor generation produced an inconsistent child.
package ucs
