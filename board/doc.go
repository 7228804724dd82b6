// Package board models Rush Hour puzzle configurations: square grids of
// sliding vehicles with validation, parsing, canonical keys, and
// single-step move semantics.
//
// What:
//
//   - State couples an N×N grid with its vehicle table; the grid is a
//     derived cache of the table and the two are verified to agree at
//     construction. States are immutable.
//   - New builds a State from a grid plus an explicit vehicle table;
//     Parse derives the table from text rows.
//   - Moves and Successors enumerate every legal unit slide in a fixed
//     deterministic order; Apply performs one validated move,
//     copy-on-write, returning a fresh child State.
//   - Key produces a collision-free canonical string identity, usable
//     both for deduplication and as a lexicographic tie-break.
//   - Diff recovers the unit move separating a parent from its child.
//   - IsGoal answers whether a target vehicle reaches an exit column
//     with any of its cells while horizontal.
//
// Why:
//
//   - Search engines need cheap, immutable, deduplicatable states: the
//     copy-on-write child construction shares every unmoved vehicle's
//     cells with the parent, so an expansion costs one grid copy plus
//     one vehicle record instead of a deep copy of the whole table.
//   - Fail-fast construction keeps every later operation total: a
//     *State that exists is internally consistent.
//
// Complexity (N = grid dimension, V = vehicles, L = one vehicle's length):
//
//   - New/Parse:   O(N² + V·L) time, O(N² + V·L) memory.
//   - Moves:       O(V) time.
//   - Successors:  O(V·(N² + L)) time (each child copies one grid).
//   - Apply:       O(N² + L) time.
//   - Key:         O(N² + V·L) time.
//   - Diff:        O(V·L) time.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNotSquare: malformed grid.
//   - ErrBadMarker, ErrVehicleTooShort, ErrVehicleShape, ErrBadCell,
//     ErrDuplicateVehicle, ErrOverlap: malformed vehicle table.
//   - ErrGridMismatch: grid and vehicle table disagree.
//   - ErrUnknownVehicle, ErrIllegalMove: rejected Apply.
//   - ErrNotAdjacent: Diff on states not one unit move apart.
package board
