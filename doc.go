// Package rushhour is an in-memory playground for modeling and solving
// Rush Hour sliding-block puzzles with minimum-cost search.
//
// 🚀 What is rushhour?
//
//	A small, thread-friendly library plus CLI that brings together:
//		• Board model: square grids, straight vehicles, fail-fast validation
//		• Text parsing: build a puzzle from plain rows of characters
//		• Immutable states: moves never mutate, they derive child states
//		• Canonical keys: order-independent state identity for search
//		• Uniform-cost search: cheapest move sequence, deterministic ties
//		• A demo command: solve files or the built-in puzzle from the shell
//
// ✨ Why choose rushhour?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable states, in-code docs & hooks
//   - Deterministic – equal-cost ties break on canonical key order
//   - Extensible – functional options (Target, WithUnitCost, WithOnExpand…)
//
// Under the hood, everything is organized under two subpackages and a
// command:
//
//	board/        – grid model, parsing, legal moves, canonical keys
//	ucs/          – uniform-cost search over board states
//	cmd/rushhour/ – command-line solver
//
// Quick ASCII example:
//
//	. . B . . .
//	. . B . . .
//	A A X X C .     X must reach the rightmost column; C blocks the row.
//	. . . . C .     Cheapest plan: C down, X right, X right (cost 7).
//	. . . . C .
//	. . . . . .
//
//	go get github.com/DuckTonn/rushhour
package rushhour
