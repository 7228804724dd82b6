package ucs_test

import (
	"testing"

	"github.com/DuckTonn/rushhour/board"
	"github.com/DuckTonn/rushhour/ucs"
)

// BenchmarkSolve_Reference measures a full solve of the 6×6 reference
// puzzle, state-space discovery and path materialization included.
func BenchmarkSolve_Reference(b *testing.B) {
	start, err := board.Parse([]string{
		". . B . . .",
		". . B . . .",
		"A A X X C .",
		". . . . C .",
		". . . . C .",
		". . . . . .",
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = ucs.Solve(start)
	}
}

// BenchmarkSolve_Congested measures a solve that has to reorder three
// blockers before the target can run, so the frontier grows well beyond
// the reference puzzle's.
func BenchmarkSolve_Congested(b *testing.B) {
	start, err := board.Parse([]string{
		". . V . . .",
		". . V . W .",
		"X X . . W .",
		". U . . W .",
		". U . T T .",
		". . . . . .",
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = ucs.Solve(start)
	}
}

// BenchmarkSolve_Budgeted measures the abort path: a one-state budget
// exercises setup, the first expansion, and early termination.
func BenchmarkSolve_Budgeted(b *testing.B) {
	start, err := board.Parse([]string{
		". . B . . .",
		". . B . . .",
		"A A X X C .",
		". . . . C .",
		". . . . C .",
		". . . . . .",
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = ucs.Solve(start, ucs.WithMaxExpansions(1))
	}
}
