// Package ucs_test provides examples demonstrating how to use the
// uniform-cost solver. Each example is runnable via "go test -run
// Example", showing both code and expected output.
package ucs_test

import (
	"fmt"

	"github.com/DuckTonn/rushhour/board"

	"github.com/DuckTonn/rushhour/ucs"
)

// ExampleSolve demonstrates solving the reference 6×6 puzzle. Vehicle C
// blocks X's row, so the cheapest plan clears C first and then slides X
// to the rightmost column. Costs accumulate as length × unit cost.
func ExampleSolve() {
	// 1) Parse the starting position. Dots are empty cells.
	start, err := board.Parse([]string{
		". . B . . .",
		". . B . . .",
		"A A X X C .",
		". . . . C .",
		". . . . C .",
		". . . . . .",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run the search with package defaults: target 'X', unit cost 1,
	//    exit at the rightmost column.
	res, err := ucs.Solve(start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the ordered steps with their cumulative costs.
	for i, step := range res.Path {
		fmt.Printf("%d. %v\n", i+1, step)
	}
	fmt.Printf("total cost: %d\n", res.Cost)
	// Output:
	// 1. C down (cost 3)
	// 2. X right (cost 5)
	// 3. X right (cost 7)
	// total cost: 7
}

// ExampleSolve_nearerExit pins the exit to column 4 instead of the
// rightmost column, so a single slide of X suffices once C is cleared.
func ExampleSolve_nearerExit() {
	start, err := board.Parse([]string{
		". . B . . .",
		". . B . . .",
		"A A X X C .",
		". . . . C .",
		". . . . C .",
		". . . . . .",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := ucs.Solve(start, ucs.WithExitColumn(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("moves: %d, total cost: %d\n", len(res.Path), res.Cost)
	// Output: moves: 2, total cost: 5
}

// ExampleSolve_unsolvable shows how the solver reports a puzzle with no
// solution: W is a length-3 wall that covers X's row wherever it slides.
func ExampleSolve_unsolvable() {
	start, err := board.Parse([]string{
		". . . W",
		"X X . W",
		". . . W",
		". . . .",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = ucs.Solve(start)
	fmt.Println(err)
	// Output: ucs: no solution
}
