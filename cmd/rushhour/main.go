// Command rushhour solves Rush Hour sliding-block puzzles.
//
// It reads a puzzle from a text file (one row per line, '.' for empty
// cells, any other byte for a vehicle) or falls back to a built-in
// demo puzzle, then runs uniform-cost search and prints the cheapest
// move sequence that brings the target vehicle to the exit column.
//
// Flags control the puzzle source, the target vehicle, the exit
// column, per-move costing, the expansion budget, and a wall-clock
// timeout. Every flag can also be set through a RUSHHOUR_* environment
// variable, loaded from a .env file when one is present.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/DuckTonn/rushhour/board"
	"github.com/DuckTonn/rushhour/ucs"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "rushhour"
)

// demoPuzzle is the built-in 6×6 puzzle used when no file is given:
// C blocks X's row, and the cheapest solution costs 7.
var demoPuzzle = []string{
	". . B . . .",
	". . B . . .",
	"A A X X C .",
	". . . . C .",
	". . . . C .",
	". . . . . .",
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		// Only log if it's not a "file not found" error
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	cmd := &cli.Command{
		Name:    AppName,
		Usage:   "solve Rush Hour puzzles with uniform-cost search",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "puzzle file, one grid row per line ('.' = empty)",
				Sources: cli.EnvVars("RUSHHOUR_FILE"),
			},
			&cli.BoolFlag{
				Name:  "demo",
				Usage: "solve the built-in demo puzzle, ignoring --file",
			},
			&cli.StringFlag{
				Name:    "target",
				Aliases: []string{"t"},
				Usage:   "single-character identifier of the vehicle to free",
				Value:   string(ucs.DefaultTarget),
				Sources: cli.EnvVars("RUSHHOUR_TARGET"),
			},
			&cli.IntFlag{
				Name:    "exit-col",
				Usage:   "goal column for the target vehicle (-1 = rightmost)",
				Value:   ucs.ExitRightmost,
				Sources: cli.EnvVars("RUSHHOUR_EXIT_COL"),
			},
			&cli.Int64Flag{
				Name:    "unit-cost",
				Usage:   "cost per cell of vehicle length per move",
				Value:   ucs.DefaultUnitCost,
				Sources: cli.EnvVars("RUSHHOUR_UNIT_COST"),
			},
			&cli.IntFlag{
				Name:    "max-expansions",
				Usage:   "abort after expanding this many states (0 = no limit)",
				Sources: cli.EnvVars("RUSHHOUR_MAX_EXPANSIONS"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "wall-clock limit for the search (0 = no limit)",
				Sources: cli.EnvVars("RUSHHOUR_TIMEOUT"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// run loads the puzzle, executes the search, and prints the solution.
func run(ctx context.Context, cmd *cli.Command) error {
	// Setup logging
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	// Load the puzzle rows from the selected source.
	lines, source, err := loadPuzzle(cmd.String("file"), cmd.Bool("demo"))
	if err != nil {
		return err
	}
	start, err := board.Parse(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	// Translate flags into search options, validating up front so bad
	// command-line input surfaces as an error rather than a panic.
	target := cmd.String("target")
	if len(target) != 1 {
		return fmt.Errorf("--target must be a single character, got %q", target)
	}
	unitCost := cmd.Int64("unit-cost")
	if unitCost < 0 {
		return fmt.Errorf("--unit-cost must be non-negative, got %d", unitCost)
	}
	exitCol := cmd.Int("exit-col")
	if exitCol < ucs.ExitRightmost {
		return fmt.Errorf("--exit-col must be a column index or -1 for rightmost, got %d", exitCol)
	}
	budget := cmd.Int("max-expansions")
	if budget < 0 {
		return fmt.Errorf("--max-expansions must be non-negative, got %d", budget)
	}

	if d := cmd.Duration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	opts := []ucs.Option{
		ucs.Target(target[0]),
		ucs.WithUnitCost(unitCost),
		ucs.WithExitColumn(exitCol),
		ucs.WithMaxExpansions(budget),
		ucs.WithContext(ctx),
	}

	log.Printf("Starting %s v%s (puzzle: %s)", AppName, Version, source)
	fmt.Println("Initial board:")
	fmt.Print(start)

	res, err := ucs.Solve(start, opts...)
	switch {
	case errors.Is(err, ucs.ErrNoSolution):
		log.Printf("Explored %d states", res.Expanded)
		fmt.Println("No solution exists for this puzzle.")
		return nil
	case errors.Is(err, ucs.ErrBudgetExhausted):
		return fmt.Errorf("gave up after expanding %d states: %w", res.Expanded, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("search timed out after %v (%d states expanded)", cmd.Duration("timeout"), res.Expanded)
	case err != nil:
		return err
	}

	fmt.Println("Solution:")
	for i, step := range res.Path {
		fmt.Printf("Step %d: %v\n", i+1, step)
	}
	fmt.Printf("Total cost: %d (%d moves, %d states expanded)\n", res.Cost, len(res.Path), res.Expanded)
	return nil
}

// loadPuzzle returns the puzzle rows and a human-readable source label.
// Blank lines and trailing carriage returns are stripped so files with
// Windows line endings or a trailing newline parse cleanly.
func loadPuzzle(path string, demo bool) ([]string, string, error) {
	if demo || path == "" {
		return demoPuzzle, "built-in demo", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read puzzle: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, "", fmt.Errorf("puzzle file %s holds no grid rows", path)
	}
	return lines, path, nil
}
