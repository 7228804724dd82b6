package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuckTonn/rushhour/board"
)

//----------------------------------------------------------------------------//
// Construction fixtures
//----------------------------------------------------------------------------//

// demoLines is the 6×6 reference puzzle used across the test files:
// X must reach column 5; C blocks its row; A and B are immobile scenery.
func demoLines() []string {
	return []string{
		". . B . . .",
		". . B . . .",
		"A A X X C .",
		". . . . C .",
		". . . . C .",
		". . . . . .",
	}
}

// demoVehicles is the explicit vehicle table matching demoLines.
func demoVehicles() []board.Vehicle {
	return []board.Vehicle{
		{ID: 'X', Orientation: board.Horizontal, Cells: []board.Cell{{Row: 2, Col: 2}, {Row: 2, Col: 3}}},
		{ID: 'A', Orientation: board.Horizontal, Cells: []board.Cell{{Row: 2, Col: 0}, {Row: 2, Col: 1}}},
		{ID: 'B', Orientation: board.Vertical, Cells: []board.Cell{{Row: 0, Col: 2}, {Row: 1, Col: 2}}},
		{ID: 'C', Orientation: board.Vertical, Cells: []board.Cell{{Row: 2, Col: 4}, {Row: 3, Col: 4}, {Row: 4, Col: 4}}},
	}
}

// demoGrid renders demoLines as the raw [][]byte New consumes.
func demoGrid() [][]byte {
	return [][]byte{
		[]byte("..B..."),
		[]byte("..B..."),
		[]byte("AAXXC."),
		[]byte("....C."),
		[]byte("....C."),
		[]byte("......"),
	}
}

func mustDemo(t *testing.T) *board.State {
	t.Helper()
	st, err := board.New(demoGrid(), demoVehicles())
	require.NoError(t, err, "demo fixture must construct")
	return st
}

//----------------------------------------------------------------------------//
// New: validation
//----------------------------------------------------------------------------//

// TestNew_GridErrors verifies fail-fast rejection of malformed grids.
func TestNew_GridErrors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]byte
		err  error
	}{
		{"NilGrid", nil, board.ErrEmptyGrid},
		{"EmptyRow", [][]byte{{}}, board.ErrEmptyGrid},
		{"Ragged", [][]byte{[]byte(".."), []byte(".")}, board.ErrNonRectangular},
		{"Rectangular", [][]byte{[]byte("..."), []byte("...")}, board.ErrNotSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.New(tc.grid, nil)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_VehicleErrors verifies fail-fast rejection of malformed vehicle tables.
func TestNew_VehicleErrors(t *testing.T) {
	grid := func() [][]byte {
		return [][]byte{
			[]byte("AA.."),
			[]byte("...."),
			[]byte("...."),
			[]byte("...."),
		}
	}
	horizontalA := func(cells ...board.Cell) []board.Vehicle {
		return []board.Vehicle{{ID: 'A', Orientation: board.Horizontal, Cells: cells}}
	}

	cases := []struct {
		name     string
		grid     [][]byte
		vehicles []board.Vehicle
		err      error
	}{
		{
			"EmptyMarkerID", grid(),
			[]board.Vehicle{{ID: '.', Orientation: board.Horizontal, Cells: []board.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}},
			board.ErrBadMarker,
		},
		{
			"SingleCell", grid(),
			horizontalA(board.Cell{Row: 0, Col: 0}),
			board.ErrVehicleTooShort,
		},
		{
			"OutOfBounds", grid(),
			horizontalA(board.Cell{Row: 0, Col: 3}, board.Cell{Row: 0, Col: 4}),
			board.ErrBadCell,
		},
		{
			"GapInRun", grid(),
			horizontalA(board.Cell{Row: 0, Col: 0}, board.Cell{Row: 0, Col: 2}),
			board.ErrVehicleShape,
		},
		{
			"DescendingRun", grid(),
			horizontalA(board.Cell{Row: 0, Col: 1}, board.Cell{Row: 0, Col: 0}),
			board.ErrVehicleShape,
		},
		{
			"AxisMismatch", grid(),
			[]board.Vehicle{{ID: 'A', Orientation: board.Vertical, Cells: []board.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}},
			board.ErrVehicleShape,
		},
		{
			"DuplicateID",
			[][]byte{
				[]byte("AA.."),
				[]byte("AA.."),
				[]byte("...."),
				[]byte("...."),
			},
			[]board.Vehicle{
				{ID: 'A', Orientation: board.Horizontal, Cells: []board.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}},
				{ID: 'A', Orientation: board.Horizontal, Cells: []board.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}}},
			},
			board.ErrDuplicateVehicle,
		},
		{
			"Overlap",
			[][]byte{
				[]byte("AA.."),
				[]byte(".B.."),
				[]byte(".B.."),
				[]byte("...."),
			},
			[]board.Vehicle{
				{ID: 'A', Orientation: board.Horizontal, Cells: []board.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}},
				{ID: 'B', Orientation: board.Vertical, Cells: []board.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}}},
			},
			board.ErrOverlap,
		},
		{
			"TableSaysVehicleGridSaysEmpty", grid(),
			horizontalA(board.Cell{Row: 1, Col: 0}, board.Cell{Row: 1, Col: 1}),
			board.ErrGridMismatch,
		},
		{
			"GridCellNobodyClaims", grid(),
			nil,
			board.ErrGridMismatch,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.New(tc.grid, tc.vehicles)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_CopiesInput ensures mutating the caller's grid and table after
// construction does not leak into the State.
func TestNew_CopiesInput(t *testing.T) {
	grid := demoGrid()
	vehicles := demoVehicles()
	st, err := board.New(grid, vehicles)
	require.NoError(t, err)

	grid[2][2] = '.'
	vehicles[0].Cells[0] = board.Cell{Row: 5, Col: 5}

	assert.Equal(t, byte('X'), st.At(2, 2), "state must own its grid")
	x, ok := st.Vehicle('X')
	require.True(t, ok)
	assert.Equal(t, board.Cell{Row: 2, Col: 2}, x.Cells[0], "state must own its vehicle cells")
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

// TestParse_MatchesExplicitConstruction verifies that the text form and
// the explicit grid+table form yield identical states.
func TestParse_MatchesExplicitConstruction(t *testing.T) {
	parsed, err := board.Parse(demoLines())
	require.NoError(t, err)

	built := mustDemo(t)
	assert.Equal(t, built.Key(), parsed.Key(), "Parse and New must agree on the canonical key")
	assert.Equal(t, built.String(), parsed.String())
}

// TestParse_Errors covers the malformed text inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"NoLines", nil, board.ErrEmptyGrid},
		{"SingleCellVehicle", []string{"A.", ".."}, board.ErrVehicleTooShort},
		{"SplitRun", []string{"B.B.", "....", "....", "...."}, board.ErrVehicleShape},
		{"BentRun", []string{"AA..", ".A..", "....", "...."}, board.ErrVehicleShape},
		{"NotSquare", []string{"AA.", "..."}, board.ErrNotSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.Parse(tc.lines)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Accessors and rendering
//----------------------------------------------------------------------------//

// TestAccessors exercises Size, At, InBounds, Vehicle, and Vehicles.
func TestAccessors(t *testing.T) {
	st := mustDemo(t)

	assert.Equal(t, 6, st.Size())
	assert.Equal(t, byte('A'), st.At(2, 0))
	assert.Equal(t, board.Empty, st.At(0, 0))
	assert.True(t, st.InBounds(5, 5))
	assert.False(t, st.InBounds(6, 0))
	assert.False(t, st.InBounds(0, -1))

	c, ok := st.Vehicle('C')
	require.True(t, ok)
	assert.Equal(t, 3, c.Length())
	assert.Equal(t, board.Vertical, c.Orientation)

	_, ok = st.Vehicle('Z')
	assert.False(t, ok, "unknown id must report ok=false")

	ids := make([]byte, 0, 4)
	for _, v := range st.Vehicles() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []byte("ABCX"), ids, "Vehicles must list ascending ids")
}

// TestVehicleCopyIsolation ensures the copies handed out by Vehicle and
// Vehicles cannot corrupt the state.
func TestVehicleCopyIsolation(t *testing.T) {
	st := mustDemo(t)
	v, ok := st.Vehicle('X')
	require.True(t, ok)
	v.Cells[0] = board.Cell{Row: 0, Col: 0}

	again, _ := st.Vehicle('X')
	assert.Equal(t, board.Cell{Row: 2, Col: 2}, again.Cells[0])
}

// TestString renders the demo board.
func TestString(t *testing.T) {
	st := mustDemo(t)
	want := ". . B . . .\n" +
		". . B . . .\n" +
		"A A X X C .\n" +
		". . . . C .\n" +
		". . . . C .\n" +
		". . . . . .\n"
	assert.Equal(t, want, st.String())
}

//----------------------------------------------------------------------------//
// Goal predicate
//----------------------------------------------------------------------------//

// TestIsGoal covers the all-cells exit check: a horizontal target counts
// as solved when any of its cells reaches the exit column, including the
// tail; vertical or absent targets never do.
func TestIsGoal(t *testing.T) {
	st, err := board.Parse([]string{
		"....",
		"..XX",
		".V..",
		".V..",
	})
	require.NoError(t, err)

	assert.True(t, st.IsGoal('X', 3), "tail at the exit column counts")
	assert.True(t, st.IsGoal('X', 2), "head at the exit column counts")
	assert.False(t, st.IsGoal('X', 0), "short of the exit column")
	assert.False(t, st.IsGoal('V', 1), "vertical vehicle is never a goal")
	assert.False(t, st.IsGoal('Z', 3), "absent target is never a goal")
}

// TestIsGoal_InitialSolved covers a board that is solved before any move.
func TestIsGoal_InitialSolved(t *testing.T) {
	st, err := board.Parse([]string{
		"....",
		"..XX",
		"AA..",
		"....",
	})
	require.NoError(t, err)
	assert.True(t, st.IsGoal('X', 3))
}
