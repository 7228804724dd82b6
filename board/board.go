// Package board implements the Rush Hour grid model: square boards of
// sliding vehicles, fail-fast validation, text parsing, canonical state
// keys, unit-move generation, and move application.
//
// A State is immutable once constructed. Applying a move never mutates
// the parent; it produces a child that shares every untouched vehicle's
// cell sequence with the parent and carries a fresh grid cache.
package board

import (
	"fmt"
	"sort"
	"strings"
)

// State is one configuration of the puzzle: a square grid plus the
// vehicle table it is derived from. On a constructed State the grid and
// the table never disagree, and the table is sorted by vehicle id.
type State struct {
	size     int
	grid     []byte    // row-major cache, size*size cells
	vehicles []Vehicle // ascending id order, cells ordered head to tail
}

// New builds a State from a grid and its vehicle table, validating both
// and their mutual consistency. The inputs are copied; the caller may
// reuse or mutate them afterwards.
//
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNotSquare for a bad
// grid; ErrBadMarker, ErrVehicleTooShort, ErrVehicleShape, ErrBadCell,
// ErrDuplicateVehicle or ErrOverlap for a bad vehicle table; and
// ErrGridMismatch when grid and table disagree.
func New(grid [][]byte, vehicles []Vehicle) (*State, error) {
	// 1) Validate the grid shape.
	n := len(grid)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	for r, row := range grid {
		if len(row) == 0 {
			return nil, ErrEmptyGrid
		}
		if len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d",
				ErrNonRectangular, r, len(row), len(grid[0]))
		}
	}
	if len(grid[0]) != n {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, n, len(grid[0]))
	}

	// 2) Flatten the grid into the row-major cache.
	flat := make([]byte, 0, n*n)
	for _, row := range grid {
		flat = append(flat, row...)
	}

	// 3) Copy the vehicle table and order it by id.
	vs := make([]Vehicle, len(vehicles))
	for i, v := range vehicles {
		vs[i] = v.copy()
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].ID < vs[j].ID })

	// 4) Validate every vehicle and the grid/table agreement.
	st := &State{size: n, grid: flat, vehicles: vs}
	if err := st.validate(); err != nil {
		return nil, err
	}
	return st, nil
}

// Parse builds a State from text rows, deriving the vehicle table from
// the grid contents. Spaces and tabs inside a line are skipped, so both
// "AAXXC." and "A A X X C ." denote the same row. Every byte other than
// Empty is a vehicle identifier whose occupied cells must form one
// straight contiguous run of length at least two.
func Parse(lines []string) (*State, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	grid := make([][]byte, len(lines))
	for r, line := range lines {
		row := make([]byte, 0, len(line))
		for i := 0; i < len(line); i++ {
			if line[i] == ' ' || line[i] == '\t' {
				continue
			}
			row = append(row, line[i])
		}
		grid[r] = row
	}

	// Collect each identifier's cells in row-major order. Row-major
	// scanning already yields head-to-tail order for straight runs.
	cellsByID := make(map[byte][]Cell)
	ids := make([]byte, 0, 8)
	for r, row := range grid {
		for c, b := range row {
			if b == Empty {
				continue
			}
			if _, seen := cellsByID[b]; !seen {
				ids = append(ids, b)
			}
			cellsByID[b] = append(cellsByID[b], Cell{Row: r, Col: c})
		}
	}

	// Derive orientation from the first two cells; New rejects runs
	// that are not contiguous straight lines.
	vehicles := make([]Vehicle, 0, len(ids))
	for _, id := range ids {
		cells := cellsByID[id]
		if len(cells) < 2 {
			return nil, fmt.Errorf("%w: %c occupies %d cell(s)", ErrVehicleTooShort, id, len(cells))
		}
		o := Vertical
		if cells[0].Row == cells[1].Row {
			o = Horizontal
		}
		vehicles = append(vehicles, Vehicle{ID: id, Orientation: o, Cells: cells})
	}
	return New(grid, vehicles)
}

// validate checks every vehicle's shape, the absence of duplicates and
// overlaps, and the grid/table agreement. Assumes s.vehicles is sorted.
func (s *State) validate() error {
	claimed := make(map[Cell]byte, len(s.grid))
	for i, v := range s.vehicles {
		if i > 0 && s.vehicles[i-1].ID == v.ID {
			return fmt.Errorf("%w: %q", ErrDuplicateVehicle, v.ID)
		}
		if err := s.validateShape(v); err != nil {
			return err
		}
		for _, c := range v.Cells {
			if owner, dup := claimed[c]; dup {
				return fmt.Errorf("%w: %q and %q both claim %v", ErrOverlap, owner, v.ID, c)
			}
			claimed[c] = v.ID
			if got := s.grid[s.index(c)]; got != v.ID {
				return fmt.Errorf("%w: cell %v holds %q, table says %q", ErrGridMismatch, c, got, v.ID)
			}
		}
	}
	// Every occupied grid cell must belong to some vehicle.
	for i, b := range s.grid {
		if b == Empty {
			continue
		}
		c := Cell{Row: i / s.size, Col: i % s.size}
		if _, ok := claimed[c]; !ok {
			return fmt.Errorf("%w: cell %v holds %q but no vehicle claims it", ErrGridMismatch, c, b)
		}
	}
	return nil
}

// validateShape checks one vehicle's identifier, length, bounds, and
// that its cells step by exactly one along the orientation axis.
func (s *State) validateShape(v Vehicle) error {
	if v.ID == Empty || v.ID <= ' ' {
		return fmt.Errorf("%w: %q", ErrBadMarker, v.ID)
	}
	if len(v.Cells) < 2 {
		return fmt.Errorf("%w: %c occupies %d cell(s)", ErrVehicleTooShort, v.ID, len(v.Cells))
	}
	for _, c := range v.Cells {
		if !s.InBounds(c.Row, c.Col) {
			return fmt.Errorf("%w: %c at %v on a %dx%d grid", ErrBadCell, v.ID, c, s.size, s.size)
		}
	}
	for i := 1; i < len(v.Cells); i++ {
		prev, cur := v.Cells[i-1], v.Cells[i]
		var step bool
		if v.Orientation == Horizontal {
			step = cur.Row == prev.Row && cur.Col == prev.Col+1
		} else {
			step = cur.Col == prev.Col && cur.Row == prev.Row+1
		}
		if !step {
			return fmt.Errorf("%w: %c cells %v and %v (%s)", ErrVehicleShape, v.ID, prev, cur, v.Orientation)
		}
	}
	return nil
}

// Size returns the grid dimension N.
func (s *State) Size() int { return s.size }

// InBounds reports whether (row, col) lies on the grid.
func (s *State) InBounds(row, col int) bool {
	return row >= 0 && row < s.size && col >= 0 && col < s.size
}

// At returns the marker at (row, col): Empty or a vehicle identifier.
// Out-of-bounds coordinates panic, like a slice index.
func (s *State) At(row, col int) byte {
	if !s.InBounds(row, col) {
		panic(fmt.Sprintf("board: At(%d,%d) outside %dx%d grid", row, col, s.size, s.size))
	}
	return s.grid[row*s.size+col]
}

// Vehicle returns a copy of the vehicle with the given id. The copy's
// cell slice is independent of the state's.
func (s *State) Vehicle(id byte) (Vehicle, bool) {
	if i, ok := s.find(id); ok {
		return s.vehicles[i].copy(), true
	}
	return Vehicle{}, false
}

// VehicleLength returns the cell count of the vehicle with the given
// id, without copying its record.
func (s *State) VehicleLength(id byte) (int, bool) {
	if i, ok := s.find(id); ok {
		return len(s.vehicles[i].Cells), true
	}
	return 0, false
}

// Vehicles returns copies of all vehicles in ascending id order.
func (s *State) Vehicles() []Vehicle {
	out := make([]Vehicle, len(s.vehicles))
	for i, v := range s.vehicles {
		out[i] = v.copy()
	}
	return out
}

// IsGoal reports whether the vehicle with the target id is horizontal
// and occupies exitCol with at least one of its cells. Every occupied
// cell is checked, not only the head, so a vehicle whose tail reaches
// the exit column counts as solved. A missing or vertical target is
// never a goal.
func (s *State) IsGoal(target byte, exitCol int) bool {
	i, ok := s.find(target)
	if !ok {
		return false
	}
	v := s.vehicles[i]
	if v.Orientation != Horizontal {
		return false
	}
	for _, c := range v.Cells {
		if c.Col == exitCol {
			return true
		}
	}
	return false
}

// String renders the grid one row per line, cells separated by single
// spaces:
//
//	A A X X C .
func (s *State) String() string {
	var b strings.Builder
	b.Grow(2 * s.size * s.size)
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(s.grid[r*s.size+c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// find locates id in the sorted vehicle table by binary search.
func (s *State) find(id byte) (int, bool) {
	i := sort.Search(len(s.vehicles), func(i int) bool { return s.vehicles[i].ID >= id })
	if i < len(s.vehicles) && s.vehicles[i].ID == id {
		return i, true
	}
	return 0, false
}

// index maps a cell to its row-major offset in the grid cache.
func (s *State) index(c Cell) int {
	return c.Row*s.size + c.Col
}
