package board

import "fmt"

// directionsFor lists the two unit steps a vehicle of orientation o may
// attempt: toward-head first (Left or Up), then toward-tail (Right or
// Down). This order, combined with ascending vehicle ids, fixes the
// generation order of moves and successors.
func directionsFor(o Orientation) [2]Direction {
	if o == Horizontal {
		return [2]Direction{Left, Right}
	}
	return [2]Direction{Up, Down}
}

// Moves returns every legal unit move from s, vehicles in ascending id
// order, toward-head direction before toward-tail.
func (s *State) Moves() []Move {
	moves := make([]Move, 0, 2*len(s.vehicles))
	for _, v := range s.vehicles {
		for _, d := range directionsFor(v.Orientation) {
			if s.canSlide(v, d) {
				moves = append(moves, Move{Vehicle: v.ID, Dir: d})
			}
		}
	}
	return moves
}

// Successors returns every state reachable from s by one legal unit
// move, in the order of Moves. Children are built copy-on-write: each
// shares every unmoved vehicle's cell sequence with s and carries a
// fresh grid cache plus a fresh record for the moved vehicle.
func (s *State) Successors() []Successor {
	out := make([]Successor, 0, 2*len(s.vehicles))
	for i, v := range s.vehicles {
		for _, d := range directionsFor(v.Orientation) {
			if !s.canSlide(v, d) {
				continue
			}
			dr, dc := d.delta()
			// Shift the whole cell run by one unit. Interior cells land
			// on positions the vehicle already owns, so only occupancy
			// needs re-checking, not bounds.
			cells := make([]Cell, len(v.Cells))
			legal := true
			for j, c := range v.Cells {
				nc := Cell{Row: c.Row + dr, Col: c.Col + dc}
				if occ := s.grid[s.index(nc)]; occ != Empty && occ != v.ID {
					legal = false
					break
				}
				cells[j] = nc
			}
			if !legal {
				continue
			}
			out = append(out, Successor{
				Move:  Move{Vehicle: v.ID, Dir: d},
				State: s.child(i, cells),
			})
		}
	}
	return out
}

// Apply returns the child state produced by one unit move. The parent
// is never mutated.
//
// Returns ErrUnknownVehicle for an id absent from the state and
// ErrIllegalMove when the step leaves the grid, fights the vehicle's
// orientation, or enters an occupied cell.
func (s *State) Apply(m Move) (*State, error) {
	i, ok := s.find(m.Vehicle)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVehicle, m.Vehicle)
	}
	v := s.vehicles[i]
	if _, ok = s.enteredCell(v, m.Dir); !ok {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	dr, dc := m.Dir.delta()
	// Each destination cell must be in bounds and either empty or a
	// cell the vehicle itself is vacating.
	cells := make([]Cell, len(v.Cells))
	for j, c := range v.Cells {
		nc := Cell{Row: c.Row + dr, Col: c.Col + dc}
		if !s.InBounds(nc.Row, nc.Col) {
			return nil, fmt.Errorf("%w: %v leaves the grid at %v", ErrIllegalMove, m, nc)
		}
		if occ := s.grid[s.index(nc)]; occ != Empty && occ != v.ID {
			return nil, fmt.Errorf("%w: %v collides at %v", ErrIllegalMove, m, nc)
		}
		cells[j] = nc
	}
	return s.child(i, cells), nil
}

// canSlide reports whether v may take one step in direction d: the
// single cell being entered, immediately beyond head or tail in the
// travel direction, must be in bounds and empty.
func (s *State) canSlide(v Vehicle, d Direction) bool {
	entered, ok := s.enteredCell(v, d)
	if !ok {
		return false
	}
	return s.grid[s.index(entered)] == Empty
}

// enteredCell returns the one cell v would newly occupy after a unit
// step in d, or ok=false when the step leaves the grid or runs against
// the vehicle's orientation.
func (s *State) enteredCell(v Vehicle, d Direction) (Cell, bool) {
	if d.axis() != v.Orientation {
		return Cell{}, false
	}
	dr, dc := d.delta()
	edge := v.tail()
	if d == Left || d == Up {
		edge = v.head()
	}
	c := Cell{Row: edge.Row + dr, Col: edge.Col + dc}
	if !s.InBounds(c.Row, c.Col) {
		return Cell{}, false
	}
	return c, true
}

// child builds the state after vehicle s.vehicles[i] moved onto cells.
// The vehicles slice is fresh but every unmoved vehicle shares its
// Cells backing array with the parent.
func (s *State) child(i int, cells []Cell) *State {
	grid := make([]byte, len(s.grid))
	copy(grid, s.grid)
	moved := s.vehicles[i]
	for _, c := range moved.Cells {
		grid[s.index(c)] = Empty
	}
	for _, c := range cells {
		grid[s.index(c)] = moved.ID
	}
	vehicles := make([]Vehicle, len(s.vehicles))
	copy(vehicles, s.vehicles)
	vehicles[i] = Vehicle{ID: moved.ID, Orientation: moved.Orientation, Cells: cells}
	return &State{size: s.size, grid: grid, vehicles: vehicles}
}

// Diff derives the unit move that transforms parent into its direct
// child. Exactly one vehicle must differ, shifted by exactly one cell
// along its own orientation; anything else returns ErrNotAdjacent.
func Diff(parent, child *State) (Move, error) {
	if parent == nil || child == nil {
		return Move{}, fmt.Errorf("%w: nil state", ErrNotAdjacent)
	}
	if parent.size != child.size || len(parent.vehicles) != len(child.vehicles) {
		return Move{}, fmt.Errorf("%w: boards of different shape", ErrNotAdjacent)
	}
	moved := -1
	for i := range parent.vehicles {
		pv, cv := parent.vehicles[i], child.vehicles[i]
		if pv.ID != cv.ID || pv.Orientation != cv.Orientation || len(pv.Cells) != len(cv.Cells) {
			return Move{}, fmt.Errorf("%w: vehicle tables disagree", ErrNotAdjacent)
		}
		if cellsEqual(pv.Cells, cv.Cells) {
			continue
		}
		if moved >= 0 {
			return Move{}, fmt.Errorf("%w: %c and %c both moved",
				ErrNotAdjacent, parent.vehicles[moved].ID, pv.ID)
		}
		moved = i
	}
	if moved < 0 {
		return Move{}, fmt.Errorf("%w: states are identical", ErrNotAdjacent)
	}

	// Both states passed construction, so cells are straight ascending
	// runs; a one-cell head shift therefore shifts the whole vehicle.
	pv, cv := parent.vehicles[moved], child.vehicles[moved]
	dr := cv.head().Row - pv.head().Row
	dc := cv.head().Col - pv.head().Col
	var d Direction
	switch {
	case pv.Orientation == Horizontal && dr == 0 && dc == -1:
		d = Left
	case pv.Orientation == Horizontal && dr == 0 && dc == 1:
		d = Right
	case pv.Orientation == Vertical && dc == 0 && dr == -1:
		d = Up
	case pv.Orientation == Vertical && dc == 0 && dr == 1:
		d = Down
	default:
		return Move{}, fmt.Errorf("%w: %c shifted by (%d,%d)", ErrNotAdjacent, pv.ID, dr, dc)
	}
	return Move{Vehicle: pv.ID, Dir: d}, nil
}

// cellsEqual reports element-wise equality of two cell runs.
func cellsEqual(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
