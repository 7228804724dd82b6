// Package board defines core types, constants, and sentinel errors
// for the Rush Hour grid model of github.com/DuckTonn/rushhour.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction and move application.
// Construction is fail-fast: a *State that builds without error is
// internally consistent, and every later accessor relies on that.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("board: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrNotSquare indicates a rectangular grid whose width differs from its height.
	ErrNotSquare = errors.New("board: grid must be square")
	// ErrBadCell indicates a vehicle cell outside the grid bounds.
	ErrBadCell = errors.New("board: vehicle cell out of bounds")
	// ErrVehicleTooShort indicates a vehicle occupying fewer than two cells.
	ErrVehicleTooShort = errors.New("board: vehicle must occupy at least two cells")
	// ErrVehicleShape indicates vehicle cells that are not contiguous,
	// ascending, and aligned with the declared orientation.
	ErrVehicleShape = errors.New("board: vehicle cells must be contiguous along the orientation axis")
	// ErrDuplicateVehicle indicates two vehicles sharing one identifier.
	ErrDuplicateVehicle = errors.New("board: duplicate vehicle id")
	// ErrOverlap indicates two vehicles claiming the same cell.
	ErrOverlap = errors.New("board: vehicles overlap")
	// ErrGridMismatch indicates grid contents that disagree with the vehicle table.
	ErrGridMismatch = errors.New("board: grid does not match vehicle table")
	// ErrBadMarker indicates a reserved marker used as a vehicle identifier.
	ErrBadMarker = errors.New("board: invalid vehicle identifier")
	// ErrUnknownVehicle indicates a move naming an id absent from the state.
	ErrUnknownVehicle = errors.New("board: unknown vehicle id")
	// ErrIllegalMove indicates a move that leaves the grid or collides.
	ErrIllegalMove = errors.New("board: illegal move")
	// ErrNotAdjacent indicates two states that are not parent and
	// single-move child of one another.
	ErrNotAdjacent = errors.New("board: states do not differ by exactly one unit move")
)

// Empty is the grid marker for an unoccupied cell.
// Every other byte on a grid is a vehicle identifier.
const Empty byte = '.'

// Orientation is the fixed travel axis of a vehicle.
// A vehicle never rotates; it slides along this axis only.
type Orientation uint8

const (
	// Horizontal vehicles occupy one row and slide Left or Right.
	Horizontal Orientation = iota
	// Vertical vehicles occupy one column and slide Up or Down.
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Direction is a single-cell slide along a vehicle's orientation axis.
type Direction uint8

const (
	// Left decrements the column (horizontal vehicles only).
	Left Direction = iota
	// Right increments the column (horizontal vehicles only).
	Right
	// Up decrements the row (vertical vehicles only).
	Up
	// Down increments the row (vertical vehicles only).
	Down
)

// directionNames maps Direction values to their display names.
var directionNames = [...]string{"left", "right", "up", "down"}

// String returns the lowercase direction name ("left", "right", "up", "down").
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// delta returns the (row, col) displacement of one step in direction d.
func (d Direction) delta() (dr, dc int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	default: // Down
		return 1, 0
	}
}

// axis returns the orientation a vehicle must have to slide in direction d.
func (d Direction) axis() Orientation {
	if d == Left || d == Right {
		return Horizontal
	}
	return Vertical
}

// Cell is one grid position. Row 0 is the top row, Col 0 the leftmost column.
type Cell struct {
	Row, Col int
}

// String renders a cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Vehicle is one rigid block on the grid: a unique one-byte identifier,
// its travel axis, and the cells it occupies ordered head to tail
// (ascending row for vertical, ascending column for horizontal).
type Vehicle struct {
	ID          byte
	Orientation Orientation
	Cells       []Cell
}

// Length returns the number of cells the vehicle occupies.
func (v Vehicle) Length() int {
	return len(v.Cells)
}

// copy returns a Vehicle whose cell slice is independent of the receiver's.
func (v Vehicle) copy() Vehicle {
	return Vehicle{ID: v.ID, Orientation: v.Orientation, Cells: append([]Cell(nil), v.Cells...)}
}

// head returns the first cell (topmost or leftmost).
func (v Vehicle) head() Cell {
	return v.Cells[0]
}

// tail returns the last cell (bottommost or rightmost).
func (v Vehicle) tail() Cell {
	return v.Cells[len(v.Cells)-1]
}

// Move is one unit slide of one vehicle.
type Move struct {
	Vehicle byte
	Dir     Direction
}

// String renders a move as, e.g., "C down".
func (m Move) String() string {
	return fmt.Sprintf("%c %s", m.Vehicle, m.Dir)
}

// Successor pairs a legal move with the state it produces.
type Successor struct {
	Move  Move
	State *State
}
