package sos

import (
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

const (
	MinSize = 3
	MaxSize = 10

	windowLength = 3
)

// directions covers horizontal, vertical and both diagonals.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a size x size grid of cells stored row-major.
type Board struct {
	size  int
	cells [][]entity.Cell
}

func NewBoard(size int) *Board {
	cells := make([][]entity.Cell, size)
	for i := range cells {
		cells[i] = make([]entity.Cell, size)
	}

	return &Board{size: size, cells: cells}
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// At returns the cell at (row, col); out of bounds reads as empty.
func (that *Board) At(row, col int) entity.Cell {
	if !that.InBounds(row, col) {
		return entity.Cell{}
	}
	return that.cells[row][col]
}

// Place writes a mark into an empty in-bounds cell.
func (that *Board) Place(row, col int, cell entity.Cell) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: cell (%d, %d) is outside a %[4]dx%[4]d board", apperror.ErrInvalidMove, row, col, that.size)
	}

	if !that.cells[row][col].IsEmpty() {
		return fmt.Errorf("%w: cell (%d, %d) is already occupied", apperror.ErrInvalidMove, row, col)
	}

	that.cells[row][col] = cell

	return nil
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// EmptyCells lists free positions in row-major order.
func (that *Board) EmptyCells() []Position {
	free := make([]Position, 0, that.size*that.size)
	for r, row := range that.cells {
		for c, cell := range row {
			if cell.IsEmpty() {
				free = append(free, Position{Row: r, Col: c})
			}
		}
	}

	return free
}

// Cells returns a deep copy of the grid.
func (that *Board) Cells() [][]entity.Cell {
	return entity.CloneCells(that.cells)
}

func (that *Board) Clone() *Board {
	return &Board{size: that.size, cells: that.Cells()}
}

// Windows enumerates every in-bounds run of three cells that contains (row, col),
// with the cell as first, middle or last element. At most twelve windows exist.
func (that *Board) Windows(row, col int) [][windowLength]Position {
	windows := make([][windowLength]Position, 0, len(directions)*windowLength)

	for _, dir := range directions {
		for offset := range windowLength {
			startRow, startCol := row-offset*dir[0], col-offset*dir[1]

			var window [windowLength]Position
			inBounds := true
			for k := range windowLength {
				r, c := startRow+k*dir[0], startCol+k*dir[1]
				if !that.InBounds(r, c) {
					inBounds = false
					break
				}
				window[k] = Position{Row: r, Col: c}
			}

			if inBounds {
				windows = append(windows, window)
			}
		}
	}

	return windows
}
