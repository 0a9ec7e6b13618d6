// Package game implements the 2048 board, its sliding move mechanics, and
// random tile spawning. Boards are value types: every operation returns a new
// board and never mutates its input, which keeps game logic pure and testable.
package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// Cell identifies a board position. X is the column, Y is the row,
// with (0, 0) at the top-left corner.
type Cell struct {
	X, Y int
}

// Board is a square grid of tile values. A cell holds 0 when empty,
// otherwise a power of two.
type Board struct {
	size  int
	cells []int
}

// NewBoard creates an empty board of the given dimension.
func NewBoard(size int) (Board, error) {
	if size < 2 {
		return Board{}, ValidationError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("board size %d is too small, want at least 2", size),
		}
	}
	return Board{size: size, cells: make([]int, size*size)}, nil
}

// NewBoardFromRows creates a board from explicit tile values.
// Rows must form a square grid of cells that are either 0 or a power of two.
func NewBoardFromRows(rows [][]int) (Board, error) {
	if err := validateRows(rows); err != nil {
		return Board{}, err
	}

	b := Board{size: len(rows), cells: make([]int, len(rows)*len(rows))}
	for y, row := range rows {
		for x, v := range row {
			b.cells[y*b.size+x] = v
		}
	}
	return b, nil
}

// NewBoardFromExponents creates a board from a log2-encoded grid, the
// representation external adapters typically observe (0 = empty, otherwise
// the tile value is 2^exponent). The inverse of Exponents.
func NewBoardFromExponents(exps [][]int) (Board, error) {
	if err := validateShape(exps); err != nil {
		return Board{}, err
	}

	b := Board{size: len(exps), cells: make([]int, len(exps)*len(exps))}
	for y, row := range exps {
		for x, e := range row {
			switch {
			case e == 0:
				// Empty cell
			case e < 1 || e > 62:
				return Board{}, ValidationError{
					Code:    "BAD_EXPONENT",
					Message: fmt.Sprintf("cell (%d,%d): exponent %d out of range", y, x, e),
				}
			default:
				b.cells[y*b.size+x] = 1 << e
			}
		}
	}
	return b, nil
}

// Size returns the board dimension.
func (b Board) Size() int {
	return b.size
}

// At returns the tile value at column x, row y.
func (b Board) At(x, y int) int {
	return b.cells[y*b.size+x]
}

func (b Board) set(x, y, v int) {
	b.cells[y*b.size+x] = v
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

// WithTile returns a copy of the board with the given cell set to value.
// Used by search code to place hypothetical tiles; the value is not
// validated, callers must pass a legal tile.
func (b Board) WithTile(c Cell, value int) Board {
	nb := b.Clone()
	nb.set(c.X, c.Y, value)
	return nb
}

// Equal reports whether two boards have the same dimension and tile values.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the tile values as a fresh row-major grid.
func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for y := 0; y < b.size; y++ {
		rows[y] = make([]int, b.size)
		for x := 0; x < b.size; x++ {
			rows[y][x] = b.At(x, y)
		}
	}
	return rows
}

// Exponents returns the board as a log2-encoded grid (0 = empty,
// otherwise log2 of the tile value). The inverse of NewBoardFromExponents.
func (b Board) Exponents() [][]int {
	exps := make([][]int, b.size)
	for y := 0; y < b.size; y++ {
		exps[y] = make([]int, b.size)
		for x := 0; x < b.size; x++ {
			if v := b.At(x, y); v != 0 {
				exps[y][x] = bits.Len(uint(v)) - 1
			}
		}
	}
	return exps
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.At(x, y) == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b Board) HasEmptyCell() bool {
	for _, v := range b.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent equal tiles can merge.
func (b Board) HasPossibleMerge() bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			val := b.At(x, y)
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < b.size-1 && b.At(x+1, y) == val {
				return true
			}
			// Check bottom neighbor
			if y < b.size-1 && b.At(x, y+1) == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns true when no move can change the board:
// every cell is occupied and no adjacent pair is equal.
func (b Board) IsTerminal() bool {
	return !b.HasEmptyCell() && !b.HasPossibleMerge()
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// HasTile returns true if a tile of at least the given value is present.
func (b Board) HasTile(value int) bool {
	return b.MaxTile() >= value
}

// String renders the board as a fixed-width grid, one row per line.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%5d", b.At(x, y))
		}
		if y < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
