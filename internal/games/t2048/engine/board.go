// Package engine implements the rule engine of the 2048 puzzle: the per-line
// condense/collapse/convert pipeline, the move engine that applies it to a
// square board, the move scheduler and the game state that ties them together.
// It has no knowledge of rendering or input; results leave through a Sink.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is a single board slot: either Empty or a Tile holding a positive value.
// The zero value is Empty.
type Cell struct {
	value int
}

// Empty is the cell holding no tile.
var Empty = Cell{}

// Tile returns a cell holding the given value. Panics if value is not positive.
func Tile(value int) Cell {
	if value <= 0 {
		panic(fmt.Sprintf("engine: tile value must be positive, got %d", value))
	}
	return Cell{value: value}
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c.value == 0
}

// Value returns the tile value and true, or 0 and false for an empty cell.
func (c Cell) Value() (int, bool) {
	return c.value, c.value != 0
}

func (c Cell) String() string {
	if c.IsEmpty() {
		return "."
	}
	return strconv.Itoa(c.value)
}

// Position addresses a board cell.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a fixed-size square grid of cells stored row-major.
type Board struct {
	dim   int
	cells []Cell
}

// NewBoard creates an empty board. Panics if dim < MinDimension.
func NewBoard(dim int) *Board {
	if dim < MinDimension {
		panic(fmt.Sprintf("engine: board dimension must be at least %d, got %d", MinDimension, dim))
	}
	return &Board{
		dim:   dim,
		cells: make([]Cell, dim*dim),
	}
}

// NewBoardFromValues builds a board from a square matrix where 0 means empty.
// Intended for tests and replays.
func NewBoardFromValues(values [][]int) *Board {
	b := NewBoard(len(values))
	for row, line := range values {
		if len(line) != b.dim {
			panic(fmt.Sprintf("engine: row %d has %d cells, want %d", row, len(line), b.dim))
		}
		for col, v := range line {
			if v != 0 {
				b.Set(row, col, Tile(v))
			}
		}
	}
	return b
}

// Dimension returns the board side length.
func (b *Board) Dimension() int {
	return b.dim
}

func (b *Board) index(row, col int) int {
	if row < 0 || row >= b.dim || col < 0 || col >= b.dim {
		panic(fmt.Sprintf("engine: position (%d,%d) out of range for dimension %d", row, col, b.dim))
	}
	return row*b.dim + col
}

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// Set stores a cell at (row, col).
func (b *Board) Set(row, col int, c Cell) {
	b.cells[b.index(row, col)] = c
}

// At is Get addressed by Position.
func (b *Board) At(p Position) Cell {
	return b.Get(p.Row, p.Col)
}

// SetAll overwrites every cell with c.
func (b *Board) SetAll(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// EmptyPositions returns the empty cells in row-major order.
func (b *Board) EmptyPositions() []Position {
	var out []Position
	for row := range b.dim {
		for col := range b.dim {
			if b.cells[row*b.dim+col].IsEmpty() {
				out = append(out, Position{Row: row, Col: col})
			}
		}
	}
	return out
}

// Full reports whether no cell is empty.
func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// MaxValue returns the highest tile value on the board, 0 if it is empty.
func (b *Board) MaxValue() int {
	maxVal := 0
	for _, c := range b.cells {
		if c.value > maxVal {
			maxVal = c.value
		}
	}
	return maxVal
}

// Values returns the board as a matrix with 0 for empty cells.
func (b *Board) Values() [][]int {
	out := make([][]int, b.dim)
	for row := range b.dim {
		out[row] = make([]int, b.dim)
		for col := range b.dim {
			out[row][col] = b.cells[row*b.dim+col].value
		}
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{dim: b.dim, cells: cells}
}

// String renders the board one row per line, "." for empty cells.
func (b *Board) String() string {
	width := len(strconv.Itoa(b.MaxValue()))
	var sb strings.Builder
	for row := range b.dim {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range b.dim {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*s", width, b.Get(row, col).String())
		}
	}
	return sb.String()
}
