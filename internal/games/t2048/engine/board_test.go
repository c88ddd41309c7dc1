package engine

import (
	"reflect"
	"testing"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(4)
	if b.Dimension() != 4 {
		t.Errorf("Dimension() = %d, want 4", b.Dimension())
	}
	if got := len(b.EmptyPositions()); got != 16 {
		t.Errorf("len(EmptyPositions()) = %d, want 16", got)
	}
	if b.Full() {
		t.Error("new board reported full")
	}
	if b.MaxValue() != 0 {
		t.Errorf("MaxValue() = %d, want 0", b.MaxValue())
	}
}

func TestBoardSetGet(t *testing.T) {
	b := NewBoard(3)
	b.Set(1, 2, Tile(8))

	if v, ok := b.Get(1, 2).Value(); !ok || v != 8 {
		t.Errorf("Get(1,2) = %d,%v want 8,true", v, ok)
	}
	if !b.At(Position{Row: 2, Col: 1}).IsEmpty() {
		t.Error("untouched cell is not empty")
	}

	b.SetAll(Tile(2))
	if !b.Full() {
		t.Error("SetAll(Tile(2)) left empty cells")
	}
	b.SetAll(Empty)
	if len(b.EmptyPositions()) != 9 {
		t.Error("SetAll(Empty) left tiles behind")
	}
}

func TestBoardOutOfRangePanics(t *testing.T) {
	b := NewBoard(4)
	cases := []Position{{-1, 0}, {0, -1}, {4, 0}, {0, 4}}
	for _, p := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%v) did not panic", p)
				}
			}()
			b.At(p)
		}()
	}
}

func TestBoardRejectsSmallDimension(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBoard(1) did not panic")
		}
	}()
	NewBoard(1)
}

func TestTileRejectsNonPositive(t *testing.T) {
	for _, v := range []int{0, -2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Tile(%d) did not panic", v)
				}
			}()
			Tile(v)
		}()
	}
}

func TestBoardEmptyPositionsRowMajor(t *testing.T) {
	b := NewBoardFromValues([][]int{
		{2, 0},
		{0, 4},
	})
	want := []Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if got := b.EmptyPositions(); !reflect.DeepEqual(got, want) {
		t.Errorf("EmptyPositions() = %v, want %v", got, want)
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoardFromValues([][]int{
		{2, 0},
		{0, 4},
	})
	c := b.Clone()
	c.Set(0, 1, Tile(16))

	if !b.Get(0, 1).IsEmpty() {
		t.Error("mutating the clone changed the original")
	}
	if c.MaxValue() != 16 {
		t.Errorf("clone MaxValue() = %d, want 16", c.MaxValue())
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoardFromValues([][]int{
		{2, 0},
		{0, 16},
	})
	want := " 2  .\n . 16"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLineCoords(t *testing.T) {
	tests := []struct {
		dir       Direction
		iteration int
		want      []Position
	}{
		{DirUp, 1, []Position{{0, 1}, {1, 1}, {2, 1}}},
		{DirDown, 1, []Position{{2, 1}, {1, 1}, {0, 1}}},
		{DirLeft, 2, []Position{{2, 0}, {2, 1}, {2, 2}}},
		{DirRight, 0, []Position{{0, 2}, {0, 1}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := LineCoords(tt.dir, tt.iteration, 3); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LineCoords(%v, %d, 3) = %v, want %v", tt.dir, tt.iteration, got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"D", DirDown, false},
		{" left ", DirLeft, false},
		{"Right", DirRight, false},
		{"sideways", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
