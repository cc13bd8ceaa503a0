package board

import (
	"testing"
)

var (
	blinkerH = [][2]int{{4, 3}, {4, 4}, {4, 5}}
	blinkerV = [][2]int{{3, 4}, {4, 4}, {5, 4}}
	block    = [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid()
	if n := g.LiveCells(); n != 0 {
		t.Fatalf("expected empty grid, got %v live cells", n)
	}
	if len(g) != Size || len(g[0]) != Size {
		t.Fatalf("expected %vx%v grid, got %vx%v", Size, Size, len(g), len(g[0]))
	}
}

func TestToggled(t *testing.T) {
	g := NewGrid().With(block)
	once := g.Toggled(7, 3)
	if !once.Alive(7, 3) {
		t.Fatal("toggled cell should be alive")
	}
	if g.Alive(7, 3) {
		t.Fatal("Toggled must not modify the receiver")
	}
	if twice := once.Toggled(7, 3); twice != g {
		t.Fatalf("double toggle should restore the grid, got\n%v", twice)
	}
	if g.Toggled(-1, 3) != g || g.Toggled(3, Size) != g {
		t.Fatal("out of range toggle should be ignored")
	}
}

func TestNeighbours(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
		row   int
		col   int
		want  int
	}{
		{"empty", nil, 5, 5, 0},
		{"corner with all neighbours", block, 0, 0, 3},
		{"self is not counted", [][2]int{{5, 5}}, 5, 5, 0},
		{"all eight", [][2]int{{4, 4}, {4, 5}, {4, 6}, {5, 4}, {5, 6}, {6, 4}, {6, 5}, {6, 6}, {5, 5}}, 5, 5, 8},
		{"no wraparound to the last row and col", [][2]int{{9, 9}, {9, 0}, {0, 9}, {9, 1}, {1, 9}}, 0, 0, 0},
		{"bottom right corner", [][2]int{{8, 8}, {8, 9}, {9, 8}}, 9, 9, 3},
		{"edge", [][2]int{{0, 4}, {0, 6}, {1, 5}}, 0, 5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid().With(tt.cells)
			if got := g.Neighbours(tt.row, tt.col); got != tt.want {
				t.Fatalf("Neighbours(%v, %v) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestNextRules(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
		row   int
		col   int
		alive bool
	}{
		{"lonely cell dies", [][2]int{{5, 5}}, 5, 5, false},
		{"one neighbour dies", [][2]int{{5, 5}, {5, 6}}, 5, 5, false},
		{"two neighbours survives", [][2]int{{5, 5}, {5, 6}, {4, 4}}, 5, 5, true},
		{"three neighbours survives", [][2]int{{5, 5}, {5, 6}, {4, 4}, {6, 5}}, 5, 5, true},
		{"four neighbours dies", [][2]int{{5, 5}, {5, 6}, {4, 4}, {6, 5}, {5, 4}}, 5, 5, false},
		{"eight neighbours dies", [][2]int{{4, 4}, {4, 5}, {4, 6}, {5, 4}, {5, 6}, {6, 4}, {6, 5}, {6, 6}, {5, 5}}, 5, 5, false},
		{"birth with three", [][2]int{{4, 4}, {4, 6}, {6, 5}}, 5, 5, true},
		{"no birth with two", [][2]int{{4, 4}, {4, 6}}, 5, 5, false},
		{"no birth with four", [][2]int{{4, 4}, {4, 6}, {6, 5}, {6, 4}}, 5, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := NewGrid().With(tt.cells).Next()
			if got := next.Alive(tt.row, tt.col); got != tt.alive {
				t.Fatalf("cell %v,%v alive = %v, want %v", tt.row, tt.col, got, tt.alive)
			}
		})
	}
}

func TestBlockIsStillLife(t *testing.T) {
	for _, cells := range [][][2]int{block, {{4, 4}, {4, 5}, {5, 4}, {5, 5}}, {{8, 8}, {8, 9}, {9, 8}, {9, 9}}} {
		g := NewGrid().With(cells)
		if next := g.Next(); next != g {
			t.Fatalf("block should be stationary, got\n%v", next)
		}
	}
}

func TestBlinkerOscillates(t *testing.T) {
	h := NewGrid().With(blinkerH)
	v := NewGrid().With(blinkerV)
	if got := h.Next(); got != v {
		t.Fatalf("expected vertical blinker, got\n%v", got)
	}
	if got := h.Next().Next(); got != h {
		t.Fatalf("expected the original blinker after 2 steps, got\n%v", got)
	}
}

func TestNextUsesSnapshot(t *testing.T) {
	//an in-place update would see the first cell dead and keep the third alive
	g := NewGrid().With([][2]int{{0, 0}, {0, 1}, {0, 2}})
	want := NewGrid().With([][2]int{{0, 1}, {1, 1}})
	if got := g.Next(); got != want {
		t.Fatalf("got\n%v\nwant\n%v", got, want)
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid().With([][2]int{{0, 0}, {9, 9}})
	s := g.String()
	if len(s) != Size*Size+Size-1 {
		t.Fatalf("unexpected length %v", len(s))
	}
	if s[0] != '#' || s[len(s)-1] != '#' || s[1] != '.' {
		t.Fatalf("unexpected rendering:\n%v", s)
	}
}
