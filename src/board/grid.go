package board

//Size is the fixed dimension of the board
const Size = 10

//Cell is the state of one board position, true means alive
type Cell bool

//Grid is the 10x10 board, row-major
//it's a value type: all operations return a new Grid and never touch the receiver
type Grid [Size][Size]Cell

//neighbourOffsets lists the 8 adjacent positions as [row, col] offsets
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

//NewGrid creates the grid with all cells dead
func NewGrid() Grid {
	return Grid{}
}

//InBounds reports whether row, col addresses a cell of the grid
func InBounds(row int, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

//Alive returns the cell state at row, col, positions outside the grid are dead
func (g Grid) Alive(row int, col int) bool {
	if !InBounds(row, col) {
		return false
	}
	return bool(g[row][col])
}

//Toggled returns a copy of the grid with the cell at row, col inverted
func (g Grid) Toggled(row int, col int) Grid {
	if InBounds(row, col) {
		g[row][col] = !g[row][col]
	}
	return g
}

//With returns a copy of the grid with the listed [row, col] cells set to alive
//coordinates outside the grid are skipped
func (g Grid) With(cells [][2]int) Grid {
	for _, c := range cells {
		if InBounds(c[0], c[1]) {
			g[c[0]][c[1]] = true
		}
	}
	return g
}

//Neighbours counts the live cells around row, col
//there is no wraparound: positions outside the grid are not counted
func (g Grid) Neighbours(row int, col int) int {
	count := 0
	for _, o := range neighbourOffsets {
		if g.Alive(row+o[0], col+o[1]) {
			count++
		}
	}
	return count
}

//Next calculates the next generation
//every cell is evaluated against the receiver, results go to a fresh grid
func (g Grid) Next() Grid {
	next := NewGrid()
	g.walk(func(row int, col int, c Cell) {
		next[row][col] = Cell(applyConwayRules(g.Neighbours(row, col), bool(c)))
	})
	return next
}

//LiveCells calculates the count of live cells
func (g Grid) LiveCells() int {
	liveCells := 0
	g.walk(func(_ int, _ int, c Cell) {
		if c {
			liveCells++
		}
	})
	return liveCells
}

//String renders the grid with '#' for live and '.' for dead cells, one row per line
func (g Grid) String() string {
	b := make([]byte, 0, Size*(Size+1))
	for row := range g {
		if row != 0 {
			b = append(b, '\n')
		}
		for _, c := range g[row] {
			if c {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}

//walk calls the cb function for each cell
func (g *Grid) walk(cb func(row int, col int, c Cell)) {
	for row := range g {
		for col := range g[row] {
			cb(row, col, g[row][col])
		}
	}
}
