package view

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"lifeboard/src/board"
)

//Control labels as shown to the user
const (
	LabelStart = "Iniciar"
	LabelStop  = "Parar"
	LabelClear = "Limpar"
)

//the board is drawn with a box border around every cell
//every cell takes cellWidth columns and one line
const (
	cellWidth   = 2
	BoardWidth  = board.Size*(cellWidth+1) + 1
	BoardHeight = board.Size*2 + 1
)

//Command is the board command bound to a control
type Command int

const (
	CmdStart Command = iota
	CmdStop
	CmdClear
)

//Control is a clickable button
type Control struct {
	Label string
	Cmd   Command
}

//Controls returns the visible controls for the running state:
//Iniciar when stopped, Parar when running, Limpar always
func Controls(rs board.RunState) []Control {
	if rs == board.Running {
		return []Control{{LabelStop, CmdStop}, {LabelClear, CmdClear}}
	}
	return []Control{{LabelStart, CmdStart}, {LabelClear, CmdClear}}
}

//Dispatch sends the control's command to the board
func Dispatch(c board.Controller, cmd Command) {
	switch cmd {
	case CmdStart:
		c.Start()
	case CmdStop:
		c.Stop()
	case CmdClear:
		c.Clear()
	}
}

//Palette keeps the prepared fillers for live and dead cells
type Palette struct {
	au   aurora.Aurora
	live string
	dead string
}

//NewPalette creates the palette, glyphs are repeated to the cell width
//live cells are light blue, dead cells are white
func NewPalette(liveGlyph string, deadGlyph string, colors bool) Palette {
	au := aurora.NewAurora(colors)
	return Palette{
		au:   au,
		live: au.BrightCyan(strings.Repeat(liveGlyph, cellWidth)).String(),
		dead: au.White(strings.Repeat(deadGlyph, cellWidth)).String(),
	}
}

//RenderBoard draws the grid with the borders, returns the lines
func (p Palette) RenderBoard(g board.Grid) []string {
	lines := make([]string, 0, BoardHeight)
	lines = append(lines, borderLine('┌', '┬', '┐'))
	var b strings.Builder
	for row := range g {
		if row != 0 {
			lines = append(lines, borderLine('├', '┼', '┤'))
		}
		b.Reset()
		b.WriteRune('│')
		for _, c := range g[row] {
			if c {
				b.WriteString(p.live)
			} else {
				b.WriteString(p.dead)
			}
			b.WriteRune('│')
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, borderLine('└', '┴', '┘'))
	return lines
}

func borderLine(left rune, cross rune, right rune) string {
	var b strings.Builder
	b.WriteRune(left)
	for col := 0; col < board.Size; col++ {
		if col != 0 {
			b.WriteRune(cross)
		}
		b.WriteString(strings.Repeat("─", cellWidth))
	}
	b.WriteRune(right)
	return b.String()
}

//CellAt maps the position inside the rendered board to the cell
//clicks on the borders don't hit any cell
func CellAt(x int, y int) (row int, col int, ok bool) {
	if x <= 0 || y <= 0 || x >= BoardWidth-1 || y >= BoardHeight-1 {
		return 0, 0, false
	}
	if y%2 == 0 || x%(cellWidth+1) == 0 {
		return 0, 0, false
	}
	return y / 2, x / (cellWidth + 1), true
}

const controlGap = "  "

//RenderControls draws the buttons in one line
func (p Palette) RenderControls(ctrls []Control) string {
	var b strings.Builder
	for i, c := range ctrls {
		if i != 0 {
			b.WriteString(controlGap)
		}
		b.WriteString(p.au.Reverse(buttonText(c)).String())
	}
	return b.String()
}

//ControlAt maps the column inside the rendered controls line to the control
func ControlAt(ctrls []Control, x int) (Control, bool) {
	start := 0
	for _, c := range ctrls {
		end := start + len([]rune(buttonText(c)))
		if x >= start && x < end {
			return c, true
		}
		start = end + len(controlGap)
	}
	return Control{}, false
}

func buttonText(c Control) string {
	return "[ " + c.Label + " ]"
}

//RenderProp renders the "name: value" line with the highlighted name
func (p Palette) RenderProp(name string, value interface{}) string {
	return p.au.Green(name).String() + ": " + p.au.Sprintf("%v", value)
}

//RunStateDescr returns the colored description of the running state
func (p Palette) RunStateDescr(rs board.RunState) string {
	if rs == board.Running {
		return p.au.Cyan(rs.String()).String()
	}
	return p.au.Blue(rs.String()).String()
}
