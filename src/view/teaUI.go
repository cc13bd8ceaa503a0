package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"lifeboard/src/board"
)

//layout of the tea screen, in lines
const (
	teaBoardTop    = 2
	teaControlsTop = teaBoardTop + BoardHeight + 1
)

//statusMsg delivers the board status to the tea program
type statusMsg board.Status

//TeaUI is the Bubble Tea frontend
type TeaUI struct {
	palette Palette
	p       *tea.Program
}

//NewTeaUI creates the Bubble Tea frontend, the program is created on Register
func NewTeaUI(p Palette) *TeaUI {
	return &TeaUI{palette: p}
}

//Register implements board.Viewer
func (t *TeaUI) Register(l board.Life) {
	t.p = tea.NewProgram(newTeaModel(l, l.Status(), t.palette), tea.WithAltScreen(), tea.WithMouseCellMotion())
}

//Refresh implements board.Viewer
//Send blocks until the program takes the message, commands never run on the program's loop so it can't deadlock
func (t *TeaUI) Refresh(st board.Status) {
	t.p.Send(statusMsg(st))
}

//Start runs the program until the user exits
func (t *TeaUI) Start() error {
	if t.p == nil {
		return errors.New("[Start] the frontend is not registered on a board")
	}
	if _, err := t.p.Run(); err != nil {
		return errors.Wrap(err, "[Start] tea program failed")
	}
	return nil
}

type teaModel struct {
	l       board.Controller
	st      board.Status
	palette Palette
}

func newTeaModel(l board.Controller, st board.Status, p Palette) teaModel {
	return teaModel{l: l, st: st, palette: p}
}

func (m teaModel) Init() tea.Cmd {
	return nil
}

func (m teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.st = board.Status(msg)
	case tea.KeyMsg:
		return m, m.onKey(msg.String())
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.onClick(msg.X, msg.Y)
		}
	}
	return m, nil
}

func (m teaModel) onKey(key string) tea.Cmd {
	if key == "ctrl+c" || key == "q" {
		return tea.Quit
	}
	switch key {
	case "r":
		return m.send(m.l.Start)
	case "s":
		return m.send(m.l.Stop)
	case "c":
		return m.send(m.l.Clear)
	case "n":
		return m.send(m.l.Step)
	case "w":
		return m.send(m.l.SettleWithRandomData)
	}
	return nil
}

func (m teaModel) onClick(x int, y int) tea.Cmd {
	if row, col, ok := CellAt(x, y-teaBoardTop); ok {
		return m.send(func() { m.l.Toggle(row, col) })
	}
	if y == teaControlsTop {
		if c, ok := ControlAt(Controls(m.st.RunState), x); ok {
			return m.send(func() { Dispatch(m.l, c.Cmd) })
		}
	}
	return nil
}

//send runs the board command outside the program's loop
func (m teaModel) send(f func()) tea.Cmd {
	return func() tea.Msg {
		f()
		return nil
	}
}

func (m teaModel) View() string {
	var b strings.Builder
	b.WriteString(m.palette.au.Bold("Conway's Game of Life").String())
	b.WriteString("\n\n")
	b.WriteString(strings.Join(m.palette.RenderBoard(m.st.Grid), "\n"))
	b.WriteString("\n\n")
	b.WriteString(m.palette.RenderControls(Controls(m.st.RunState)))
	b.WriteString("\n\n")
	_, _ = fmt.Fprintf(&b, "%s  %s  %s\n",
		m.palette.RenderProp("Generation", m.st.Generation),
		m.palette.RenderProp("Live Cells", m.st.LiveCells),
		m.palette.RenderProp("Mode", m.palette.RunStateDescr(m.st.RunState)))
	b.WriteString("r: " + LabelStart + ", s: " + LabelStop + ", c: " + LabelClear + ", n: next step, w: random, q: exit\n")
	return b.String()
}
