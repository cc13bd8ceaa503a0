package view

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/pkg/errors"

	"lifeboard/src/board"
)

const (
	viewHeader        = "header"
	viewConfiguration = "configuration"
	viewStatus        = "status"
	viewBoard         = "board"
	viewControls      = "controls"
	viewHelp          = "help"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal frontend
type ConsoleUI struct {
	l board.Life
	g *gocui.Gui
	k []keyBinding
	p Palette
}

//NewConsoleUI creates the terminal frontend, the terminal is taken over until Start returns
func NewConsoleUI(p Palette) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to init the terminal")
	}
	t := ConsoleUI{g: g, p: p}
	t.g.Mouse = true
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'r', "R", LabelStart, t.cmdStart, ""},
		{'s', "S", LabelStop, t.cmdStop, ""},
		{'c', "C", LabelClear, t.cmdClear, ""},
		{'n', "N", "Next step", t.cmdNextStep, ""},
		{'w', "W", "Random", t.cmdSettleWithRandom, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdBoardClick, viewBoard},
		{gocui.MouseLeft, "", "", t.cmdControlsClick, viewControls},
	}
	t.g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBinding) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return errors.Wrapf(err, "[initKeyBindings] failed to bind %v", kb.name)
		}
	}
	return nil
}

//Register implements board.Viewer
func (t *ConsoleUI) Register(l board.Life) {
	t.l = l
}

//Start runs the terminal main loop until the user exits
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Start] terminal main loop failed")
	}
	return nil
}

//Refresh implements board.Viewer, it's called from the board's goroutine
func (t *ConsoleUI) Refresh(st board.Status) {
	t.g.Update(func(g *gocui.Gui) error {
		t.render(g, st)
		return nil
	})
}

//render redraws all views, views which are not created yet are skipped
func (t *ConsoleUI) render(g *gocui.Gui, st board.Status) {
	if v, err := g.View(viewBoard); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, strings.Join(t.p.RenderBoard(st.Grid), "\n"))
	}
	if v, err := g.View(viewControls); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, t.p.RenderControls(Controls(st.RunState)))
	}
	if v, err := g.View(viewStatus); err == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, " "+t.p.RenderProp("Generation", st.Generation))
		_, _ = fmt.Fprintln(v, " "+t.p.RenderProp("Live Cells", st.LiveCells))
		_, _ = fmt.Fprintln(v, " "+t.p.RenderProp("Step time", st.StepTime))
		_, _ = fmt.Fprintln(v, " "+t.p.RenderProp("Mode", t.p.RunStateDescr(st.RunState)))
	}
	if v, err := g.View(viewConfiguration); err == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, " "+t.p.RenderProp("Dimension", fmt.Sprintf("%v x %v", board.Size, board.Size)))
		_, _ = fmt.Fprintln(v, " "+t.p.RenderProp("Interval", t.l.Options().Interval))
	}
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	headerHeight := 3
	minWindowHeight := headerHeight + BoardHeight + 8
	minWindowWidth := leftColumnWidth + BoardWidth + 4

	if maxY < minWindowHeight || maxX < minWindowWidth {
		if _, err := t.headerLayout(g, maxY, "Terminal is too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		for _, name := range []string{viewConfiguration, viewStatus, viewBoard, viewControls, viewHelp} {
			_ = g.DeleteView(name)
		}
		return nil
	}
	if _, err := t.headerLayout(g, headerHeight, "Conway's Game of Life"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	boardX0 := leftColumnWidth + 1
	boardY1 := headerHeight + BoardHeight + 1
	views := []struct {
		name           string
		x0, y0, x1, y1 int
		title          string
		frame          bool
	}{
		{viewConfiguration, 0, headerHeight, leftColumnWidth, headerHeight + 5, "Configuration", true},
		{viewStatus, 0, headerHeight + 6, leftColumnWidth, headerHeight + 12, "Status", true},
		{viewBoard, boardX0, headerHeight, boardX0 + BoardWidth + 1, boardY1, "", false},
		{viewControls, boardX0, boardY1, boardX0 + BoardWidth + 1, boardY1 + 2, "", false},
	}
	created := false
	for _, vd := range views {
		v, err := g.SetView(vd.name, vd.x0, vd.y0, vd.x1, vd.y1)
		if err != nil {
			if err != gocui.ErrUnknownView || v == nil {
				return err
			}
			v.Title = vd.title
			v.Frame = vd.frame
			created = true
		}
	}
	if created && t.l != nil {
		t.render(g, t.l.Status())
	}

	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(t.p.au.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView(viewHeader, -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := (maxX - len(text)) / 2
		if pad < 0 {
			pad = 0
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStart(_ *gocui.View) error {
	t.l.Start()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.l.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.l.Clear()
	return nil
}

func (t *ConsoleUI) cmdNextStep(_ *gocui.View) error {
	t.l.Step()
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.l.SettleWithRandomData()
	return nil
}

//cmdBoardClick toggles the clicked cell, the board ignores it while running
func (t *ConsoleUI) cmdBoardClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	if row, col, ok := CellAt(cx, cy); ok {
		t.l.Toggle(row, col)
	}
	return nil
}

func (t *ConsoleUI) cmdControlsClick(v *gocui.View) error {
	cx, _ := v.Cursor()
	if c, ok := ControlAt(Controls(t.l.Status().RunState), cx); ok {
		Dispatch(t.l, c.Cmd)
	}
	return nil
}
