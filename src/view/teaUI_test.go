package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lifeboard/src/board"
)

//run executes the command the way the tea program does
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	return cmd()
}

func click(x int, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestTeaKeys(t *testing.T) {
	f := &fakeController{}
	m := newTeaModel(f, board.Status{}, plainPalette())
	for _, k := range []rune{'r', 's', 'c', 'n', 'w', 'x'} {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k}})
		run(t, cmd)
	}
	if got := strings.Join(f.calls, ";"); got != "start;stop;clear;step;random" {
		t.Fatalf("unexpected calls: %v", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := run(t, cmd).(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should quit")
	}
}

func TestTeaClicks(t *testing.T) {
	f := &fakeController{}
	m := newTeaModel(f, board.Status{}, plainPalette())

	_, cmd := m.Update(click(1, teaBoardTop+1))
	run(t, cmd)
	_, cmd = m.Update(click(28, teaBoardTop+19))
	run(t, cmd)
	//border
	_, cmd = m.Update(click(3, teaBoardTop+1))
	run(t, cmd)
	//release is not a click
	_, cmd = m.Update(tea.MouseMsg{X: 1, Y: teaBoardTop + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	run(t, cmd)

	_, cmd = m.Update(click(2, teaControlsTop))
	run(t, cmd)
	_, cmd = m.Update(click(15, teaControlsTop))
	run(t, cmd)

	if got := strings.Join(f.calls, ";"); got != "toggle 0,0;toggle 9,9;start;clear" {
		t.Fatalf("unexpected calls: %v", got)
	}

	next, _ := m.Update(statusMsg(board.Status{RunState: board.Running}))
	_, cmd = next.Update(click(2, teaControlsTop))
	run(t, cmd)
	if last := f.calls[len(f.calls)-1]; last != "stop" {
		t.Fatalf("the first control should stop the running board, got %v", last)
	}
}

func TestTeaView(t *testing.T) {
	st := board.Status{Grid: board.NewGrid().With([][2]int{{0, 0}}), LiveCells: 1}
	m := newTeaModel(&fakeController{}, st, plainPalette())
	lines := strings.Split(m.View(), "\n")
	if lines[teaBoardTop+1] != "│##│..│..│..│..│..│..│..│..│..│" {
		t.Fatalf("unexpected first board row %q", lines[teaBoardTop+1])
	}
	if lines[teaControlsTop] != "[ Iniciar ]  [ Limpar ]" {
		t.Fatalf("unexpected controls line %q", lines[teaControlsTop])
	}

	next, _ := m.Update(statusMsg(board.Status{RunState: board.Running}))
	lines = strings.Split(next.View(), "\n")
	if lines[teaControlsTop] != "[ Parar ]  [ Limpar ]" {
		t.Fatalf("unexpected controls line %q", lines[teaControlsTop])
	}
	if lines[teaBoardTop+1] != "│..│..│..│..│..│..│..│..│..│..│" {
		t.Fatalf("the view should follow the status, got %q", lines[teaBoardTop+1])
	}
}
