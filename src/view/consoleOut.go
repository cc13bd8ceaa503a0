package view

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"lifeboard/src/board"
)

//ConsoleOut prints every generation of the running board
type ConsoleOut struct {
	sync.Mutex
	w         io.Writer
	p         Palette
	l         board.Life
	startTime time.Time
}

func NewConsoleOut(w io.Writer, p Palette) *ConsoleOut {
	return &ConsoleOut{w: w, p: p}
}

//Register implements board.Viewer
func (c *ConsoleOut) Register(l board.Life) {
	c.Lock()
	defer c.Unlock()
	c.l = l
	o := l.Options()
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension": fmt.Sprintf("%v x %v", board.Size, board.Size),
		"Interval":  o.Interval,
	})
}

//Start marks the simulation start
func (c *ConsoleOut) Start() {
	c.Lock()
	defer c.Unlock()
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

//Refresh implements board.Viewer, prints the board after every generation step
func (c *ConsoleOut) Refresh(st board.Status) {
	if st.RunState != board.Running || st.Generation == 0 {
		return
	}
	c.Lock()
	defer c.Unlock()
	_, _ = fmt.Fprintf(c.w, "\n  %s\n", c.p.RenderProp("Generation", st.Generation))
	_, _ = fmt.Fprintln(c.w, strings.Join(c.p.RenderBoard(st.Grid), "\n"))
}

//Finish prints the simulation summary
func (c *ConsoleOut) Finish(st board.Status) {
	c.Lock()
	defer c.Unlock()
	_, _ = fmt.Fprintln(c.w, "\nFinished:")
	c.printHashData(map[string]interface{}{
		"Last generation": st.Generation,
		"Total time":      time.Since(c.startTime).Round(time.Millisecond),
		"Live cells":      st.LiveCells,
	})
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s\n", c.p.RenderProp(propName, d[propName]))
	}
}
