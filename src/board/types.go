package board

import (
	"time"
)

//Controller is the set of commands a frontend can send to the board
type Controller interface {
	Toggle(row int, col int)
	Start()
	Stop()
	Clear()
	Step()
	SettleWithRandomData()
}

//Life is the full board api
type Life interface {
	Controller
	Status() Status
	Options() Options
	StateCh() chan Status
	AddPattern(p Pattern)
	SettlePattern(name string) error
	Settle(cells [][2]int)
	RegisterViewer(v Viewer)
	Close()
}

//RunState is the board running state
type RunState int

const (
	Stopped RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

//Status represents the state of the board at concrete moment
type Status struct {
	Grid       Grid
	RunState   RunState
	Generation int
	LiveCells  int
	StepTime   time.Duration
}

//Options represents the board's configurable options
type Options struct {
	Interval time.Duration //interval between the generation steps while running
}

//Viewer is the interface to any object who can display the board
//Refresh is called from the board's loop after every handled event
type Viewer interface {
	Refresh(st Status)
	Register(l Life)
}

//DefStepInterval is the default interval between generations
const DefStepInterval = time.Second

var DefaultOptions = Options{
	Interval: DefStepInterval,
}
