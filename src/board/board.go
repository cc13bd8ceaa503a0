package board

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
)

//tickerFactory arms a recurring timer, returns its channel and the release func
type tickerFactory func(d time.Duration) (<-chan time.Time, func())

func newTimeTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

//Board is the Life board engine
//implements Life interface
//all commands are executed one by one in the main loop goroutine,
//which is also the only owner of the grid, the running state and the step timer
type Board struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	patterns struct {
		m map[string]Pattern
		sync.RWMutex
	}
	stateCh   chan Status
	controlCh chan func()
	closeCh   chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	//owned by the main loop
	views      []Viewer
	grid       Grid
	runState   RunState
	generation int
	stepTime   time.Duration
	rnd        *rand.Rand
	newTicker  tickerFactory
	tickC      <-chan time.Time
	stopTicker func()
}

//New creates the Board instance and starts its main loop
//stateCh is optional, if set it receives the Status after every handled command
func New(o *Options, stateCh chan Status) *Board {
	return newBoard(o, stateCh, newTimeTicker)
}

func newBoard(o *Options, stateCh chan Status, tf tickerFactory) *Board {
	if o == nil {
		o = &DefaultOptions
	}
	b := Board{
		options:   *o,
		stateCh:   stateCh,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan struct{}),
		done:      make(chan struct{}),
		grid:      NewGrid(),
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		newTicker: tf,
	}
	if b.options.Interval <= 0 {
		b.options.Interval = DefStepInterval
	}
	b.patterns.m = map[string]Pattern{}
	for _, p := range BuiltinPatterns {
		b.patterns.m[p.Name] = p
	}
	b.state.Status = b.snapshot()
	go b.mainLoop()
	return &b
}

//Toggle inverses the cell state at row, col, returns immediately
//ignored while the board is running
func (b *Board) Toggle(row int, col int) {
	b.do(func() {
		if b.runState == Stopped {
			b.grid = b.grid.Toggled(row, col)
		}
	})
}

//Start starts the simulation, returns immediately
func (b *Board) Start() {
	b.do(func() {
		if b.runState == Stopped {
			b.runState = Running
			b.arm()
		}
	})
}

//Stop stops the simulation, returns immediately
func (b *Board) Stop() {
	b.do(b.stop)
}

//Clear stops the simulation and kills all cells, returns immediately
func (b *Board) Clear() {
	b.do(func() {
		b.stop()
		b.grid = NewGrid()
		b.generation = 0
		b.stepTime = 0
	})
}

//Step does one generation step, returns immediately
//ignored while the board is running
func (b *Board) Step() {
	b.do(func() {
		if b.runState == Stopped {
			b.step()
		}
	})
}

//AddPattern adds the seeding pattern to the internal storage
//the board can be populated with this pattern by call SettlePattern
func (b *Board) AddPattern(p Pattern) {
	b.patterns.Lock()
	b.patterns.m[p.Name] = p
	b.patterns.Unlock()
}

//SettlePattern populates the board with the named pattern
func (b *Board) SettlePattern(name string) error {
	b.patterns.RLock()
	p, ok := b.patterns.m[name]
	b.patterns.RUnlock()
	if !ok {
		return errors.Errorf("[SettlePattern] unknown pattern: %q", name)
	}
	b.Settle(p.Cells)
	return nil
}

//Settle settles the board with data
//cells - array of [row, col] coordinates, ignored while the board is running
func (b *Board) Settle(cells [][2]int) {
	b.do(func() {
		if b.runState == Stopped {
			b.grid = b.grid.With(cells)
		}
	})
}

//SettleWithRandomData replaces the board with random data
//ignored while the board is running
func (b *Board) SettleWithRandomData() {
	b.do(func() {
		if b.runState != Stopped {
			return
		}
		g := NewGrid()
		g.walk(func(row int, col int, _ Cell) {
			g[row][col] = b.rnd.Intn(3) == 0
		})
		b.grid = g
		b.generation = 0
	})
}

//RegisterViewer registers the viewer - the board will call the viewer when the state is changed
func (b *Board) RegisterViewer(v Viewer) {
	v.Register(b)
	b.exec(func() {
		b.views = append(b.views, v)
		v.Refresh(b.Status())
	})
}

//StateCh returns the channel with the board's status updates
func (b *Board) StateCh() chan Status {
	return b.stateCh
}

//Status returns the last published board status
func (b *Board) Status() Status {
	b.state.Lock()
	defer b.state.Unlock()
	return b.state.Status
}

//Options returns the board configuration
func (b *Board) Options() Options {
	return b.options
}

//Close stops the main loop and releases the step timer
//returns when the loop is finished, no state changes happen after that
func (b *Board) Close() {
	b.closeOnce.Do(func() { close(b.closeCh) })
	<-b.done
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command or timer tick and executes
func (b *Board) mainLoop() {
	defer close(b.done)
	defer b.disarm()
	for {
		select {
		case cmd := <-b.controlCh:
			cmd()
		case <-b.tickC:
			b.tick()
		case <-b.closeCh:
			return
		}
	}
}

//exec queues the command to the main loop, commands sent after Close are dropped
func (b *Board) exec(cmd func()) {
	select {
	case b.controlCh <- cmd:
	case <-b.done:
	}
}

//do queues the command and publishes the new status after it's executed
func (b *Board) do(cmd func()) {
	b.exec(func() {
		cmd()
		b.publish()
	})
}

func (b *Board) tick() {
	if b.runState == Running {
		b.step()
	}
	b.publish()
}

func (b *Board) stop() {
	b.runState = Stopped
	b.disarm()
}

//step replaces the grid with the next generation
func (b *Board) step() {
	start := time.Now()
	b.grid = b.grid.Next()
	b.generation++
	b.stepTime = time.Since(start)
}

//arm starts the step timer if it's not running yet
func (b *Board) arm() {
	if b.stopTicker != nil {
		return
	}
	b.tickC, b.stopTicker = b.newTicker(b.options.Interval)
}

//disarm releases the step timer
func (b *Board) disarm() {
	if b.stopTicker == nil {
		return
	}
	b.stopTicker()
	b.stopTicker = nil
	b.tickC = nil
}

func (b *Board) snapshot() Status {
	return Status{
		Grid:       b.grid,
		RunState:   b.runState,
		Generation: b.generation,
		LiveCells:  b.grid.LiveCells(),
		StepTime:   b.stepTime,
	}
}

//publish stores the status, writes it to the stateCh and refreshes all registered views
func (b *Board) publish() {
	st := b.snapshot()
	b.state.Lock()
	b.state.Status = st
	b.state.Unlock()
	if b.stateCh != nil {
		select {
		case b.stateCh <- st:
		case <-b.closeCh:
		}
	}
	for _, v := range b.views {
		v.Refresh(st)
	}
}
