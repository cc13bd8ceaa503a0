package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifeboard/src/board"
	"lifeboard/src/config"
	"lifeboard/src/view"
)

//frontend is the interactive view which owns the terminal until the user exits
type frontend interface {
	board.Viewer
	Start() error
}

var (
	frontends = map[string]func(p view.Palette) (frontend, error){
		"gocui": func(p view.Palette) (frontend, error) {
			t, err := view.NewConsoleUI(p)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		"tea": func(p view.Palette) (frontend, error) {
			return view.NewTeaUI(p), nil
		},
	}
)

//headlessUI is the non-interactive mode name
const headlessUI = "console"

func main() {
	c := initOptions()

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open the log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	stateCh := make(chan board.Status, 10)
	if c.UI != headlessUI {
		stateCh = nil
	}
	l := board.New(c.BoardOptions(), stateCh)
	defer l.Close()

	if err := seed(l, c); err != nil {
		log.Fatalf("%+v", err)
	}

	var err error
	if c.UI == headlessUI {
		err = runHeadless(l, c)
	} else {
		err = runInteractive(l, c)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

func runInteractive(l board.Life, c config.Config) error {
	f, err := frontends[c.UI](view.NewPalette(c.LiveGlyph, c.DeadGlyph, true))
	if err != nil {
		return err
	}
	log.Printf("starting %v frontend, interval %v", c.UI, l.Options().Interval)
	l.RegisterViewer(f)
	return f.Start()
}

//runHeadless runs the board until the generations limit, the board's death or SIGINT
func runHeadless(l board.Life, c config.Config) error {
	out := view.NewConsoleOut(os.Stdout, view.NewPalette(c.LiveGlyph, c.DeadGlyph, true))
	l.RegisterViewer(out)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	last := l.Status()
	//reads the statuses until the board is stopped after the finish request
	eg.Go(func() error {
		for st := range l.StateCh() {
			last = st
			if st.RunState == board.Stopped {
				if ctx.Err() != nil {
					return nil
				}
				continue
			}
			if st.Generation >= c.Generations || st.LiveCells == 0 {
				cancel()
			}
		}
		return errors.New("[runHeadless] status channel closed")
	})
	eg.Go(func() error {
		<-ctx.Done()
		l.Stop()
		return nil
	})

	out.Start()
	l.Start()
	err := eg.Wait()
	out.Finish(last)
	return err
}

func seed(l board.Life, c config.Config) error {
	switch {
	case c.Random:
		l.SettleWithRandomData()
	case c.Pattern == "":
	case strings.Contains(c.Pattern, ","):
		cells, err := board.ParsePattern(c.Pattern)
		if err != nil {
			return errors.Wrap(err, "[seed] bad pattern")
		}
		l.Settle(cells)
	default:
		if err := l.SettlePattern(c.Pattern); err != nil {
			return errors.Wrapf(err, "[seed] known patterns are: %v", strings.Join(board.PatternNames(), ", "))
		}
	}
	return nil
}

func initOptions() config.Config {
	var (
		configFile string
		flags      = config.Default()
		interval   = time.Duration(flags.Interval)
	)
	uiNames := []string{headlessUI}
	for k := range frontends {
		uiNames = append(uiNames, k)
	}

	flaggy.SetName("lifeboard")
	flaggy.SetDescription("Conway's Game of Life on a 10x10 board")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&configFile, "c", "config", "JSON configuration file")
	flaggy.String(&flags.UI, "u", "ui", "Frontend to use ["+strings.Join(uiNames, "|")+"]")
	flaggy.Duration(&interval, "i", "interval", "Interval between the generations, for example 500ms")
	flaggy.String(&flags.Pattern, "p", "pattern", "Initial pattern ["+strings.Join(board.PatternNames(), "|")+"] or cells list 'row,col;row,col'")
	flaggy.Bool(&flags.Random, "r", "random", "Settle with random data")
	flaggy.Int(&flags.Generations, "g", "generations", "Generations to run in the console mode")
	flaggy.String(&flags.LogFile, "l", "log", "Log file")

	flaggy.Parse()

	c := config.Default()
	if configFile != "" {
		var err error
		if c, err = config.Load(configFile); err != nil {
			flaggy.ShowHelpAndExit(fmt.Sprintf("%v", err))
		}
	}

	//flags which were set explicitly override the config file
	def := config.Default()
	if flags.UI != def.UI {
		c.UI = flags.UI
	}
	if interval != time.Duration(def.Interval) {
		c.Interval = config.Duration(interval)
	}
	if flags.Pattern != def.Pattern {
		c.Pattern = flags.Pattern
	}
	if flags.Random {
		c.Random = true
	}
	if flags.Generations != def.Generations {
		c.Generations = flags.Generations
	}
	if flags.LogFile != def.LogFile {
		c.LogFile = flags.LogFile
	}

	if _, ok := frontends[c.UI]; !ok && c.UI != headlessUI {
		flaggy.ShowHelpAndExit("unknown ui: " + c.UI)
	}
	if err := c.Validate(); err != nil {
		flaggy.ShowHelpAndExit(fmt.Sprintf("%v", err))
	}

	return c
}
