package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifeboard/src/board"
)

// Duration is a time.Duration read from a Go duration string, e.g. "1s" or "250ms"
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "[Duration] expected a duration string")
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "[Duration] failed to parse: %q", s)
	}
	*d = Duration(v)
	return nil
}

// Config holds the configuration for the board and its frontend
type Config struct {
	Interval    Duration `json:"interval"`
	UI          string   `json:"ui"`
	Pattern     string   `json:"pattern"`
	Random      bool     `json:"random"`
	Generations int      `json:"generations"`
	LiveGlyph   string   `json:"live_glyph"`
	DeadGlyph   string   `json:"dead_glyph"`
	LogFile     string   `json:"log_file"`
}

// Default returns the defaults: 1s steps on the gocui frontend
func Default() Config {
	return Config{
		Interval:    Duration(board.DefStepInterval),
		UI:          "gocui",
		Generations: 50,
		LiveGlyph:   "█",
		DeadGlyph:   "░",
	}
}

// Load loads configuration from JSON file, missing fields keep their defaults
func Load(filename string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[Load] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values which can't be fixed up silently
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return errors.Errorf("[Validate] interval must be positive, got %v", time.Duration(c.Interval))
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative, got %v", c.Generations)
	}
	if c.LiveGlyph == "" || c.DeadGlyph == "" {
		return errors.New("[Validate] glyphs must not be empty")
	}
	return nil
}

// BoardOptions converts the config to the board options
func (c Config) BoardOptions() *board.Options {
	return &board.Options{Interval: time.Duration(c.Interval)}
}
