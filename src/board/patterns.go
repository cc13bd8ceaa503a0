package board

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//Pattern is the seeding template which can be used to settle the board with predefined data
type Pattern struct {
	Name  string   //pattern name
	Descr string   //pattern descr
	Cells [][2]int //array of [row, col] coordinates
}

//BuiltinPatterns are registered on every new board
var BuiltinPatterns = []Pattern{
	{"block", "2x2 still life", [][2]int{{4, 4}, {4, 5}, {5, 4}, {5, 5}}},
	{"blinker", "period 2 oscillator", [][2]int{{4, 3}, {4, 4}, {4, 5}}},
	{"toad", "period 2 oscillator", [][2]int{{4, 4}, {4, 5}, {4, 6}, {5, 3}, {5, 4}, {5, 5}}},
	{"beacon", "period 2 oscillator", [][2]int{{2, 2}, {2, 3}, {3, 2}, {4, 5}, {5, 4}, {5, 5}}},
	{"glider", "spaceship, dies in the corner of the board", [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
}

//PatternNames returns the sorted names of the builtin patterns
func PatternNames() []string {
	names := make([]string, 0, len(BuiltinPatterns))
	for _, p := range BuiltinPatterns {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

//ParsePattern parses the coordinates list in form "row,col;row,col"
func ParsePattern(s string) ([][2]int, error) {
	var cells [][2]int
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("[ParsePattern] malformed coordinates: %q", pair)
		}
		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "[ParsePattern] bad row in: %q", pair)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "[ParsePattern] bad col in: %q", pair)
		}
		if !InBounds(row, col) {
			return nil, errors.Errorf("[ParsePattern] cell %v,%v is outside the %vx%v board", row, col, Size, Size)
		}
		cells = append(cells, [2]int{row, col})
	}
	if len(cells) == 0 {
		return nil, errors.Errorf("[ParsePattern] no cells in: %q", s)
	}
	return cells, nil
}
