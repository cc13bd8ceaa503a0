package board

import (
	"reflect"
	"testing"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		in      string
		want    [][2]int
		wantErr bool
	}{
		{"0,0", [][2]int{{0, 0}}, false},
		{"4,3; 4,4 ;4,5;", [][2]int{{4, 3}, {4, 4}, {4, 5}}, false},
		{" 9 , 9 ", [][2]int{{9, 9}}, false},
		{"", nil, true},
		{";;", nil, true},
		{"1", nil, true},
		{"1,2,3", nil, true},
		{"a,1", nil, true},
		{"1,b", nil, true},
		{"10,0", nil, true},
		{"0,-1", nil, true},
	}
	for _, tt := range tests {
		got, err := ParsePattern(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParsePattern(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("ParsePattern(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuiltinPatterns(t *testing.T) {
	for _, p := range BuiltinPatterns {
		for _, c := range p.Cells {
			if !InBounds(c[0], c[1]) {
				t.Fatalf("pattern %v has cell outside the board: %v", p.Name, c)
			}
		}
	}
	oscillators := map[string]bool{"blinker": true, "toad": true, "beacon": true}
	for _, p := range BuiltinPatterns {
		g := NewGrid().With(p.Cells)
		switch {
		case p.Name == "block":
			if g.Next() != g {
				t.Fatal("block should be a still life")
			}
		case oscillators[p.Name]:
			if g.Next() == g || g.Next().Next() != g {
				t.Fatalf("%v should have period 2", p.Name)
			}
		}
	}
	if names := PatternNames(); len(names) != len(BuiltinPatterns) || names[0] != "beacon" {
		t.Fatalf("unexpected names: %v", names)
	}
}
