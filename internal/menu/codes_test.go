package menu

import (
	"testing"

	"github.com/jorgecontrerasostos/unitconv/pkg/convert"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		code   string
		n      int
		want   int
		wantOK bool
	}{
		{"1", 3, 0, true},
		{"3", 3, 2, true},
		{"4", 3, 0, false},
		{"0", 3, 0, false},
		{"01", 3, 0, false},
		{"+1", 3, 0, false},
		{"-1", 3, 0, false},
		{"", 3, 0, false},
		{"one", 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := position(tt.code, tt.n)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("position(%q, %d) = (%d, %v), want (%d, %v)", tt.code, tt.n, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCodes(t *testing.T) {
	if c, ok := categoryForCode("2"); !ok || c != convert.Distance {
		t.Errorf("categoryForCode(2) = (%v, %v)", c, ok)
	}
	dirs := convert.Weight.Directions()
	if d, ok := directionForCode(dirs, "2"); !ok || d != convert.Kg2Lb {
		t.Errorf("directionForCode(2) = (%v, %v)", d, ok)
	}
	if backCode(dirs) != "3" {
		t.Errorf("backCode() = %q, want 3", backCode(dirs))
	}
}
