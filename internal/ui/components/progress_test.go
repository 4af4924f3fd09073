package components

import (
	"strings"
	"testing"
)

func TestProgressBar_Cells(t *testing.T) {
	tests := []struct {
		percent    float64
		width      int
		wantFilled int
		wantWidth  int
	}{
		{0, 10, 0, 10},
		{0.5, 10, 5, 10},
		{1, 10, 10, 10},
		{1.7, 10, 10, 10},
		{-0.2, 10, 0, 10},
		{0.5, 1, 2, 4},
	}
	for _, tt := range tests {
		filled, width := NewProgressBar("", tt.percent, false, tt.width).Cells()
		if filled != tt.wantFilled || width != tt.wantWidth {
			t.Errorf("Cells(%v, %d) = %d/%d, want %d/%d", tt.percent, tt.width, filled, width, tt.wantFilled, tt.wantWidth)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	v := NewProgressBar("Cobertura", 0.25, true, 8).View()
	if !strings.Contains(v, "Cobertura") {
		t.Errorf("label missing from %q", v)
	}
	if !strings.Contains(v, "25%") {
		t.Errorf("percent missing from %q", v)
	}
	if got := strings.Count(v, "█"); got != 2 {
		t.Errorf("filled cells = %d, want 2", got)
	}
}
