package chaos

import (
	"math"
	"testing"
)

func TestSeries_IsFinite(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		finite bool
	}{
		{"empty", Series{}, true},
		{"normal", Series{0.1, 0.5, 0.9}, true},
		{"negative", Series{-1.0, 2.0}, true},
		{"with NaN", Series{0.5, math.NaN()}, false},
		{"with +Inf", Series{0.5, math.Inf(1)}, false},
		{"with -Inf", Series{0.5, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.series.IsFinite(); got != tt.finite {
				t.Errorf("IsFinite() = %v, want %v", got, tt.finite)
			}
		})
	}
}

func TestSeries_Stats(t *testing.T) {
	s := Series{2, 4, 4, 4, 5, 5, 7, 9}

	if got := s.Mean(); math.Abs(got-5.0) > 1e-12 {
		t.Errorf("Mean() = %v, want 5", got)
	}
	if got := s.StdDev(); math.Abs(got-2.0) > 1e-12 {
		t.Errorf("StdDev() = %v, want 2", got)
	}
	if got := s.Min(); got != 2 {
		t.Errorf("Min() = %v, want 2", got)
	}
	if got := s.Max(); got != 9 {
		t.Errorf("Max() = %v, want 9", got)
	}
}

func TestSeries_StatsEmpty(t *testing.T) {
	var s Series
	if s.Mean() != 0 || s.StdDev() != 0 || s.Min() != 0 || s.Max() != 0 {
		t.Error("empty series stats should all be zero")
	}
}

func TestSeries_Clone(t *testing.T) {
	s := Series{1, 2, 3}
	c := s.Clone()
	c[0] = 99
	if s[0] == 99 {
		t.Error("Clone did not create independent copy")
	}
}
