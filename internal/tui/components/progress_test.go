package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		fraction float64
		contains string
	}{
		{"empty", 0, 4, 0, "0/4 workouts (0%)"},
		{"half", 2, 4, 0.5, "2/4 workouts (50%)"},
		{"full", 4, 4, 1, "4/4 workouts (100%)"},
		{"overshoot clamps", 6, 4, 1, "6/4 workouts (100%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewProgressBar(tt.current, tt.total, 20).WithLabel("Next")
			assert.InDelta(t, tt.fraction, pb.Fraction(), 1e-9)

			out := pb.Render()
			assert.Contains(t, out, tt.contains)
			assert.True(t, strings.HasPrefix(out, "Next "))
		})
	}
}

func TestProgressBarZeroTotal(t *testing.T) {
	assert.Empty(t, NewProgressBar(3, 0, 20).Render())
}

func TestMiniProgressBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", 8), NewMiniProgressBar(0, 0, 8).Render())

	out := NewMiniProgressBar(2, 4, 8).Render()
	assert.Equal(t, 4, strings.Count(out, "█"))
	assert.Equal(t, 4, strings.Count(out, "░"))
}
