package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harunkazanli9/beontrack/internal/milestone"
	"github.com/harunkazanli9/beontrack/internal/progress"
)

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"45", false},
		{" 30 ", false},
		{"0", true},
		{"-5", true},
		{"abc", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateDuration(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMilestonesIn(t *testing.T) {
	events := []progress.Event{
		progress.AvatarTarget{Distance: 250, TotalWorkouts: 5},
		progress.MilestoneReached{Milestone: milestone.Definition{Threshold: 5}},
	}

	got := milestonesIn(events)
	assert.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Milestone.Threshold)
	assert.Empty(t, milestonesIn(nil))
}

func TestFormatStats(t *testing.T) {
	out := formatStats(progress.Stats{
		TotalWorkouts:   3,
		CurrentStreak:   2,
		LongestStreak:   4,
		TotalMinutes:    120,
		AverageDuration: 40,
		Distance:        150,
		ByType:          map[string]int{"Yoga": 1, "Strength": 2},
	})

	assert.Contains(t, out, "120 min (avg 40.0)")
	assert.Contains(t, out, "2 days (best 4)")
	assert.Contains(t, out, "150 steps")
	assert.Less(t, strings.Index(out, "Strength"), strings.Index(out, "Yoga"), "most frequent type first")
}

func TestFormatStatsEmpty(t *testing.T) {
	out := formatStats(progress.Stats{})
	assert.NotContains(t, out, "By type")
}

func TestFormatMilestones(t *testing.T) {
	out := formatMilestones([]progress.Marker{
		{Definition: milestone.Definition{Threshold: 1, Title: "First Step!", Icon: "🎯"}, Distance: 50, Reached: true},
		{Definition: milestone.Definition{Threshold: 5, Title: "First Week Done!", Icon: "⭐"}, Distance: 250},
	}, 3)

	assert.Contains(t, out, "First Step!")
	assert.Contains(t, out, "2 to go")
	assert.Contains(t, out, "250 steps")
}

func TestLastEntries(t *testing.T) {
	assert.Len(t, lastEntries(nil, 5), 0)
}
