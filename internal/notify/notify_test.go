package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunkazanli9/beontrack/internal/milestone"
)

type call struct {
	name string
	args []string
}

func recorder(calls *[]call, err error) Runner {
	return func(name string, args ...string) error {
		*calls = append(*calls, call{name: name, args: args})
		return err
	}
}

func TestSendLinux(t *testing.T) {
	var calls []call
	n := NewWithRunner("linux", recorder(&calls, nil))

	require.NoError(t, n.Send("BeOnTrack", "hello"))
	require.Len(t, calls, 1)
	assert.Equal(t, "notify-send", calls[0].name)
	assert.Equal(t, []string{"BeOnTrack", "hello"}, calls[0].args)
}

func TestSendDarwinQuotes(t *testing.T) {
	var calls []call
	n := NewWithRunner("darwin", recorder(&calls, nil))

	require.NoError(t, n.Send("BeOnTrack", `say "hi"`))
	require.Len(t, calls, 1)
	assert.Equal(t, "osascript", calls[0].name)
	assert.Equal(t, `display notification "say \"hi\"" with title "BeOnTrack"`, calls[0].args[1])
}

func TestSendUnsupportedPlatform(t *testing.T) {
	var calls []call
	n := NewWithRunner("plan9", recorder(&calls, errors.New("unreachable")))

	assert.NoError(t, n.Send("a", "b"))
	assert.Empty(t, calls)
}

func TestMilestone(t *testing.T) {
	var calls []call
	n := NewWithRunner("linux", recorder(&calls, errors.New("no notify-send")))

	def := milestone.Definition{Threshold: 10, Title: "Double Digits!", Icon: "🔥"}
	assert.Error(t, n.Milestone(def))
	require.Len(t, calls, 1)
	assert.Equal(t, "🔥 Double Digits! 10 workouts completed", calls[0].args[1])
}
