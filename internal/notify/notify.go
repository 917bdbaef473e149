// Package notify sends desktop notifications for milestone celebrations.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/harunkazanli9/beontrack/internal/milestone"
)

const appName = "BeOnTrack"

// Runner executes an external command
type Runner func(name string, args ...string) error

func execRunner(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Notifier sends notifications through the platform tool
type Notifier struct {
	goos string
	run  Runner
}

// New creates a notifier for the current platform
func New() *Notifier {
	return &Notifier{goos: runtime.GOOS, run: execRunner}
}

// NewWithRunner creates a notifier for goos that runs commands through run
func NewWithRunner(goos string, run Runner) *Notifier {
	return &Notifier{goos: goos, run: run}
}

// Send sends a system notification. Unsupported platforms are ignored.
func (n *Notifier) Send(title, message string) error {
	switch n.goos {
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(message), strconv.Quote(title))
		return n.run("osascript", "-e", script)
	case "linux":
		return n.run("notify-send", title, message)
	default:
		return nil
	}
}

// Milestone announces a reached milestone
func (n *Notifier) Milestone(def milestone.Definition) error {
	return n.Send(appName, MilestoneMessage(def))
}

// MilestoneMessage is the notification body for a reached milestone
func MilestoneMessage(def milestone.Definition) string {
	return fmt.Sprintf("%s %s %d workouts completed", def.Icon, def.Title, def.Threshold)
}
