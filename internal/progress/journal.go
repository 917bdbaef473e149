package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harunkazanli9/beontrack/internal/workout"
)

// JournalFilename is the journal's name inside the data directory
const JournalFilename = "journal.txt"

// JournalRule is the line every journal record starts with
const JournalRule = "--------------------------------------------------------------------------------"

// JournalRecord is one recorded workout as written to the journal
type JournalRecord struct {
	Timestamp time.Time
	Entry     workout.Entry
	Stats     Stats
	Events    []Event
}

// Journal appends a human readable record of every workout to journal.txt
type Journal struct {
	path string
}

// NewJournal creates a journal in the given directory
func NewJournal(dir string) *Journal {
	return &Journal{
		path: filepath.Join(dir, JournalFilename),
	}
}

// Append appends a record to the journal file
func (j *Journal) Append(rec JournalRecord) error {
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatRecord(rec)); err != nil {
		return fmt.Errorf("failed to write journal record: %w", err)
	}
	return nil
}

// Path returns the path to the journal file
func (j *Journal) Path() string {
	return j.path
}

// Exists checks if the journal file exists
func (j *Journal) Exists() bool {
	_, err := os.Stat(j.path)
	return err == nil
}

// Read returns the journal content; a missing journal reads as empty
func (j *Journal) Read() (string, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// Remove deletes the journal file if present
func (j *Journal) Remove() error {
	if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove journal: %w", err)
	}
	return nil
}

func formatRecord(r JournalRecord) string {
	var sb strings.Builder

	sb.WriteString(JournalRule + "\n")
	sb.WriteString(fmt.Sprintf("Logged: %s\n", r.Timestamp.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Workout #%d: %s, %d min on %s\n",
		r.Stats.TotalWorkouts, r.Entry.Type, r.Entry.DurationMinutes, r.Entry.Date.Format(time.DateOnly)))
	if r.Entry.Notes != "" {
		sb.WriteString(fmt.Sprintf("Notes: %s\n", r.Entry.Notes))
	}

	for _, ev := range r.Events {
		switch ev := ev.(type) {
		case AvatarTarget:
			sb.WriteString(fmt.Sprintf("- Walked to %.0f steps\n", ev.Distance))
		case MilestoneReached:
			sb.WriteString(fmt.Sprintf("- Milestone %s %s (%d workouts)\n",
				ev.Milestone.Icon, ev.Milestone.Title, ev.Milestone.Threshold))
		}
	}

	sb.WriteString(fmt.Sprintf("- Streak: %d days (best %d)\n", r.Stats.CurrentStreak, r.Stats.LongestStreak))
	sb.WriteString("\n")

	return sb.String()
}
