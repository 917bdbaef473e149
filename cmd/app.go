package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/harunkazanli9/beontrack/internal/clock"
	"github.com/harunkazanli9/beontrack/internal/config"
	"github.com/harunkazanli9/beontrack/internal/geometry"
	"github.com/harunkazanli9/beontrack/internal/log"
	"github.com/harunkazanli9/beontrack/internal/milestone"
	"github.com/harunkazanli9/beontrack/internal/notify"
	"github.com/harunkazanli9/beontrack/internal/progress"
	"github.com/harunkazanli9/beontrack/internal/store"
	"github.com/harunkazanli9/beontrack/internal/workout"
)

// app is everything a command needs: the loaded journey plus the places
// it is persisted to
type app struct {
	cfg        config.Config
	logger     *log.Logger
	clock      clock.Clock
	store      store.Store
	journal    *progress.Journal
	controller *progress.Controller
	notifier   *notify.Notifier
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}
	if storeKind != "" {
		cfg.Storage.Kind = storeKind
	}
	return cfg, cfg.Validate()
}

// openApp loads config and the persisted log and places the journey. A log
// that cannot be read is copied aside first, then replaced by an empty one.
// If the copy fails the app refuses to start rather than overwrite it.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	opts := log.DefaultOptions()
	opts.Level = log.LevelFor(debug)
	logger := log.New(opts)
	log.SetDefault(logger)

	st, err := store.Open(cfg.Storage.Kind, cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Kind, err)
	}

	tracker, err := milestone.NewTracker(milestone.DefaultCatalog(), cfg.Journey.StepsPerWorkout)
	if err != nil {
		st.Close()
		return nil, err
	}

	c := clock.System{}
	controller := progress.New(
		cfg.Journey.StepsPerWorkout,
		workout.NewLog(c),
		geometry.New(cfg.Path),
		tracker,
		logger,
	)

	snap, err := st.Load(ctx)
	if err != nil {
		backup, backupErr := st.Backup(ctx, c.Now())
		if backupErr != nil {
			st.Close()
			return nil, fmt.Errorf("cannot read %s and could not back it up: %w",
				st.Location(), multierr.Combine(err, backupErr))
		}
		logger.Warn("failed to load workouts, starting with an empty log",
			"store", st.Location(), "backup", backup, "err", err)
		snap = workout.Snapshot{}
	}
	controller.Initialize(snap)
	logger.Debug("loaded journey", "store", st.Location(), "workouts", len(snap.Workouts))

	return &app{
		cfg:        cfg,
		logger:     logger,
		clock:      c,
		store:      st,
		journal:    progress.NewJournal(cfg.Storage.DataDir),
		controller: controller,
		notifier:   notify.New(),
	}, nil
}

// record adds entries to the journey, persists the log and journals every
// recorded entry. Milestone events are attached to the last journal record.
func (a *app) record(ctx context.Context, entries []workout.Entry) ([]progress.Event, int, error) {
	events, n, recordErr := a.controller.RecordBatch(entries)
	if n == 0 {
		return nil, 0, recordErr
	}

	if err := a.store.Save(ctx, a.controller.Snapshot()); err != nil {
		return events, n, fmt.Errorf("failed to save workouts: %w", err)
	}

	all := a.controller.Entries()
	recorded := all[len(all)-n:]
	stats := a.controller.Stats()
	now := a.clock.Now()
	for i, e := range recorded {
		rec := progress.JournalRecord{Timestamp: now, Entry: e, Stats: stats}
		rec.Stats.TotalWorkouts = stats.TotalWorkouts - n + i + 1
		if i == n-1 {
			rec.Events = events
		}
		if err := a.journal.Append(rec); err != nil {
			a.logger.Warn("failed to write journal", "path", a.journal.Path(), "err", err)
			break
		}
	}

	if a.cfg.Journey.Notifications {
		for _, m := range milestonesIn(events) {
			if err := a.notifier.Milestone(m.Milestone); err != nil {
				a.logger.Debug("notification failed", "err", err)
			}
		}
	}

	return events, n, recordErr
}

// fail closes the app and exits with an error
func (a *app) fail(msg string, err error) {
	a.close()
	exitWithError(msg, err)
}

func (a *app) close() {
	a.controller.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", "err", err)
	}
}

func milestonesIn(events []progress.Event) []progress.MilestoneReached {
	return lo.FilterMap(events, func(ev progress.Event, _ int) (progress.MilestoneReached, bool) {
		m, ok := ev.(progress.MilestoneReached)
		return m, ok
	})
}

// printEvents reports what a recording changed
func printEvents(events []progress.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case progress.AvatarTarget:
			fmt.Printf("  %s Walked to %.0f steps (%d workouts)\n",
				successStyle.Render("→"), ev.Distance, ev.TotalWorkouts)
		case progress.MilestoneReached:
			style := boldStyle.Foreground(lipgloss.Color(ev.Milestone.Color))
			fmt.Printf("  %s %s\n", ev.Milestone.Icon,
				style.Render(fmt.Sprintf("%s %d workouts!", ev.Milestone.Title, ev.Milestone.Threshold)))
		}
	}
}
