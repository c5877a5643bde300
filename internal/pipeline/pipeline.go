// Package pipeline implements the fetch -> parse -> normalize pipeline with
// per-league and per-event failure isolation. A run never fails as a whole:
// it always returns a (possibly empty) game list.
package pipeline

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"sports-ticker/internal/config"
	"sports-ticker/internal/domain/games"
	"sports-ticker/internal/feed"
	"sports-ticker/internal/indicator"
	"sports-ticker/internal/logging"
	"sports-ticker/internal/metrics"
)

// Source fetches the raw scoreboard events for one league. Implementations:
// feed.Client (live) and feed.Fixture (canned).
type Source interface {
	Scoreboard(ctx context.Context, league config.League) ([]feed.Event, error)
}

// Runner executes one refresh over the configured leagues in order.
type Runner struct {
	source        Source
	leagues       []config.League
	tzOffsetHours int
	light         indicator.Light
	logger        *slog.Logger
	metrics       *metrics.Recorder
	reclaim       func()
}

// Options bundles Runner dependencies. Light, Logger, Metrics, and Reclaim
// are optional.
type Options struct {
	Source        Source
	Leagues       []config.League
	TZOffsetHours int
	Light         indicator.Light
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
	Reclaim       func()
}

// New constructs a Runner.
func New(opts Options) *Runner {
	light := opts.Light
	if light == nil {
		light = indicator.Noop()
	}
	reclaim := opts.Reclaim
	if reclaim == nil {
		reclaim = func() { debug.FreeOSMemory() }
	}
	return &Runner{
		source:        opts.Source,
		leagues:       opts.Leagues,
		tzOffsetHours: opts.TZOffsetHours,
		light:         light,
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		reclaim:       reclaim,
	}
}

// Run fetches every configured league and returns the combined game list.
// One bad league never affects another; one bad event never affects its
// siblings. The busy indicator is asserted per league fetch and cleared when
// the run completes.
func (r *Runner) Run(ctx context.Context) games.GameList {
	start := time.Now()
	cycle := uuid.NewString()[:8]
	all := make(games.GameList, 0)

	for _, league := range r.leagues {
		all = append(all, r.fetchLeague(ctx, cycle, league)...)
		// Transient decode buffers from the previous league are dead here;
		// give them back before the next response lands.
		r.reclaim()
	}

	r.light.Set(indicator.Off)
	if r.metrics != nil {
		r.metrics.RecordRefresh(time.Since(start), len(all))
	}
	logging.Info(r.logger, "refresh complete",
		logging.FieldCycle, cycle,
		logging.FieldCount, len(all),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return all
}

func (r *Runner) fetchLeague(ctx context.Context, cycle string, league config.League) games.GameList {
	r.light.Set(indicator.Busy)

	fetchStart := time.Now()
	events, err := r.source.Scoreboard(ctx, league)
	if r.metrics != nil {
		r.metrics.RecordLeagueFetch(league.Name, time.Since(fetchStart), err)
	}
	if err != nil {
		// League tier: this league contributes zero games, siblings run.
		logging.Warn(r.logger, "league fetch failed",
			logging.FieldCycle, cycle,
			logging.FieldLeague, league.Name,
			"error", err,
		)
		return nil
	}

	list := make(games.GameList, 0, len(events))
	for _, ev := range events {
		game, normErr := feed.Normalize(ev, league, r.tzOffsetHours)
		if r.metrics != nil {
			r.metrics.RecordEvent(league.Name, normErr == nil)
		}
		if normErr != nil {
			// Event tier: drop this event only.
			logging.Debug(r.logger, "event skipped",
				logging.FieldCycle, cycle,
				logging.FieldLeague, league.Name,
				"event_id", ev.ID,
				"error", normErr,
			)
			continue
		}
		list = append(list, game)
	}

	logging.Info(r.logger, "league fetched",
		logging.FieldCycle, cycle,
		logging.FieldLeague, league.Name,
		logging.FieldCount, len(list),
	)
	return list
}
