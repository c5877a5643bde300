// Package scheduler owns the dual-interval tick loop: a fetch deadline that
// drives refreshes and a display deadline that drives rotation. The two
// deadlines are independent; firing one never perturbs the other. Everything
// runs on one control flow: a refresh blocks rotation for its duration by
// construction, and no locking is needed because nothing else can observe
// the state.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"sports-ticker/internal/domain/games"
	"sports-ticker/internal/logging"
	"sports-ticker/internal/metrics"
	"sports-ticker/internal/rotation"
	"sports-ticker/internal/ticks"
)

// State is the scheduling state threaded through Step by parameter/return.
// The clocks record the previous firing, not the next deadline: a deadline
// has elapsed when at least one interval has passed since its clock.
type State struct {
	FetchClock   ticks.Ticks
	DisplayClock ticks.Ticks
	Rot          rotation.Controller
}

// NewState starts both clocks at now with the initial game list installed.
func NewState(now ticks.Ticks, initial games.GameList) State {
	return State{
		FetchClock:   now,
		DisplayClock: now,
		Rot:          rotation.Controller{}.Install(initial),
	}
}

// RefreshFunc produces a new game list. An error means the run failed before
// producing any games; the prior list stays in place.
type RefreshFunc func(ctx context.Context) (games.GameList, error)

// Options bundles Engine dependencies. NowTicks and Sleep are injectable for
// tests; Logger and Metrics are optional.
type Options struct {
	FetchInterval   time.Duration
	DisplayInterval time.Duration
	NoGamesRetry    time.Duration
	IdleWait        time.Duration

	Refresh RefreshFunc
	Render  func(games.Game)
	NoGames func()

	NowTicks func() ticks.Ticks
	Sleep    func(time.Duration)
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Engine evaluates one scheduling step at a time.
type Engine struct {
	fetchInterval   time.Duration
	displayInterval time.Duration
	noGamesRetry    time.Duration
	idleWait        time.Duration

	refresh RefreshFunc
	render  func(games.Game)
	noGames func()

	nowTicks func() ticks.Ticks
	sleep    func(time.Duration)
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// New constructs an Engine with sane defaults for the injectables.
func New(opts Options) *Engine {
	now := opts.NowTicks
	if now == nil {
		now = ticks.Now
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	idle := opts.IdleWait
	if idle <= 0 {
		idle = 100 * time.Millisecond
	}
	return &Engine{
		fetchInterval:   opts.FetchInterval,
		displayInterval: opts.DisplayInterval,
		noGamesRetry:    opts.NoGamesRetry,
		idleWait:        idle,
		refresh:         opts.Refresh,
		render:          opts.Render,
		noGames:         opts.NoGames,
		nowTicks:        now,
		sleep:           sleep,
		logger:          opts.Logger,
		metrics:         opts.Metrics,
	}
}

// Step evaluates both deadlines once. The fetch deadline is always evaluated
// and applied before the display deadline, so a list swap and the first
// rotation against the new list can land in the same step. Each fired clock
// advances by exactly one interval from its previous value; a stalled loop
// catches up one firing per step.
func (e *Engine) Step(ctx context.Context, st State) (State, error) {
	now := e.nowTicks()

	if ticks.Elapsed(now, st.FetchClock, e.fetchInterval) {
		st.FetchClock = ticks.Add(st.FetchClock, e.fetchInterval)

		list, err := e.refresh(ctx)
		if err != nil {
			// Stale rotation continues; the prior list was not torn down.
			logging.Warn(e.logger, "refresh failed, keeping previous games", "error", err)
		} else {
			st.Rot = st.Rot.Install(list)
			if len(list) == 0 {
				e.noGames()
				e.sleep(e.noGamesRetry)
				return st, nil
			}
		}
	}

	if ticks.Elapsed(now, st.DisplayClock, e.displayInterval) {
		if game, next, ok := st.Rot.Next(); ok {
			st.Rot = next
			logging.Info(e.logger, "showing game",
				logging.FieldLeague, game.League,
				"away", game.AwayTeam,
				"home", game.HomeTeam,
			)
			e.render(game)
			if e.metrics != nil {
				e.metrics.RecordRotation(game.League)
			}
		} else {
			e.noGames()
		}
		st.DisplayClock = ticks.Add(st.DisplayClock, e.displayInterval)
	}

	e.sleep(e.idleWait)
	return st, nil
}
