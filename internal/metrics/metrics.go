package metrics

import (
	"sync"
	"time"
)

type leagueStats struct {
	fetches          int
	errors           int
	eventsAccepted   int
	eventsSkipped    int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about the ticker.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu        sync.Mutex
	leagues   map[string]*leagueStats
	refreshes int
	emptyRuns int
	rotations int
	restarts  int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		leagues: make(map[string]*leagueStats),
		otel:    otel,
	}
}

// RecordLeagueFetch increments counters for one league fetch and stores the
// last observed latency.
func (r *Recorder) RecordLeagueFetch(league string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(league)
	r.mu.Lock()
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLeagueFetch(league, duration, err)
	}
}

// RecordEvent tracks the outcome of normalizing one raw event.
func (r *Recorder) RecordEvent(league string, accepted bool) {
	if r == nil {
		return
	}

	stats := r.ensureStats(league)
	r.mu.Lock()
	if accepted {
		stats.eventsAccepted++
	} else {
		stats.eventsSkipped++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEvent(league, accepted)
	}
}

// RecordRefresh tracks one full pipeline run.
func (r *Recorder) RecordRefresh(duration time.Duration, total int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refreshes++
	if total == 0 {
		r.emptyRuns++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(duration, total)
	}
}

// RecordRotation tracks one display rotation.
func (r *Recorder) RecordRotation(league string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.rotations++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRotation(league)
	}
}

// RecordRestart tracks a recovery-driven restart by fault class.
func (r *Recorder) RecordRestart(class string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.restarts++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRestart(class)
	}
}

// Snapshot is a copy of the counters for one league.
type Snapshot struct {
	Fetches          int
	Errors           int
	EventsAccepted   int
	EventsSkipped    int
	LastFetchLatency time.Duration
}

// LeagueSnapshot returns a copy of the current stats for the league.
func (r *Recorder) LeagueSnapshot(league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.leagues[league]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		EventsAccepted:   stats.eventsAccepted,
		EventsSkipped:    stats.eventsSkipped,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// Refreshes returns the number of pipeline runs recorded.
func (r *Recorder) Refreshes() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes
}

// EmptyRuns returns the number of pipeline runs that produced zero games.
func (r *Recorder) EmptyRuns() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emptyRuns
}

// Rotations returns the number of display rotations recorded.
func (r *Recorder) Rotations() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rotations
}

// Restarts returns the number of recovery restarts recorded.
func (r *Recorder) Restarts() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.restarts
}

func (r *Recorder) ensureStats(league string) *leagueStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.leagues[league]
	if !ok {
		stats = &leagueStats{}
		r.leagues[league] = stats
	}
	return stats
}
