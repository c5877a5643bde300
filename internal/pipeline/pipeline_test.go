package pipeline

import (
	"context"
	"errors"
	"testing"

	"sports-ticker/internal/config"
	"sports-ticker/internal/feed"
	"sports-ticker/internal/indicator"
	"sports-ticker/internal/metrics"
)

var (
	nfl = config.League{Name: "NFL", Sport: "football", Slug: "nfl"}
	nba = config.League{Name: "NBA", Sport: "basketball", Slug: "nba"}
	nhl = config.League{Name: "NHL", Sport: "hockey", Slug: "nhl"}
)

// fakeSource returns canned events or errors per league.
type fakeSource struct {
	events map[string][]feed.Event
	errs   map[string]error
	calls  []string
}

func (f *fakeSource) Scoreboard(ctx context.Context, league config.League) ([]feed.Event, error) {
	f.calls = append(f.calls, league.Name)
	if err := f.errs[league.Name]; err != nil {
		return nil, err
	}
	return f.events[league.Name], nil
}

type recordingLight struct {
	colors []indicator.Color
}

func (r *recordingLight) Set(c indicator.Color) { r.colors = append(r.colors, c) }

func validEvent(id, home, away string) feed.Event {
	return feed.Event{
		ID:   id,
		Date: "2024-01-15T00:30Z",
		Competitions: []feed.Competition{{
			Competitors: []feed.Competitor{
				{Team: feed.TeamInfo{Abbreviation: home}, Score: "10"},
				{Team: feed.TeamInfo{Abbreviation: away}, Score: "7"},
			},
		}},
		Status: feed.EventStatus{Type: feed.StatusType{Name: "STATUS_IN_PROGRESS", ShortDetail: "Q2 1:00"}},
	}
}

func brokenEvent(id string) feed.Event {
	ev := validEvent(id, "AAA", "BBB")
	ev.Competitions[0].Competitors = ev.Competitions[0].Competitors[:1]
	return ev
}

func TestRunIsolatesAFailingLeague(t *testing.T) {
	source := &fakeSource{
		events: map[string][]feed.Event{
			"NFL": {validEvent("1", "KC", "BUF"), validEvent("2", "PHI", "DAL")},
			"NHL": {validEvent("3", "BOS", "TOR")},
		},
		errs: map[string]error{"NBA": errors.New("connect timeout")},
	}
	recorder := metrics.NewRecorder()
	runner := New(Options{
		Source:  source,
		Leagues: []config.League{nfl, nba, nhl},
		Metrics: recorder,
		Reclaim: func() {},
	})

	list := runner.Run(context.Background())

	if len(list) != 3 {
		t.Fatalf("expected 3 games from the healthy leagues, got %d", len(list))
	}
	for _, g := range list {
		if g.League == "NBA" {
			t.Fatalf("failing league must contribute zero games")
		}
	}
	if len(source.calls) != 3 {
		t.Fatalf("expected all leagues attempted, got %v", source.calls)
	}
	if snap := recorder.LeagueSnapshot("NBA"); snap.Errors != 1 {
		t.Fatalf("expected 1 recorded error for NBA, got %d", snap.Errors)
	}
}

func TestRunSkipsMalformedEventsOnly(t *testing.T) {
	source := &fakeSource{
		events: map[string][]feed.Event{
			"NFL": {validEvent("1", "KC", "BUF"), brokenEvent("2"), validEvent("3", "PHI", "DAL")},
		},
	}
	recorder := metrics.NewRecorder()
	runner := New(Options{
		Source:  source,
		Leagues: []config.League{nfl},
		Metrics: recorder,
		Reclaim: func() {},
	})

	list := runner.Run(context.Background())

	if len(list) != 2 {
		t.Fatalf("expected exactly the valid events, got %d games", len(list))
	}
	snap := recorder.LeagueSnapshot("NFL")
	if snap.EventsAccepted != 2 || snap.EventsSkipped != 1 {
		t.Fatalf("expected 2 accepted / 1 skipped, got %d/%d", snap.EventsAccepted, snap.EventsSkipped)
	}
}

func TestRunPreservesConfiguredLeagueOrder(t *testing.T) {
	source := &fakeSource{
		events: map[string][]feed.Event{
			"NHL": {validEvent("1", "BOS", "TOR")},
			"NFL": {validEvent("2", "KC", "BUF")},
		},
	}
	runner := New(Options{
		Source:  source,
		Leagues: []config.League{nhl, nfl},
		Reclaim: func() {},
	})

	list := runner.Run(context.Background())
	if len(list) != 2 {
		t.Fatalf("expected 2 games, got %d", len(list))
	}
	if list[0].League != "NHL" || list[1].League != "NFL" {
		t.Fatalf("expected configured order NHL,NFL; got %s,%s", list[0].League, list[1].League)
	}
}

func TestRunAlwaysReturnsAListNeverFails(t *testing.T) {
	source := &fakeSource{
		errs: map[string]error{"NFL": errors.New("down"), "NBA": errors.New("down"), "NHL": errors.New("down")},
	}
	recorder := metrics.NewRecorder()
	runner := New(Options{
		Source:  source,
		Leagues: []config.League{nfl, nba, nhl},
		Metrics: recorder,
		Reclaim: func() {},
	})

	list := runner.Run(context.Background())
	if list == nil {
		t.Fatalf("expected an empty list, got nil")
	}
	if len(list) != 0 {
		t.Fatalf("expected zero games, got %d", len(list))
	}
	if recorder.EmptyRuns() != 1 {
		t.Fatalf("expected an empty run recorded, got %d", recorder.EmptyRuns())
	}
}

func TestRunAssertsBusyPerLeagueAndClearsOnCompletion(t *testing.T) {
	light := &recordingLight{}
	source := &fakeSource{
		events: map[string][]feed.Event{"NFL": {validEvent("1", "KC", "BUF")}},
		errs:   map[string]error{"NBA": errors.New("down")},
	}
	runner := New(Options{
		Source:  source,
		Leagues: []config.League{nfl, nba},
		Light:   light,
		Reclaim: func() {},
	})

	runner.Run(context.Background())

	want := []indicator.Color{indicator.Busy, indicator.Busy, indicator.Off}
	if len(light.colors) != len(want) {
		t.Fatalf("expected %d light changes, got %v", len(want), light.colors)
	}
	for i, c := range want {
		if light.colors[i] != c {
			t.Fatalf("light change %d: expected %v, got %v", i, c, light.colors[i])
		}
	}
}

func TestRunReclaimsBetweenLeagues(t *testing.T) {
	reclaims := 0
	source := &fakeSource{
		events: map[string][]feed.Event{"NFL": {validEvent("1", "KC", "BUF")}},
	}
	runner := New(Options{
		Source:  source,
		Leagues: []config.League{nfl, nba, nhl},
		Reclaim: func() { reclaims++ },
	})

	runner.Run(context.Background())
	if reclaims != 3 {
		t.Fatalf("expected one reclaim per league, got %d", reclaims)
	}
}
