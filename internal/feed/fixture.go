package feed

import (
	"context"
	_ "embed"
	"encoding/json"

	"sports-ticker/internal/config"
)

//go:embed fixture.json
var fixtureScoreboard []byte

// Fixture serves a canned scoreboard for every league, useful for bench
// testing the full display path without network or upstream credentials.
type Fixture struct{}

// NewFixture creates a fixture scoreboard source.
func NewFixture() *Fixture {
	return &Fixture{}
}

// Scoreboard returns the embedded events regardless of league.
func (f *Fixture) Scoreboard(ctx context.Context, league config.League) ([]Event, error) {
	_ = ctx
	_ = league

	var payload scoreboardResponse
	if err := json.Unmarshal(fixtureScoreboard, &payload); err != nil {
		return nil, err
	}
	return payload.Events, nil
}
