// Package config defines the static configuration surface. Everything here
// is loaded once at process start and immutable afterwards; there is no
// runtime reconfiguration.
package config

import "time"

// League describes one upstream scoreboard feed and its logo namespace.
type League struct {
	// Name is the display tag shown on the panel, e.g. "NFL".
	Name string `koanf:"name"`

	// Sport and Slug form the feed path, e.g. football/nfl.
	Sport string `koanf:"sport"`
	Slug  string `koanf:"slug"`

	// FeedURL overrides the derived scoreboard URL when set.
	FeedURL string `koanf:"feed_url"`

	// LogoDir is the league-scoped namespace for team bitmaps.
	LogoDir string `koanf:"logo_dir"`
}

// Colors holds default text colors as 24-bit RGB values.
type Colors struct {
	Font        uint32 `koanf:"font"`
	LeagueLabel uint32 `koanf:"league_label"`
	LiveScore   uint32 `koanf:"live_score"`
	LiveStatus  uint32 `koanf:"live_status"`
}

// Display describes the panel geometry.
type Display struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
}

// Metrics controls the telemetry exporters and the optional /metrics listener.
type Metrics struct {
	Enabled      bool   `koanf:"enabled"`
	Port         string `koanf:"port"`
	ServiceName  string `koanf:"service_name"`
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
}

// Config contains process configuration.
type Config struct {
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// TZOffsetHours is a static hour shift applied to upstream UTC
	// timestamps. TZName is display-only.
	TZOffsetHours int    `koanf:"tz_offset_hours"`
	TZName        string `koanf:"tz_name"`

	// FetchIntervalS controls how often the feeds are refreshed;
	// DisplayIntervalS how long each game stays on screen.
	FetchIntervalS   int `koanf:"fetch_interval_s"`
	DisplayIntervalS int `koanf:"display_interval_s"`

	// NoGamesRetryS bounds how long the loop lingers on the no-games screen
	// after an empty refresh. IdleWaitMS is the per-step sleep that keeps
	// the polling loop from spinning.
	NoGamesRetryS int `koanf:"no_games_retry_s"`
	IdleWaitMS    int `koanf:"idle_wait_ms"`

	// Source selects the scoreboard source: "espn" or "fixture".
	Source string `koanf:"source"`

	// FeedBaseURL is the root of the scoreboard API.
	FeedBaseURL string `koanf:"feed_base_url"`

	// LogoRoot is the filesystem path holding the per-league logo folders.
	LogoRoot string `koanf:"logo_root"`

	Leagues []League `koanf:"leagues"`
	Colors  Colors   `koanf:"colors"`
	Display Display  `koanf:"display"`
	Metrics Metrics  `koanf:"metrics"`
}

// New returns a Config populated with defaults: the four stock leagues, a
// five minute fetch interval, and five seconds per game on screen.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		TZOffsetHours:    -5,
		TZName:           "EST",
		FetchIntervalS:   300,
		DisplayIntervalS: 5,
		NoGamesRetryS:    5,
		IdleWaitMS:       100,
		Source:           "espn",
		FeedBaseURL:      "https://site.api.espn.com/apis/site/v2",
		LogoRoot:         "/",
		Leagues: []League{
			{Name: "NFL", Sport: "football", Slug: "nfl", LogoDir: "team0_logos"},
			{Name: "MLB", Sport: "baseball", Slug: "mlb", LogoDir: "team1_logos"},
			{Name: "NHL", Sport: "hockey", Slug: "nhl", LogoDir: "team2_logos"},
			{Name: "NBA", Sport: "basketball", Slug: "nba", LogoDir: "team3_logos"},
		},
		Colors: Colors{
			Font:        0xFFFFFF,
			LeagueLabel: 0xFFFF00,
			LiveScore:   0x00FF00,
			LiveStatus:  0xFF0000,
		},
		Display: Display{Width: 128, Height: 64},
		Metrics: Metrics{Port: "9090", ServiceName: "sports-ticker"},
	}
}

// FetchInterval returns the fetch interval as a duration.
func (c *Config) FetchInterval() time.Duration {
	return time.Duration(c.FetchIntervalS) * time.Second
}

// DisplayInterval returns the display interval as a duration.
func (c *Config) DisplayInterval() time.Duration {
	return time.Duration(c.DisplayIntervalS) * time.Second
}

// NoGamesRetry returns the empty-result retry delay as a duration.
func (c *Config) NoGamesRetry() time.Duration {
	return time.Duration(c.NoGamesRetryS) * time.Second
}

// IdleWait returns the per-step idle sleep as a duration.
func (c *Config) IdleWait() time.Duration {
	return time.Duration(c.IdleWaitMS) * time.Millisecond
}
