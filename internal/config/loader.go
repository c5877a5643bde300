package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TICKER_CONFIG is set
//  3. env (prefix TICKER_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TICKER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: TICKER_FETCH_INTERVAL_S, TICKER_TZ_OFFSET_HOURS, ...
	// Keys are lowered and the prefix stripped; underscores are preserved to
	// match the koanf tags on the struct.
	envProvider := env.Provider("TICKER_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "ticker_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.Leagues) == 0 {
		return errors.New("at least one league must be configured")
	}
	for _, l := range cfg.Leagues {
		if l.Name == "" {
			return errors.New("league name must not be empty")
		}
		if l.FeedURL == "" && (l.Sport == "" || l.Slug == "") {
			return errors.New("league " + l.Name + " needs either feed_url or sport+slug")
		}
	}
	if cfg.FetchIntervalS <= 0 || cfg.DisplayIntervalS <= 0 {
		return errors.New("fetch and display intervals must be positive")
	}
	if cfg.Source != "espn" && cfg.Source != "fixture" {
		return errors.New("source must be espn or fixture")
	}
	return nil
}
