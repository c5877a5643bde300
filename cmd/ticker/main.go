package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"sports-ticker/internal/config"
	"sports-ticker/internal/display"
	"sports-ticker/internal/domain/games"
	"sports-ticker/internal/feed"
	"sports-ticker/internal/indicator"
	"sports-ticker/internal/logging"
	"sports-ticker/internal/metrics"
	"sports-ticker/internal/pipeline"
	"sports-ticker/internal/recovery"
	"sports-ticker/internal/scheduler"
	"sports-ticker/internal/ticks"
)

const appVersion = "dev"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "sports-ticker",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, promHandler, metricsShutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logger.Error("metrics setup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsShutdown(shutdownCtx)
	}()
	if promHandler != nil {
		go serveMetrics(cfg.Metrics.Port, promHandler, logger)
	}

	logger.Info("sports ticker starting",
		"display", cfg.Display,
		logging.FieldCount, len(cfg.Leagues),
		"fetch_interval_s", cfg.FetchIntervalS,
		"display_interval_s", cfg.DisplayIntervalS,
	)

	namespaces := make(map[string]string, len(cfg.Leagues))
	for _, l := range cfg.Leagues {
		namespaces[l.Name] = l.LogoDir
	}

	logoFS := afero.NewBasePathFs(afero.NewOsFs(), cfg.LogoRoot)
	layout := display.NewLayout(display.NewLogoStore(logoFS), namespaces, cfg.Colors, cfg.Display)
	sink := display.NewConsoleSink(logger)
	light := indicator.NewLogLight(logger)

	var source pipeline.Source
	if cfg.Source == "fixture" {
		source = feed.NewFixture()
	} else {
		source = feed.NewClient(feed.ClientConfig{BaseURL: cfg.FeedBaseURL})
	}

	runner := pipeline.New(pipeline.Options{
		Source:        source,
		Leagues:       cfg.Leagues,
		TZOffsetHours: cfg.TZOffsetHours,
		Light:         light,
		Logger:        logger,
		Metrics:       recorder,
	})

	sink.Show(layout.StartupScreen())
	time.Sleep(2 * time.Second)

	initial := runner.Run(ctx)
	if len(initial) == 0 {
		logger.Warn("no games found on initial fetch")
		sink.Show(layout.NoGamesScreen())
		time.Sleep(10 * time.Second)
		initial = runner.Run(ctx)
	}

	engine := scheduler.New(scheduler.Options{
		FetchInterval:   cfg.FetchInterval(),
		DisplayInterval: cfg.DisplayInterval(),
		NoGamesRetry:    cfg.NoGamesRetry(),
		IdleWait:        cfg.IdleWait(),
		Refresh: func(ctx context.Context) (games.GameList, error) {
			return runner.Run(ctx), nil
		},
		Render:  func(g games.Game) { sink.Show(layout.GameScreen(g)) },
		NoGames: func() { sink.Show(layout.NoGamesScreen()) },
		Logger:  logger,
		Metrics: recorder,
	})

	boundary := recovery.New(recovery.Options{
		Restarter: recovery.NewExecRestarter(logger),
		Logger:    logger,
		Metrics:   recorder,
	})

	logger.Info("starting ticker loop", logging.FieldCount, len(initial))

	st := scheduler.NewState(ticks.Now(), initial)
	for ctx.Err() == nil {
		boundary.Run(func() error {
			var stepErr error
			st, stepErr = engine.Step(ctx, st)
			return stepErr
		})
	}

	logger.Info("sports ticker stopped")
}

func serveMetrics(port string, handler http.Handler, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logger.Error("metrics listener failed", "error", err)
	}
}
