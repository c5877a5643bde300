package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP handler,
// and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "sports-ticker"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	leagueFetches    metric.Int64Counter
	leagueErrors     metric.Int64Counter
	leagueLatencyMs  metric.Float64Histogram
	eventsAccepted   metric.Int64Counter
	eventsSkipped    metric.Int64Counter
	refreshCycles    metric.Int64Counter
	refreshEmpty     metric.Int64Counter
	refreshLatencyMs metric.Float64Histogram
	refreshGameCount metric.Int64Histogram
	rotations        metric.Int64Counter
	restarts         metric.Int64Counter
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("sports-ticker")
	ctx := context.Background()

	leagueFetches, err := meter.Int64Counter("league_fetches_total")
	if err != nil {
		return nil, err
	}
	leagueErrors, err := meter.Int64Counter("league_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	leagueLatency, err := meter.Float64Histogram("league_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	eventsAccepted, err := meter.Int64Counter("events_accepted_total")
	if err != nil {
		return nil, err
	}
	eventsSkipped, err := meter.Int64Counter("events_skipped_total")
	if err != nil {
		return nil, err
	}
	refreshCycles, err := meter.Int64Counter("refresh_cycles_total")
	if err != nil {
		return nil, err
	}
	refreshEmpty, err := meter.Int64Counter("refresh_empty_total")
	if err != nil {
		return nil, err
	}
	refreshLatency, err := meter.Float64Histogram("refresh_duration_ms")
	if err != nil {
		return nil, err
	}
	refreshGameCount, err := meter.Int64Histogram("refresh_game_count")
	if err != nil {
		return nil, err
	}
	rotations, err := meter.Int64Counter("rotations_total")
	if err != nil {
		return nil, err
	}
	restarts, err := meter.Int64Counter("restarts_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		leagueFetches:    leagueFetches,
		leagueErrors:     leagueErrors,
		leagueLatencyMs:  leagueLatency,
		eventsAccepted:   eventsAccepted,
		eventsSkipped:    eventsSkipped,
		refreshCycles:    refreshCycles,
		refreshEmpty:     refreshEmpty,
		refreshLatencyMs: refreshLatency,
		refreshGameCount: refreshGameCount,
		rotations:        rotations,
		restarts:         restarts,
	}, nil
}

func (o *otelInstruments) recordLeagueFetch(league string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrLeague, league)}
	o.recordCounter(o.leagueFetches, 1, attrs...)
	o.recordHistogramF(o.leagueLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.leagueErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordEvent(league string, accepted bool) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrLeague, league)}
	if accepted {
		o.recordCounter(o.eventsAccepted, 1, attrs...)
	} else {
		o.recordCounter(o.eventsSkipped, 1, attrs...)
	}
}

func (o *otelInstruments) recordRefresh(duration time.Duration, total int) {
	if o == nil {
		return
	}
	o.recordCounter(o.refreshCycles, 1)
	o.recordHistogramF(o.refreshLatencyMs, float64(duration.Milliseconds()))
	o.refreshGameCount.Record(o.ctx, int64(total))
	if total == 0 {
		o.recordCounter(o.refreshEmpty, 1)
	}
}

func (o *otelInstruments) recordRotation(league string) {
	if o == nil {
		return
	}
	o.recordCounter(o.rotations, 1, attribute.String(AttrLeague, league))
}

func (o *otelInstruments) recordRestart(class string) {
	if o == nil {
		return
	}
	o.recordCounter(o.restarts, 1, attribute.String(AttrFaultClass, class))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogramF(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
