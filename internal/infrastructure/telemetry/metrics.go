package telemetry

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const defaultExportInterval = time.Minute

// MetricsConfig adds the push interval to the collector connection.
type MetricsConfig struct {
	ExportConfig
	ExportInterval time.Duration
}

// MeterProvider owns the OTLP metric pipeline. When export is off it hands
// out meters from the global no-op provider.
type MeterProvider struct {
	sdk *sdkmetric.MeterProvider
	log *zap.Logger
}

// NewMeterProvider starts a periodic OTLP gRPC push of every instrument and
// installs it as the global meter provider.
func NewMeterProvider(ctx context.Context, cfg MetricsConfig, log *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{log: log}
	if !cfg.Enabled {
		log.Info("Metric export disabled")
		return mp, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create OTLP metric exporter: %w", err)
	}
	res, err := serviceResource(cfg.ServiceName, cfg.ServiceVersion)
	if err != nil {
		return nil, err
	}

	interval := cmp.Or(cfg.ExportInterval, defaultExportInterval)
	mp.sdk = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp.sdk)

	log.Info("Metric export started", cfg.logFields(zap.Duration("export_interval", interval))...)
	return mp, nil
}

// Meter returns a named meter.
func (mp *MeterProvider) Meter(name string) metric.Meter {
	if !mp.IsEnabled() {
		return otel.Meter(name)
	}
	return mp.sdk.Meter(name)
}

// IsEnabled reports whether metrics leave the process.
func (mp *MeterProvider) IsEnabled() bool {
	return mp != nil && mp.sdk != nil
}

// Shutdown pushes pending points and stops the reader.
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if !mp.IsEnabled() {
		return nil
	}
	return stopProvider(ctx, mp.log, "metrics", mp.sdk.Shutdown)
}
