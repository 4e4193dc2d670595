package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerProvider owns the OTLP log pipeline fed by the zap bridge.
type LoggerProvider struct {
	sdk *sdklog.LoggerProvider
	log *zap.Logger
}

// NewLoggerProvider starts a batched OTLP gRPC log export and installs it
// as the global logger provider.
func NewLoggerProvider(ctx context.Context, cfg ExportConfig, log *zap.Logger) (*LoggerProvider, error) {
	lp := &LoggerProvider{log: log}
	if !cfg.Enabled {
		log.Info("Log export disabled")
		return lp, nil
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create OTLP log exporter: %w", err)
	}
	res, err := serviceResource(cfg.ServiceName, cfg.ServiceVersion)
	if err != nil {
		return nil, err
	}

	lp.sdk = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(lp.sdk)

	log.Info("Log export started", cfg.logFields()...)
	return lp, nil
}

// IsEnabled reports whether log records leave the process.
func (lp *LoggerProvider) IsEnabled() bool {
	return lp != nil && lp.sdk != nil
}

// Shutdown exports buffered records and stops the processor.
func (lp *LoggerProvider) Shutdown(ctx context.Context) error {
	if !lp.IsEnabled() {
		return nil
	}
	return stopProvider(ctx, lp.log, "logs", lp.sdk.Shutdown)
}

// ZapCore returns a core that ships entries at or above level to the
// collector under the given instrumentation scope. It is a no-op core when
// export is off, so callers can always tee it into logger.New.
func (lp *LoggerProvider) ZapCore(scope string, level zapcore.LevelEnabler) zapcore.Core {
	if !lp.IsEnabled() {
		return zapcore.NewNopCore()
	}
	return leveledCore{
		Core:  otelzap.NewCore(scope, otelzap.WithLoggerProvider(lp.sdk)),
		level: level,
	}
}

// leveledCore drops entries below level before they reach the bridge,
// which itself accepts every level.
type leveledCore struct {
	zapcore.Core
	level zapcore.LevelEnabler
}

func (c leveledCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

func (c leveledCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.level.Enabled(entry.Level) {
		return ce
	}
	return c.Core.Check(entry, ce)
}

func (c leveledCore) With(fields []zapcore.Field) zapcore.Core {
	return leveledCore{Core: c.Core.With(fields), level: c.level}
}
