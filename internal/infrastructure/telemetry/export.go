package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const providerShutdownTimeout = 10 * time.Second

// ExportConfig is the OTLP collector connection shared by the metric and
// log pipelines.
type ExportConfig struct {
	Enabled           bool
	CollectorEndpoint string
	ServiceName       string
	ServiceVersion    string
	Insecure          bool
}

func (c ExportConfig) logFields(extra ...zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("collector_endpoint", c.CollectorEndpoint),
		zap.String("service_name", c.ServiceName),
	}, extra...)
}

// stopProvider flushes and closes one signal pipeline within
// providerShutdownTimeout.
func stopProvider(ctx context.Context, log *zap.Logger, signal string, shutdown func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, providerShutdownTimeout)
	defer cancel()

	if err := shutdown(ctx); err != nil {
		log.Error("OTLP pipeline shutdown failed", zap.String("signal", signal), zap.Error(err))
		return fmt.Errorf("shutdown %s pipeline: %w", signal, err)
	}
	log.Info("OTLP pipeline stopped", zap.String("signal", signal))
	return nil
}
