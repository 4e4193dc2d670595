package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const defaultServiceVersion = "1.0.0"

// serviceResource describes this process to the collector. Traces, metrics
// and logs share it so backends can join the three signals.
func serviceResource(name, version string) (*resource.Resource, error) {
	if version == "" {
		version = defaultServiceVersion
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}
