// Package telemetry configures OpenTelemetry tracing for the server.
package telemetry

import (
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/dmitrijs2005/footsteps/internal/common"
)

// NewTracerProvider returns a provider tagged with the service name. When out
// is non-nil spans are exported to it as pretty-printed JSON; otherwise spans
// are recorded but not exported.
func NewTracerProvider(out io.Writer) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", common.ServiceName),
		)),
	}

	if out != nil {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(out), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	return sdktrace.NewTracerProvider(opts...), nil
}
