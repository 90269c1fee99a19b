// Package trace records UI interactions as OpenTelemetry spans.
package trace

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "selectui"

// Config selects the span destination.
type Config struct {
	// Endpoint is host:port or a full URL. Empty falls back to
	// OTEL_EXPORTER_OTLP_ENDPOINT; when both are empty spans stay in process.
	Endpoint    string
	ServiceName string
}

// Provider owns the tracer provider for the process.
type Provider struct {
	tp       oteltrace.TracerProvider
	sdk      *sdktrace.TracerProvider // nil when wrapping a caller's provider
	journal  *Journal
	exported bool
}

// NewProvider creates a provider that keeps recent spans in a Journal and,
// when an endpoint is configured, also exports them over OTLP/HTTP.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	name := cfg.ServiceName
	if name == "" {
		name = os.Getenv("OTEL_SERVICE_NAME")
	}
	if name == "" {
		name = DefaultServiceName
	}

	journal := NewJournal(DefaultJournalSize)
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(journal),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", name))),
	}
	if endpoint != "" {
		var opt otlptracehttp.Option
		if strings.Contains(endpoint, "://") {
			opt = otlptracehttp.WithEndpointURL(endpoint)
		} else {
			opt = otlptracehttp.WithEndpoint(endpoint)
		}
		exporter, err := otlptracehttp.New(ctx, opt, otlptracehttp.WithInsecure())
		if err != nil {
			return nil, fmt.Errorf("create otlp exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	sdk := sdktrace.NewTracerProvider(opts...)
	return &Provider{tp: sdk, sdk: sdk, journal: journal, exported: endpoint != ""}, nil
}

// NewProviderFrom wraps an existing tracer provider. Shutdown is a no-op for
// it; the caller keeps ownership. It has no journal.
func NewProviderFrom(tp oteltrace.TracerProvider) *Provider {
	return &Provider{tp: tp}
}

// Enabled reports whether spans leave the process.
func (p *Provider) Enabled() bool {
	return p != nil && p.exported
}

// Journal returns the in-process span journal, nil if there is none.
func (p *Provider) Journal() *Journal {
	if p == nil {
		return nil
	}
	return p.journal
}

// Recorder returns a span recorder bound to this provider.
func (p *Provider) Recorder() *Recorder {
	if p == nil {
		return nil
	}
	return &Recorder{tracer: p.tp.Tracer("selectui/ui")}
}

// Shutdown flushes pending spans and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
