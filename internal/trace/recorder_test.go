package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestRecorder(t *testing.T) (*Recorder, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewProviderFrom(tp).Recorder(), sr
}

func attrMap(kvs []attribute.KeyValue) map[string]string {
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.Emit()
	}
	return out
}

func TestRecorder_Navigate(t *testing.T) {
	r, sr := newTestRecorder(t)

	r.Navigate(context.Background(), "form", "push", map[string]string{"og:locale": "ja_JP"})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "navigate", spans[0].Name())
	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "form", attrs["selectui.page"])
	assert.Equal(t, "push", attrs["selectui.navigation"])
	assert.Equal(t, "ja_JP", attrs["selectui.meta.og:locale"])
}

func TestRecorder_Select(t *testing.T) {
	r, sr := newTestRecorder(t)

	r.Select(context.Background(), "size", "1", "A")

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "select", spans[0].Name())
	assert.Equal(t, map[string]string{
		"selectui.field":        "size",
		"selectui.option.value": "1",
		"selectui.option.label": "A",
	}, attrMap(spans[0].Attributes()))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Navigate(context.Background(), "form", "start", nil)
		r.Select(context.Background(), "size", "1", "A")
	})
}

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	p, err := NewProvider(context.Background(), Config{})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	require.NotNil(t, p.Recorder())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_WithEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Endpoint: "localhost:4318", ServiceName: "test"})
	require.NoError(t, err)
	assert.True(t, p.Enabled())
	// nothing was recorded, so shutdown does not contact the collector
	assert.NoError(t, p.Shutdown(context.Background()))
}
