package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newJournalRecorder(t *testing.T, size int) (*Recorder, *Journal) {
	t.Helper()
	j := NewJournal(size)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(j))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewProviderFrom(tp).Recorder(), j
}

func TestJournal_KeepsNewestFirst(t *testing.T) {
	r, j := newJournalRecorder(t, 10)

	r.Navigate(context.Background(), "form", "start", nil)
	r.Select(context.Background(), "size", "1", "A")

	spans := j.Recent()
	require.Len(t, spans, 2)
	assert.Equal(t, "select", spans[0].Name)
	assert.Equal(t, "A", spans[0].Attributes["selectui.option.label"])
	assert.Equal(t, "navigate", spans[1].Name)
	assert.Equal(t, "form", spans[1].Attributes["selectui.page"])
	assert.NotEmpty(t, spans[0].TraceID)
	assert.GreaterOrEqual(t, spans[0].Duration.Nanoseconds(), int64(0))
}

func TestJournal_EvictsOldest(t *testing.T) {
	r, j := newJournalRecorder(t, 2)

	r.Select(context.Background(), "f", "1", "one")
	r.Select(context.Background(), "f", "2", "two")
	r.Select(context.Background(), "f", "3", "three")

	spans := j.Recent()
	require.Len(t, spans, 2)
	assert.Equal(t, "three", spans[0].Attributes["selectui.option.label"])
	assert.Equal(t, "two", spans[1].Attributes["selectui.option.label"])
	assert.Equal(t, 2, j.Len())
}

func TestJournal_OnChange(t *testing.T) {
	r, j := newJournalRecorder(t, 0)
	calls := 0
	j.SetOnChange(func() {
		calls++
		assert.Equal(t, calls, j.Len(), "callback runs without the lock held")
	})

	r.Select(context.Background(), "f", "1", "one")
	r.Navigate(context.Background(), "about", "push", nil)
	assert.Equal(t, 2, calls)
}

func TestJournal_Nil(t *testing.T) {
	var j *Journal
	assert.Nil(t, j.Recent())
	assert.Zero(t, j.Len())
}

func TestProvider_JournalRecordsWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	p, err := NewProvider(context.Background(), Config{})
	require.NoError(t, err)
	require.NotNil(t, p.Journal())

	p.Recorder().Navigate(context.Background(), "form", "start", nil)
	assert.Equal(t, 1, p.Journal().Len())
	assert.NoError(t, p.Shutdown(context.Background()))

	assert.Nil(t, NewProviderFrom(nil).Journal())
}
