package trace

import (
	"context"
	"sync"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// DefaultJournalSize is the number of spans a provider's journal keeps.
const DefaultJournalSize = 50

// Span is a finished span as kept by the Journal.
type Span struct {
	TraceID    string
	SpanID     string
	Name       string
	StartTime  time.Time
	Duration   time.Duration
	Attributes map[string]string
}

// Journal is a span processor keeping the most recent finished spans in
// memory, for display inside the application.
type Journal struct {
	mu       sync.RWMutex
	spans    []Span // oldest first
	max      int
	onChange func()
}

var _ sdktrace.SpanProcessor = (*Journal)(nil)

// NewJournal creates a journal holding up to size spans.
func NewJournal(size int) *Journal {
	if size <= 0 {
		size = DefaultJournalSize
	}
	return &Journal{max: size, spans: make([]Span, 0, size)}
}

// OnStart implements sdktrace.SpanProcessor.
func (j *Journal) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd implements sdktrace.SpanProcessor. The oldest span is evicted once
// the journal is full.
func (j *Journal) OnEnd(s sdktrace.ReadOnlySpan) {
	span := Span{
		TraceID:    s.SpanContext().TraceID().String(),
		SpanID:     s.SpanContext().SpanID().String(),
		Name:       s.Name(),
		StartTime:  s.StartTime(),
		Duration:   s.EndTime().Sub(s.StartTime()),
		Attributes: make(map[string]string, len(s.Attributes())),
	}
	for _, kv := range s.Attributes() {
		span.Attributes[string(kv.Key)] = kv.Value.Emit()
	}

	j.mu.Lock()
	if len(j.spans) == j.max {
		copy(j.spans, j.spans[1:])
		j.spans = j.spans[:j.max-1]
	}
	j.spans = append(j.spans, span)
	fn := j.onChange
	j.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Shutdown implements sdktrace.SpanProcessor.
func (j *Journal) Shutdown(context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (j *Journal) ForceFlush(context.Context) error { return nil }

// Recent returns the kept spans, newest first. A nil Journal has none.
func (j *Journal) Recent() []Span {
	if j == nil {
		return nil
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Span, len(j.spans))
	for i, s := range j.spans {
		out[len(j.spans)-1-i] = s
	}
	return out
}

// Len returns the number of kept spans.
func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.spans)
}

// SetOnChange sets a callback run after each recorded span, outside the lock.
// nil clears it.
func (j *Journal) SetOnChange(fn func()) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.onChange = fn
}
