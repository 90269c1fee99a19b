package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Attribute keys attached to UI spans.
const (
	AttrPage      = attribute.Key("selectui.page")
	AttrMetaKey   = "selectui.meta."
	AttrField     = attribute.Key("selectui.field")
	AttrValue     = attribute.Key("selectui.option.value")
	AttrLabel     = attribute.Key("selectui.option.label")
	AttrDirection = attribute.Key("selectui.navigation")
)

// Recorder emits one span per user-visible interaction. A nil Recorder
// records nothing.
type Recorder struct {
	tracer oteltrace.Tracer
}

// Navigate records a page change and the metadata emitted with it.
// direction is "push", "back" or "start".
func (r *Recorder) Navigate(ctx context.Context, page, direction string, meta map[string]string) {
	if r == nil {
		return
	}
	attrs := make([]attribute.KeyValue, 0, len(meta)+2)
	attrs = append(attrs, AttrPage.String(page), AttrDirection.String(direction))
	for k, v := range meta {
		attrs = append(attrs, attribute.String(AttrMetaKey+k, v))
	}
	_, span := r.tracer.Start(ctx, "navigate", oteltrace.WithAttributes(attrs...))
	span.End()
}

// Select records an option pick on a named field.
func (r *Recorder) Select(ctx context.Context, field, value, label string) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, "select", oteltrace.WithAttributes(
		AttrField.String(field),
		AttrValue.String(value),
		AttrLabel.String(label),
	))
	span.End()
}
