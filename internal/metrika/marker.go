package metrika

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FeatureName tags the feature-usage marker emitted on each tag mount.
const FeatureName = "metrika"

// FeatureUsageEvent is the span event name used by OTelMarker.
const FeatureUsageEvent = "mark_feature_usage"

// Marker receives a low-overhead usage signal once per tag mount.
type Marker interface {
	MarkFeatureUsage(ctx context.Context, feature string)
}

// NopMarker discards usage signals.
type NopMarker struct{}

// MarkFeatureUsage does nothing.
func (NopMarker) MarkFeatureUsage(context.Context, string) {}

// OTelMarker records usage as an event on the span found in ctx.
type OTelMarker struct{}

// MarkFeatureUsage adds a mark_feature_usage event to the current span.
func (OTelMarker) MarkFeatureUsage(ctx context.Context, feature string) {
	if ctx == nil {
		return
	}
	trace.SpanFromContext(ctx).AddEvent(FeatureUsageEvent, trace.WithAttributes(
		attribute.String("feature", feature),
	))
}

func normalizeMarker(m Marker) Marker {
	if m == nil {
		return NopMarker{}
	}
	return m
}
