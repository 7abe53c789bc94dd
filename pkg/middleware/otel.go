package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vjsx/pkg/vdom"
)

// Default tracer name.
const defaultTracerName = "vjsx"

// Span name used for every build.
const buildSpanName = "vjsx.build"

// OTelConfig configures the tracing wrapper.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "vjsx").
	TracerName string

	// TracerProvider supplies the tracer. If nil, the global provider is used.
	TracerProvider trace.TracerProvider

	// AttributeExtractor extracts custom attributes from the tag and config.
	AttributeExtractor func(tag any, cfg *vdom.Config) []attribute.KeyValue
}

// OTelOption configures the tracing wrapper.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(tag any, cfg *vdom.Config) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// TracedBuilder records a span around every build of the wrapped builder.
type TracedBuilder struct {
	next      vdom.NodeBuilder
	tracer    trace.Tracer
	extractor func(tag any, cfg *vdom.Config) []attribute.KeyValue
}

var _ vdom.NodeBuilder = (*TracedBuilder)(nil)

// Tracing wraps next so that every build is traced.
//
// Example:
//
//	b := middleware.Tracing(vjsx.Default(), middleware.WithTracerName("my-app"))
//	node := b.BuildContext(ctx, "div", cfg)
func Tracing(next vdom.NodeBuilder, opts ...OTelOption) *TracedBuilder {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	var tracer trace.Tracer
	if config.TracerProvider != nil {
		tracer = config.TracerProvider.Tracer(config.TracerName)
	} else {
		tracer = otel.Tracer(config.TracerName)
	}

	return &TracedBuilder{
		next:      next,
		tracer:    tracer,
		extractor: config.AttributeExtractor,
	}
}

// Build implements vdom.NodeBuilder using context.Background().
func (t *TracedBuilder) Build(tag any, cfg *vdom.Config) *vdom.RenderNode {
	return t.BuildContext(context.Background(), tag, cfg)
}

// BuildContext builds the node inside a span that is a child of any span
// in ctx.
func (t *TracedBuilder) BuildContext(ctx context.Context, tag any, cfg *vdom.Config) *vdom.RenderNode {
	attrs := []attribute.KeyValue{
		attribute.String("vjsx.tag", vdom.TagName(tag)),
		attribute.Int("vjsx.attr_count", cfg.Len()),
	}
	if t.extractor != nil {
		attrs = append(attrs, t.extractor(tag, cfg)...)
	}

	_, span := t.tracer.Start(
		ctx,
		buildSpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
		trace.WithTimestamp(time.Now()),
	)
	defer span.End()

	node := t.next.Build(tag, cfg)

	span.SetAttributes(
		attribute.String("vjsx.kind", node.Kind().String()),
		attribute.Int("vjsx.children", len(node.Children)),
		attribute.Int("vjsx.directives", len(node.Data.Directives)),
	)
	return node
}
