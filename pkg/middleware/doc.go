// Package middleware instruments node builders.
//
// # Prometheus Metrics
//
// Metrics implements vdom.Observer and counts built nodes by kind and
// classified attributes by destination. Wrap adds a build duration
// histogram:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	b := m.Wrap(vdom.NewBuilder(vdom.WithObserver(m)))
//
// # OpenTelemetry
//
// Tracing wraps any vdom.NodeBuilder and records a "vjsx.build" span with
// the tag name, attribute count, node kind and child count:
//
//	tb := middleware.Tracing(b, middleware.WithTracerName("my-app"))
//	node := tb.BuildContext(ctx, "div", cfg)
package middleware
