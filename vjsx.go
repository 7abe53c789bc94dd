// Package vjsx provides the public API for building render nodes from
// JSX-style element descriptions.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/vjsx"
//
// Usage:
//
//	name := vjsx.NewRef("")
//	node := vjsx.H("input", vjsx.Attrs(
//	    vjsx.A("class", "field"),
//	    vjsx.A("vModel_trim", name),
//	    vjsx.A("onKeyUp", onKey),
//	))
//
// H uses a builder wired with the default model-binding and directive
// transformers. Use New to customise logging, DOM props or observers.
package vjsx

import (
	"log/slog"

	"github.com/vango-dev/vjsx/pkg/directive"
	"github.com/vango-dev/vjsx/pkg/vdom"
	"github.com/vango-dev/vjsx/pkg/vmodel"
)

// =============================================================================
// Types
// =============================================================================

// RenderNode is the built node handed to the host rendering engine.
type RenderNode = vdom.RenderNode

// NodeData holds the classified attributes of a RenderNode.
type NodeData = vdom.NodeData

// Config is the insertion-ordered attribute map.
type Config = vdom.Config

// Attr is a single attribute.
type Attr = vdom.Attr

// ComponentDef is a registered component definition.
type ComponentDef = vdom.ComponentDef

// ModelOption overrides the prop/event pair of a component's model binding.
type ModelOption = vdom.ModelOption

// Ref is a two-way binding cell.
type Ref = vdom.Ref

// Builder builds render nodes.
type Builder = vdom.Builder

// Event is the payload of HTML model-binding handlers.
type Event = vmodel.Event

// Fragment is the tag of fragment nodes.
var Fragment = vdom.FragmentTag

// =============================================================================
// Construction
// =============================================================================

var defaultBuilder = New()

// New creates a Builder wired with the default model-binding and directive
// transformers. opts are applied after the defaults and may replace them.
func New(opts ...vdom.Option) *Builder {
	return NewWithLogger(nil, opts...)
}

// NewWithLogger is New with an explicit logger for the builder and the
// model-binding transformer. If logger is nil, slog.Default() is used.
func NewWithLogger(logger *slog.Logger, opts ...vdom.Option) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	base := []vdom.Option{
		vdom.WithLogger(logger),
		vdom.WithModelTransformer(vmodel.New(logger)),
		vdom.WithDirectiveTransformer(directive.New()),
	}
	return vdom.NewBuilder(append(base, opts...)...)
}

// Default returns the shared default Builder.
func Default() *Builder {
	return defaultBuilder
}

// H builds a node with the default Builder. A nil cfg is treated as empty.
func H(tag any, cfg *Config) *RenderNode {
	return defaultBuilder.Build(tag, cfg)
}

// Attrs creates a Config from attrs in order.
func Attrs(attrs ...Attr) *Config {
	return vdom.NewConfig(attrs...)
}

// A creates an Attr.
func A(key string, value any) Attr {
	return vdom.A(key, value)
}

// Children is shorthand for the reserved children attribute. With no
// arguments it sets an empty, non-nil list.
func Children(children ...any) Attr {
	switch len(children) {
	case 0:
		return vdom.A(vdom.ChildrenKey, []any{})
	case 1:
		return vdom.A(vdom.ChildrenKey, children[0])
	}
	return vdom.A(vdom.ChildrenKey, children)
}

// NewRef creates a Ref holding v.
func NewRef(v any) Ref {
	return vdom.NewRef(v)
}

// Component registers render as a named component.
func Component(name string, render any) *ComponentDef {
	return vdom.Func(name, render)
}
