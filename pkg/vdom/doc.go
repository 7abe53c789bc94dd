// Package vdom builds render-tree nodes from JSX-style element descriptions.
//
// An element description is a tag, an ordered attribute Config and its
// children. Build classifies every attribute key into exactly one bucket of
// NodeData and returns a RenderNode for the host rendering engine. Nothing
// is rendered here; the package only produces the structured description.
//
// # Core Types
//
// RenderNode is the output: Tag, Data and normalized Children. NodeData holds
// the classified buckets (Attrs, Props, DOMProps, On, NativeOn) and the
// singleton fields (Key, Ref, Class, Style, Slot, ScopedSlots). Config is the
// insertion-ordered attribute input built from Attr pairs.
//
// # Tags
//
// A lowercase-leading string such as "div" or "svg:path" is an HTML-like
// element. Anything else is composite: an uppercase string, a Component, or a
// bare render function. Bare functions that do not implement Component are
// wrapped in an anonymous ComponentDef whose Setup returns the function.
//
//	b := vdom.NewBuilder()
//	node := b.Build("button", vdom.NewConfig(
//	    vdom.A("class", "primary"),
//	    vdom.A("onClick", save),
//	    vdom.A("children", "Save"),
//	))
//
// # Classification
//
// Keys are routed by an ordered rule table (see Rules). The first matching
// rule wins. Classify exposes the routing decision for a single key without
// building a node. Model-binding keys (vModel, v-model) and directive keys
// (v-name, vName) are delegated to a ModelTransformer and a
// DirectiveTransformer supplied through builder options.
package vdom
