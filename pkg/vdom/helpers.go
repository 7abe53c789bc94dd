package vdom

import (
	"fmt"
	"reflect"
)

// normalizeChildren turns a children value into a sequence. Slices are kept
// in order, a single child is wrapped, and nil becomes []any{nil}.
func normalizeChildren(children any) []any {
	switch v := children.(type) {
	case nil:
		return []any{nil}
	case []any:
		if v == nil {
			return []any{}
		}
		return v
	case string, []byte:
		return []any{v}
	}

	rv := reflect.ValueOf(children)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{children}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// isBareFunc reports whether tag is a function that is not a registered
// Component.
func isBareFunc(tag any) bool {
	if tag == nil {
		return false
	}
	if _, ok := tag.(Component); ok {
		return false
	}
	return reflect.ValueOf(tag).Kind() == reflect.Func
}

// inlineComponent wraps a bare render function into an anonymous component
// whose Setup returns the function itself.
func inlineComponent(render any) *ComponentDef {
	return &ComponentDef{Setup: func() any { return render }}
}

// TagName returns a printable name for tag: the markup name, the component
// name, "Fragment", or the Go type for anything else.
func TagName(tag any) string {
	switch t := tag.(type) {
	case nil:
		return ""
	case string:
		return t
	case fragmentMarker:
		return "Fragment"
	case Component:
		if name := t.ComponentName(); name != "" {
			return name
		}
		return "anonymous"
	default:
		return fmt.Sprintf("%T", tag)
	}
}
