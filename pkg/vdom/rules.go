package vdom

import (
	"reflect"
	"regexp"
	"strings"
)

// Destination identifies where a classified attribute is stored.
type Destination uint8

const (
	DestKey         Destination = iota // NodeData.Key
	DestClass                          // NodeData.Class
	DestStyle                          // NodeData.Style
	DestDOMProps                       // NodeData.DOMProps[key]
	DestOnObject                       // NodeData.On, replaced wholesale
	DestNativeOn                       // NodeData.NativeOn[event]
	DestOn                             // NodeData.On[event]
	DestSlot                           // NodeData.Slot
	DestScopedSlots                    // NodeData.ScopedSlots
	DestModel                          // ModelTransformer
	DestRef                            // NodeData.Ref
	DestDirective                      // DirectiveTransformer
	DestAttrs                          // NodeData.Attrs[key]
	DestProps                          // NodeData.Props[key]
	DestChildren                       // RenderNode.Children
)

var destinationNames = [...]string{
	DestKey:         "key",
	DestClass:       "class",
	DestStyle:       "style",
	DestDOMProps:    "domProps",
	DestOnObject:    "onObject",
	DestNativeOn:    "nativeOn",
	DestOn:          "on",
	DestSlot:        "slot",
	DestScopedSlots: "scopedSlots",
	DestModel:       "model",
	DestRef:         "ref",
	DestDirective:   "directive",
	DestAttrs:       "attrs",
	DestProps:       "props",
	DestChildren:    "children",
}

// String returns the string representation of the Destination.
func (d Destination) String() string {
	if int(d) < len(destinationNames) {
		return destinationNames[d]
	}
	return "unknown"
}

// defaultDOMProps are the keys forced onto DOM properties instead of
// attributes.
var defaultDOMProps = []string{"innerHTML", "textContent", "innerText"}

var (
	modelKeyPattern     = regexp.MustCompile(`^(?:v-model|vModel)(?::[A-Za-z0-9-]+)?(?:_[A-Za-z0-9]+)*$`)
	directiveKeyPattern = regexp.MustCompile(`^(?:v-[a-z][A-Za-z0-9-]*|v[A-Z][A-Za-z0-9]*)(?::[A-Za-z0-9-]+)?(?:_[A-Za-z0-9]+)*$`)
)

// IsEventKey reports whether key is an onX or on-x handler key.
func IsEventKey(key string) bool {
	return hasUpperAfter(key, onPrefix) ||
		(strings.HasPrefix(key, onDashPrefix) && len(key) > len(onDashPrefix))
}

// IsNativeEventKey reports whether key is a nativeOnX handler key.
func IsNativeEventKey(key string) bool {
	return hasUpperAfter(key, nativeOnPrefix)
}

// IsModelKey reports whether key is a two-way binding key such as vModel,
// v-model:title or vModel_trim.
func IsModelKey(key string) bool {
	return modelKeyPattern.MatchString(key)
}

// IsDirectiveKey reports whether key names a directive such as v-focus or
// vClickOutside_stop. Model keys are never directive keys.
func IsDirectiveKey(key string) bool {
	return !IsModelKey(key) && directiveKeyPattern.MatchString(key)
}

// buildState is the per-call scratch space of Build.
type buildState struct {
	b        *Builder
	tag      any
	cfg      *Config
	data     *NodeData
	htmlLike bool
}

// rule is one entry of the classification table.
type rule struct {
	dest  Destination
	match func(key string, htmlLike bool) bool
	apply func(s *buildState, key string, value any)
}

func exactly(names ...string) func(string, bool) bool {
	return func(key string, _ bool) bool {
		for _, n := range names {
			if key == n {
				return true
			}
		}
		return false
	}
}

// newRules returns the classification table in priority order. The final
// two entries are the attrs/props fallback and always match.
func newRules(domProps map[string]bool) []rule {
	return []rule{
		{DestKey, exactly("key"), func(s *buildState, _ string, v any) {
			s.data.Key = v
		}},
		// Static and dynamic class/style cannot be told apart, so both are
		// stored as bindings.
		{DestClass, exactly("class", "className"), func(s *buildState, _ string, v any) {
			s.data.Class = v
		}},
		{DestStyle, exactly("style"), func(s *buildState, _ string, v any) {
			s.data.Style = v
		}},
		{DestDOMProps, func(key string, _ bool) bool { return domProps[key] }, func(s *buildState, key string, v any) {
			s.data.DOMProps[key] = v
		}},
		{DestOnObject, exactly("on"), func(s *buildState, _ string, v any) {
			on, ok := s.b.toHandlers(v)
			s.data.On = on
			if !ok {
				s.data.OnObject = v
			}
		}},
		{DestNativeOn, func(key string, htmlLike bool) bool {
			return !htmlLike && IsNativeEventKey(key)
		}, func(s *buildState, key string, v any) {
			if s.data.NativeOn == nil {
				s.data.NativeOn = make(Handlers)
			}
			s.data.NativeOn[NativeEventName(key)] = v
		}},
		{DestOn, func(key string, _ bool) bool { return IsEventKey(key) }, func(s *buildState, key string, v any) {
			if s.data.On == nil {
				s.data.On = make(Handlers)
			}
			s.data.On[EventName(key)] = v
		}},
		{DestSlot, exactly("slot"), func(s *buildState, _ string, v any) {
			s.data.Slot = v
		}},
		{DestScopedSlots, exactly("scopedSlots"), func(s *buildState, _ string, v any) {
			s.data.ScopedSlots = v
		}},
		{DestModel, func(key string, _ bool) bool { return IsModelKey(key) }, func(s *buildState, key string, _ any) {
			if s.b.model == nil {
				s.b.logger.Debug("vdom: model binding without transformer", "key", key)
				return
			}
			s.b.model.Apply(s.tag, key, s.cfg, s.data, s.htmlLike)
		}},
		{DestRef, exactly("ref"), func(s *buildState, _ string, v any) {
			s.data.Ref = v
		}},
		{DestDirective, func(key string, _ bool) bool { return IsDirectiveKey(key) }, func(s *buildState, key string, _ any) {
			if s.b.directive == nil {
				s.b.logger.Debug("vdom: directive without transformer", "key", key)
				return
			}
			s.b.directive.Apply(key, s.data, s.cfg)
		}},
		{DestAttrs, func(_ string, htmlLike bool) bool { return htmlLike }, func(s *buildState, key string, v any) {
			s.data.Attrs[key] = v
		}},
		{DestProps, func(string, bool) bool { return true }, func(s *buildState, key string, v any) {
			s.data.Props[key] = v
		}},
	}
}

func domPropSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

var defaultRules = newRules(domPropSet(defaultDOMProps))

// match returns the first rule accepting key.
func match(rules []rule, key string, htmlLike bool) *rule {
	for i := range rules {
		if rules[i].match(key, htmlLike) {
			return &rules[i]
		}
	}
	// Unreachable: the props fallback matches everything.
	return &rules[len(rules)-1]
}

// Classify returns the destination of key under the default rule table.
// The reserved children key is reported as DestChildren.
func Classify(key string, htmlLike bool) Destination {
	if key == ChildrenKey {
		return DestChildren
	}
	return match(defaultRules, key, htmlLike).dest
}

// Rules returns the destinations of the classification table in the order
// they are tried.
func Rules() []Destination {
	out := make([]Destination, len(defaultRules))
	for i, r := range defaultRules {
		out[i] = r.dest
	}
	return out
}

// toHandlers copies a bulk handler map. ok is false for values that are not
// string-keyed maps; the bucket is then left empty and the caller keeps the
// raw value.
func (b *Builder) toHandlers(v any) (on Handlers, ok bool) {
	switch m := v.(type) {
	case Handlers:
		return copyHandlers(m), true
	case map[string]any:
		return copyHandlers(m), true
	case nil:
		return nil, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		b.logger.Debug("vdom: on is not a handler map", "type", rv.Type().String())
		return nil, false
	}
	out := make(Handlers, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func copyHandlers(m map[string]any) Handlers {
	out := make(Handlers, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
