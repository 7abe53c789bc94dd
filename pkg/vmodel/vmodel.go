// Package vmodel implements two-way binding for vModel / v-model keys.
//
// A binding key has the form
//
//	(vModel|v-model)(:arg)?(_modifier)*
//
// and its value is a vdom.Ref. The transformer installs the prop (or DOM
// property) carrying the current value and the event handler writing back
// into the Ref:
//
//	input type=checkbox   domProps.checked   change
//	input type=radio      domProps.checked   change
//	select                domProps.value     change
//	other HTML            domProps.value     input (change with _lazy)
//	component with :arg   props[arg]         update:arg
//	component with Model  props[Model.Prop]  Model.Event
//	other component       props.value        input
//
// Modifiers trim and number transform incoming string values.
package vmodel

import (
	"log/slog"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/vango-dev/vjsx/pkg/vdom"
)

const (
	defaultProp  = "value"
	defaultEvent = "input"
)

var keyPattern = regexp.MustCompile(`^(?:v-model|vModel)(?::([A-Za-z0-9-]+))?((?:_[A-Za-z0-9]+)*)$`)

// Binding is a parsed model key.
type Binding struct {
	Arg       string
	Modifiers map[string]bool
}

// ParseKey parses a model binding key. ok is false for keys that are not
// model keys.
func ParseKey(key string) (b Binding, ok bool) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return Binding{}, false
	}
	b = Binding{Arg: m[1], Modifiers: map[string]bool{}}
	for _, mod := range strings.Split(m[2], "_") {
		if mod != "" {
			b.Modifiers[mod] = true
		}
	}
	return b, true
}

// Event is the payload the host engine passes to HTML model handlers.
type Event struct {
	Value   string // target.value
	Checked bool   // target.checked
}

// Transformer is the default vdom.ModelTransformer.
type Transformer struct {
	logger *slog.Logger
}

var _ vdom.ModelTransformer = (*Transformer)(nil)

// New creates a Transformer. If logger is nil, slog.Default() is used.
func New(logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{logger: logger}
}

// Apply implements vdom.ModelTransformer.
func (t *Transformer) Apply(tag any, key string, cfg *vdom.Config, data *vdom.NodeData, htmlLike bool) {
	binding, ok := ParseKey(key)
	if !ok {
		t.logger.Debug("vmodel: not a model key", "key", key)
		return
	}

	value := cfg.Value(key)
	ref, isRef := value.(vdom.Ref)
	if !isRef {
		t.logger.Warn("vmodel: binding value is not a Ref; installing read side only", "key", key)
	}
	b := &bound{binding: binding, ref: ref, value: value}
	if data.DOMProps == nil {
		data.DOMProps = make(vdom.Props)
	}
	if data.Props == nil {
		data.Props = make(vdom.Props)
	}

	if htmlLike {
		name, _ := tag.(string)
		t.applyElement(name, cfg, data, b)
		return
	}
	t.applyComponent(tag, data, b)
}

// bound is one binding being applied.
type bound struct {
	binding Binding
	ref     vdom.Ref // nil when the value is not a Ref
	value   any
}

func (b *bound) current() any {
	if b.ref != nil {
		return b.ref.Get()
	}
	return b.value
}

func (b *bound) set(v any) {
	if b.ref != nil {
		b.ref.Set(v)
	}
}

// cast applies the trim and number modifiers to string input.
func (b *bound) cast(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if b.binding.Modifiers["trim"] {
		s = strings.TrimSpace(s)
	}
	if b.binding.Modifiers["number"] {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
	}
	return s
}

func (t *Transformer) applyElement(tag string, cfg *vdom.Config, data *vdom.NodeData, b *bound) {
	inputType, _ := cfg.Value("type").(string)

	switch {
	case tag == "input" && inputType == "checkbox":
		applyCheckbox(cfg, data, b)
	case tag == "input" && inputType == "radio":
		option := cfg.Value("value")
		data.DOMProps["checked"] = reflect.DeepEqual(b.current(), option)
		install(data, b, "change", func(*Event) { b.set(option) })
	case tag == "select":
		data.DOMProps["value"] = b.current()
		install(data, b, "change", func(e *Event) { b.set(b.cast(e.Value)) })
	default:
		event := "input"
		if b.binding.Modifiers["lazy"] {
			event = "change"
		}
		data.DOMProps["value"] = b.current()
		install(data, b, event, func(e *Event) { b.set(b.cast(e.Value)) })
	}
}

func applyCheckbox(cfg *vdom.Config, data *vdom.NodeData, b *bound) {
	option := cfg.Value("value")
	if list, ok := b.current().([]any); ok {
		data.DOMProps["checked"] = indexOf(list, option) >= 0
		install(data, b, "change", func(e *Event) {
			cur, _ := b.current().([]any)
			next := make([]any, 0, len(cur)+1)
			for _, v := range cur {
				if !reflect.DeepEqual(v, option) {
					next = append(next, v)
				}
			}
			if e.Checked {
				next = append(next, option)
			}
			b.set(next)
		})
		return
	}

	checked, _ := b.current().(bool)
	data.DOMProps["checked"] = checked
	install(data, b, "change", func(e *Event) { b.set(e.Checked) })
}

func (t *Transformer) applyComponent(tag any, data *vdom.NodeData, b *bound) {
	prop, event := defaultProp, defaultEvent
	switch {
	case b.binding.Arg != "":
		prop, event = b.binding.Arg, "update:"+b.binding.Arg
	default:
		if def, ok := tag.(*vdom.ComponentDef); ok && def.Model != nil {
			if def.Model.Prop != "" {
				prop = def.Model.Prop
			}
			if def.Model.Event != "" {
				event = def.Model.Event
			}
		}
	}

	data.Props[prop] = b.current()
	if b.ref == nil {
		return
	}
	data.AddHandler(event, func(v any) { b.set(b.cast(v)) })
}

// install adds an HTML handler unless the binding has no Ref to write to.
func install(data *vdom.NodeData, b *bound, event string, handler func(*Event)) {
	if b.ref == nil {
		return
	}
	data.AddHandler(event, handler)
}

func indexOf(list []any, v any) int {
	for i, item := range list {
		if reflect.DeepEqual(item, v) {
			return i
		}
	}
	return -1
}
