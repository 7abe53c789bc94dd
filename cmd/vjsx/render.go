package main

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/vango-dev/vjsx/pkg/vdom"
)

const funcPlaceholder = "<func>"

// nodeView is the JSON shape of a built node.
type nodeView struct {
	Tag      string    `json:"tag"`
	Kind     string    `json:"kind"`
	Data     *dataView `json:"data,omitempty"`
	Children []any     `json:"children"`
}

type dataView struct {
	Key         any             `json:"key,omitempty"`
	Ref         any             `json:"ref,omitempty"`
	Class       any             `json:"class,omitempty"`
	Style       any             `json:"style,omitempty"`
	Slot        any             `json:"slot,omitempty"`
	ScopedSlots any             `json:"scopedSlots,omitempty"`
	Attrs       map[string]any  `json:"attrs,omitempty"`
	Props       map[string]any  `json:"props,omitempty"`
	DOMProps    map[string]any  `json:"domProps,omitempty"`
	On          map[string]any  `json:"on,omitempty"`
	NativeOn    map[string]any  `json:"nativeOn,omitempty"`
	OnObject    any             `json:"onObject,omitempty"`
	Directives  []directiveView `json:"directives,omitempty"`
}

type directiveView struct {
	Name      string   `json:"name"`
	RawName   string   `json:"rawName"`
	Value     any      `json:"value,omitempty"`
	Arg       string   `json:"arg,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// writeNode writes node as JSON. indent of zero writes compact output.
func writeNode(w io.Writer, node *vdom.RenderNode, indent int) error {
	var (
		out []byte
		err error
	)
	view := viewNode(node)
	if indent > 0 {
		out, err = json.MarshalIndent(view, "", strings.Repeat(" ", indent))
	} else {
		out, err = json.Marshal(view)
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func viewNode(node *vdom.RenderNode) *nodeView {
	if node == nil {
		return nil
	}
	v := &nodeView{
		Tag:      vdom.TagName(node.Tag),
		Kind:     node.Kind().String(),
		Data:     viewData(node.Data),
		Children: make([]any, len(node.Children)),
	}
	for i, c := range node.Children {
		v.Children[i] = plain(c)
	}
	return v
}

func viewData(d *vdom.NodeData) *dataView {
	if d == nil {
		return nil
	}
	v := &dataView{
		Key:         plain(d.Key),
		Ref:         plain(d.Ref),
		Class:       plain(d.Class),
		Style:       plain(d.Style),
		Slot:        plain(d.Slot),
		ScopedSlots: plain(d.ScopedSlots),
		Attrs:       plainMap(d.Attrs),
		Props:       plainMap(d.Props),
		DOMProps:    plainMap(d.DOMProps),
		On:          plainMap(d.On),
		NativeOn:    plainMap(d.NativeOn),
		OnObject:    plain(d.OnObject),
	}
	for _, dir := range d.Directives {
		dv := directiveView{
			Name:    dir.Name,
			RawName: dir.RawName,
			Value:   plain(dir.Value),
			Arg:     dir.Arg,
		}
		for m := range dir.Modifiers {
			dv.Modifiers = append(dv.Modifiers, m)
		}
		sort.Strings(dv.Modifiers)
		v.Directives = append(v.Directives, dv)
	}
	return v
}

func plainMap[M ~map[string]any](m M) map[string]any {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plain(v)
	}
	return out
}

// plain converts v into something encoding/json can write. Functions become
// a placeholder and refs are shown by their current value.
func plain(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *vdom.RenderNode:
		return viewNode(x)
	case *vdom.ComponentDef:
		return fmt.Sprintf("<component %s>", vdom.TagName(x))
	case vdom.Ref:
		return map[string]any{"ref": plain(x.Get())}
	case string, bool, int, int64, float64:
		return x
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return funcPlaceholder
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = plain(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Sprint(v)
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = plain(iter.Value().Interface())
		}
		return out
	default:
		return v
	}
}
