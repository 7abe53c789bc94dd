package vmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/vjsx/pkg/vdom"
)

func build(tag any, attrs ...vdom.Attr) *vdom.NodeData {
	b := vdom.NewBuilder(vdom.WithModelTransformer(New(nil)))
	return b.Build(tag, vdom.NewConfig(attrs...)).Data
}

func htmlHandler(t *testing.T, data *vdom.NodeData, event string) func(*Event) {
	t.Helper()
	h, ok := data.On[event].(func(*Event))
	if !ok {
		t.Fatalf("On[%s] = %T, want func(*Event)", event, data.On[event])
	}
	return h
}

func componentHandler(t *testing.T, data *vdom.NodeData, event string) func(any) {
	t.Helper()
	h, ok := data.On[event].(func(any))
	if !ok {
		t.Fatalf("On[%s] = %T, want func(any)", event, data.On[event])
	}
	return h
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want Binding
		ok   bool
	}{
		{"vModel", Binding{Modifiers: map[string]bool{}}, true},
		{"v-model", Binding{Modifiers: map[string]bool{}}, true},
		{"vModel_trim", Binding{Modifiers: map[string]bool{"trim": true}}, true},
		{"v-model:title", Binding{Arg: "title", Modifiers: map[string]bool{}}, true},
		{"vModel:title_lazy_number", Binding{Arg: "title", Modifiers: map[string]bool{"lazy": true, "number": true}}, true},
		{"vFocus", Binding{}, false},
		{"model", Binding{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := ParseKey(tt.key)
			if ok != tt.ok {
				t.Fatalf("ParseKey(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseKey(%q) mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestTextInput(t *testing.T) {
	ref := vdom.NewRef("hello")
	data := build("input", vdom.A("vModel_trim", ref))

	if data.DOMProps["value"] != "hello" {
		t.Errorf("DOMProps[value] = %v, want hello", data.DOMProps["value"])
	}
	htmlHandler(t, data, "input")(&Event{Value: "  world  "})
	if ref.Get() != "world" {
		t.Errorf("ref = %q, want trimmed world", ref.Get())
	}
	if _, ok := data.Attrs["vModel_trim"]; ok {
		t.Error("model key must not leak into attrs")
	}
}

func TestTextareaLazyNumber(t *testing.T) {
	ref := vdom.NewRef(0.0)
	data := build("textarea", vdom.A("v-model_lazy_number", ref))

	if _, ok := data.On["input"]; ok {
		t.Error("lazy binding must not listen to input")
	}
	htmlHandler(t, data, "change")(&Event{Value: "42.5"})
	if ref.Get() != 42.5 {
		t.Errorf("ref = %v, want 42.5", ref.Get())
	}
}

func TestCheckbox(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		ref := vdom.NewRef(true)
		data := build("input", vdom.A("type", "checkbox"), vdom.A("vModel", ref))
		if data.DOMProps["checked"] != true {
			t.Errorf("DOMProps[checked] = %v, want true", data.DOMProps["checked"])
		}
		htmlHandler(t, data, "change")(&Event{Checked: false})
		if ref.Get() != false {
			t.Errorf("ref = %v, want false", ref.Get())
		}
	})

	t.Run("list", func(t *testing.T) {
		ref := vdom.NewRef([]any{"a"})
		data := build("input", vdom.A("type", "checkbox"), vdom.A("value", "b"), vdom.A("vModel", ref))
		if data.DOMProps["checked"] != false {
			t.Errorf("DOMProps[checked] = %v, want false", data.DOMProps["checked"])
		}
		h := htmlHandler(t, data, "change")

		h(&Event{Checked: true})
		if diff := cmp.Diff([]any{"a", "b"}, ref.Get()); diff != "" {
			t.Errorf("after check (-want +got):\n%s", diff)
		}
		h(&Event{Checked: false})
		if diff := cmp.Diff([]any{"a"}, ref.Get()); diff != "" {
			t.Errorf("after uncheck (-want +got):\n%s", diff)
		}
	})
}

func TestRadio(t *testing.T) {
	ref := vdom.NewRef("small")
	data := build("input", vdom.A("type", "radio"), vdom.A("value", "large"), vdom.A("vModel", ref))

	if data.DOMProps["checked"] != false {
		t.Errorf("DOMProps[checked] = %v, want false", data.DOMProps["checked"])
	}
	htmlHandler(t, data, "change")(&Event{Checked: true})
	if ref.Get() != "large" {
		t.Errorf("ref = %v, want large", ref.Get())
	}
	if data.Attrs["value"] != "large" {
		t.Errorf("value attribute should still be classified, got %v", data.Attrs["value"])
	}
}

func TestSelect(t *testing.T) {
	ref := vdom.NewRef("a")
	data := build("select", vdom.A("vModel", ref))
	if data.DOMProps["value"] != "a" {
		t.Errorf("DOMProps[value] = %v, want a", data.DOMProps["value"])
	}
	htmlHandler(t, data, "change")(&Event{Value: "b"})
	if ref.Get() != "b" {
		t.Errorf("ref = %v, want b", ref.Get())
	}
}

func TestComponentDefaultModel(t *testing.T) {
	ref := vdom.NewRef("x")
	data := build("MyInput", vdom.A("vModel", ref))

	if data.Props["value"] != "x" {
		t.Errorf("Props[value] = %v, want x", data.Props["value"])
	}
	componentHandler(t, data, "input")("y")
	if ref.Get() != "y" {
		t.Errorf("ref = %v, want y", ref.Get())
	}
}

func TestComponentModelOption(t *testing.T) {
	ref := vdom.NewRef(false)
	toggle := &vdom.ComponentDef{Name: "Toggle", Model: &vdom.ModelOption{Prop: "checked", Event: "change"}}
	data := build(toggle, vdom.A("vModel", ref))

	if data.Props["checked"] != false {
		t.Errorf("Props[checked] = %v, want false", data.Props["checked"])
	}
	if _, ok := data.Props["value"]; ok {
		t.Error("custom model must not set value")
	}
	componentHandler(t, data, "change")(true)
	if ref.Get() != true {
		t.Errorf("ref = %v, want true", ref.Get())
	}
}

func TestComponentNamedBinding(t *testing.T) {
	ref := vdom.NewRef("old")
	toggle := &vdom.ComponentDef{Name: "Dialog", Model: &vdom.ModelOption{Prop: "open"}}
	data := build(toggle, vdom.A("v-model:title", ref))

	if data.Props["title"] != "old" {
		t.Errorf("Props[title] = %v, want old", data.Props["title"])
	}
	componentHandler(t, data, "update:title")("new")
	if ref.Get() != "new" {
		t.Errorf("ref = %v, want new", ref.Get())
	}
}

func TestExistingHandlerIsKept(t *testing.T) {
	ref := vdom.NewRef("")
	data := build("input", vdom.A("onInput", "user"), vdom.A("vModel", ref))

	list, ok := data.On["input"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("On[input] = %#v, want two handlers", data.On["input"])
	}
	if list[0] != "user" {
		t.Errorf("first handler = %v, want user", list[0])
	}
}

func TestNonRefValue(t *testing.T) {
	data := build("input", vdom.A("vModel", "static"))
	if data.DOMProps["value"] != "static" {
		t.Errorf("DOMProps[value] = %v, want static", data.DOMProps["value"])
	}
	if _, ok := data.On["input"]; ok {
		t.Error("non-ref binding must not install a handler")
	}

	comp := build("MyInput", vdom.A("vModel", 3))
	if comp.Props["value"] != 3 {
		t.Errorf("Props[value] = %v, want 3", comp.Props["value"])
	}
	if len(comp.On) != 0 {
		t.Errorf("On = %v, want empty", comp.On)
	}
}

func TestApplyOnBareNodeData(t *testing.T) {
	data := &vdom.NodeData{}
	ref := vdom.NewRef("v")
	New(nil).Apply("input", "vModel", vdom.NewConfig(vdom.A("vModel", ref)), data, true)
	if data.DOMProps["value"] != "v" {
		t.Errorf("DOMProps[value] = %v, want v", data.DOMProps["value"])
	}
}
