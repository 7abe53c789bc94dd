package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/vjsx"
	"github.com/vango-dev/vjsx/internal/errors"
	"github.com/vango-dev/vjsx/pkg/vdom"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeString(t *testing.T, src string) (*descriptor, error) {
	t.Helper()
	d := &decoder{logger: discardLogger()}
	return d.decode([]byte(src))
}

const checkboxDescriptor = `
tag: input
attrs:
  type: checkbox
  class: [a, b]
  vModel: !ref true
  onChange: handler:changed
children:
  - hello
  - tag: span
    children: inner
`

func TestDecodeKeepsAttributeOrder(t *testing.T) {
	desc, err := decodeString(t, checkboxDescriptor)
	if err != nil {
		t.Fatalf("decode() error: %v", err)
	}

	if desc.Tag != "input" {
		t.Errorf("Tag = %v, want input", desc.Tag)
	}
	if diff := cmp.Diff([]string{"type", "class", "vModel", "onChange"}, desc.Attrs.Keys()); diff != "" {
		t.Errorf("attribute order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"a", "b"}, desc.Attrs.Value("class")); diff != "" {
		t.Errorf("class mismatch (-want +got):\n%s", diff)
	}

	ref, ok := desc.Attrs.Value("vModel").(vdom.Ref)
	if !ok {
		t.Fatalf("vModel = %T, want vdom.Ref", desc.Attrs.Value("vModel"))
	}
	if ref.Get() != true {
		t.Errorf("ref value = %v, want true", ref.Get())
	}
	if _, ok := desc.Attrs.Value("onChange").(func(...any)); !ok {
		t.Errorf("onChange = %T, want stub handler", desc.Attrs.Value("onChange"))
	}

	if len(desc.Children) != 2 || desc.Children[0] != "hello" {
		t.Fatalf("Children = %v", desc.Children)
	}
	span, ok := desc.Children[1].(*descriptor)
	if !ok || span.Tag != "span" {
		t.Fatalf("Children[1] = %#v, want span descriptor", desc.Children[1])
	}
	if diff := cmp.Diff([]any{"inner"}, span.Children); diff != "" {
		t.Errorf("span children mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON(t *testing.T) {
	desc, err := decodeString(t, `{"tag": "div", "attrs": {"z": 1, "a": 2, "onClick": "handler:go"}}`)
	if err != nil {
		t.Fatalf("decode() error: %v", err)
	}
	if diff := cmp.Diff([]string{"z", "a", "onClick"}, desc.Attrs.Keys()); diff != "" {
		t.Errorf("attribute order mismatch (-want +got):\n%s", diff)
	}
	if desc.Attrs.Value("z") != 1 {
		t.Errorf("z = %#v, want 1", desc.Attrs.Value("z"))
	}
	if desc.hasKids {
		t.Error("descriptor without children should not set children")
	}
}

func TestDecodeTags(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want vdom.NodeKind
	}{
		{"fragment when absent", "children: [a]", vdom.KindFragment},
		{"fragment by name", "tag: Fragment", vdom.KindFragment},
		{"html", "tag: div", vdom.KindElement},
		{"component name", "tag: MyButton", vdom.KindComponent},
		{"registered component", "tag: component:Card", vdom.KindComponent},
		{"bare func", "tag: func:Inline", vdom.KindComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := decodeString(t, tt.src)
			if err != nil {
				t.Fatalf("decode() error: %v", err)
			}
			node := desc.build(vjsx.Default())
			if got := node.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeRegisteredComponent(t *testing.T) {
	desc, err := decodeString(t, "tag: component:Card")
	if err != nil {
		t.Fatalf("decode() error: %v", err)
	}
	def, ok := desc.Tag.(*vdom.ComponentDef)
	if !ok || def.ComponentName() != "Card" {
		t.Errorf("Tag = %#v, want Card component", desc.Tag)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
	}{
		{"bad syntax", "tag: [", "E101"},
		{"empty", "", "E102"},
		{"scalar root", "just text", "E102"},
		{"unknown field", "tag: div\nextra: 1", "E102"},
		{"attrs not mapping", "attrs: [1, 2]", "E102"},
		{"tag not scalar", "tag: {a: 1}", "E102"},
		{"nested child list", "children: [[a]]", "E102"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeString(t, tt.src)
			ve, ok := err.(*errors.VjsxError)
			if !ok {
				t.Fatalf("decode() error = %v (%T), want *VjsxError", err, err)
			}
			if ve.Code != tt.code {
				t.Errorf("Code = %s, want %s", ve.Code, tt.code)
			}
		})
	}
}

func TestReadDescriptorLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("tag: div\nattrs: nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := readDescriptor(path, discardLogger())
	ve, ok := err.(*errors.VjsxError)
	if !ok {
		t.Fatalf("readDescriptor() error = %v, want *VjsxError", err)
	}
	if ve.Code != "E102" {
		t.Errorf("Code = %s, want E102", ve.Code)
	}
	if ve.Location == nil || ve.Location.Line != 2 || ve.Location.Column != 8 {
		t.Errorf("Location = %+v, want line 2 column 8", ve.Location)
	}
}

func TestReadDescriptorFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := readDescriptor(filepath.Join(dir, "missing.yaml"), discardLogger())
	if ve, ok := err.(*errors.VjsxError); !ok || ve.Code != "E100" {
		t.Errorf("missing file error = %v, want E100", err)
	}

	_, err = readDescriptor(filepath.Join(dir, "form.txt"), discardLogger())
	if ve, ok := err.(*errors.VjsxError); !ok || ve.Code != "E103" {
		t.Errorf("unsupported extension error = %v, want E103", err)
	}
}

func TestBuildDescriptor(t *testing.T) {
	desc, err := decodeString(t, checkboxDescriptor)
	if err != nil {
		t.Fatalf("decode() error: %v", err)
	}

	node := desc.build(vjsx.Default())
	if node.Data.DOMProps["checked"] != true {
		t.Errorf("DOMProps[checked] = %v, want true", node.Data.DOMProps["checked"])
	}
	if node.Data.Attrs["type"] != "checkbox" {
		t.Errorf("Attrs[type] = %v, want checkbox", node.Data.Attrs["type"])
	}
	if len(node.Children) != 2 {
		t.Fatalf("Children = %v", node.Children)
	}
	span, ok := node.Children[1].(*vdom.RenderNode)
	if !ok || span.Tag != "span" {
		t.Errorf("Children[1] = %#v, want built span", node.Children[1])
	}
}

func TestStubHandlerLogs(t *testing.T) {
	var logged []string
	logger := slog.New(recordHandler{names: &logged})
	d := &decoder{logger: logger}

	h := d.handler("save")
	h("event")

	if diff := cmp.Diff([]string{"handler invoked"}, logged); diff != "" {
		t.Errorf("logged mismatch (-want +got):\n%s", diff)
	}
}

// recordHandler is a slog.Handler that records message texts.
type recordHandler struct {
	names *[]string
}

func (h recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordHandler) Handle(_ context.Context, r slog.Record) error {
	*h.names = append(*h.names, r.Message)
	return nil
}

func (h recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h recordHandler) WithGroup(string) slog.Handler      { return h }
