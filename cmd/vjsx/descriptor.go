package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vjsx/internal/errors"
	"github.com/vango-dev/vjsx/pkg/vdom"
)

// Prefixes recognised in descriptor strings.
const (
	handlerPrefix   = "handler:"
	funcTagPrefix   = "func:"
	componentPrefix = "component:"
	refTag          = "!ref"
)

// descriptor is one element read from a descriptor file.
//
//	tag: input
//	attrs:
//	  class: field
//	  vModel_trim: !ref ada
//	  onKeyUp: handler:keyup
//	children:
//	  - text
//	  - tag: span
type descriptor struct {
	Tag      any
	Attrs    *vdom.Config
	Children []any // scalars or *descriptor
	hasKids  bool
}

// decoder turns yaml nodes into descriptors. JSON input goes through the
// same path since yaml.v3 accepts it and keeps mapping order.
type decoder struct {
	path   string
	logger *slog.Logger
}

// readDescriptor loads and decodes the descriptor at path.
func readDescriptor(path string, logger *slog.Logger) (*descriptor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, errors.New("E103").
			WithDetail("Unsupported descriptor extension " + filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No descriptor file at " + path)
		}
		return nil, errors.New("E100").Wrap(err)
	}

	d := &decoder{path: path, logger: logger}
	return d.decode(data)
}

func (d *decoder) decode(data []byte) (*descriptor, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.New("E101").
			Wrap(err).
			WithSuggestion("Check that " + filepath.Base(d.path) + " is valid YAML or JSON")
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("E102").WithDetail("The descriptor file is empty")
	}
	return d.element(root.Content[0])
}

func (d *decoder) shapeError(n *yaml.Node, format string, args ...any) error {
	err := errors.New("E102").WithDetail(fmt.Sprintf(format, args...))
	if d.path != "" {
		err = err.WithLocation(d.path, n.Line, n.Column)
	}
	return err
}

func (d *decoder) element(n *yaml.Node) (*descriptor, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.MappingNode {
		return nil, d.shapeError(n, "expected a mapping for an element, got %s", kindName(n))
	}

	desc := &descriptor{Attrs: vdom.NewConfig()}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], resolveAlias(n.Content[i+1])
		switch key.Value {
		case "tag":
			tag, err := d.tag(val)
			if err != nil {
				return nil, err
			}
			desc.Tag = tag
		case "attrs":
			if err := d.attrs(val, desc.Attrs); err != nil {
				return nil, err
			}
		case "children":
			kids, err := d.children(val)
			if err != nil {
				return nil, err
			}
			desc.Children = kids
			desc.hasKids = true
		default:
			return nil, d.shapeError(key, "unknown element field %q", key.Value)
		}
	}
	return desc, nil
}

func (d *decoder) tag(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, d.shapeError(n, "tag must be a string, got %s", kindName(n))
	}
	name := n.Value
	switch {
	case n.Tag == "!!null", name == "":
		return nil, nil
	case name == "Fragment":
		return vdom.FragmentTag, nil
	case strings.HasPrefix(name, funcTagPrefix):
		return d.renderFunc(strings.TrimPrefix(name, funcTagPrefix)), nil
	case strings.HasPrefix(name, componentPrefix):
		cname := strings.TrimPrefix(name, componentPrefix)
		return vdom.Func(cname, d.renderFunc(cname)), nil
	default:
		return name, nil
	}
}

func (d *decoder) attrs(n *yaml.Node, cfg *vdom.Config) error {
	if n.Kind != yaml.MappingNode {
		return d.shapeError(n, "attrs must be a mapping, got %s", kindName(n))
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key.Kind != yaml.ScalarNode {
			return d.shapeError(key, "attribute names must be strings")
		}
		v, err := d.value(n.Content[i+1])
		if err != nil {
			return err
		}
		cfg.Set(key.Value, v)
	}
	return nil
}

func (d *decoder) children(n *yaml.Node) ([]any, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			kid, err := d.child(resolveAlias(c))
			if err != nil {
				return nil, err
			}
			out = append(out, kid)
		}
		return out, nil
	default:
		kid, err := d.child(n)
		if err != nil {
			return nil, err
		}
		return []any{kid}, nil
	}
}

func (d *decoder) child(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return d.element(n)
	case yaml.ScalarNode:
		return d.scalar(n)
	default:
		return nil, d.shapeError(n, "children must be scalars or elements, got %s", kindName(n))
	}
}

// value decodes an attribute value. Mappings become map[string]any so that
// on, style and scopedSlots objects keep their handlers.
func (d *decoder) value(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	if n.Tag == refTag {
		inner := *n
		inner.Tag = ""
		v, err := d.value(&inner)
		if err != nil {
			return nil, err
		}
		return vdom.NewRef(v), nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return d.scalar(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.value(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := d.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil
	default:
		return nil, d.shapeError(n, "unsupported value of kind %s", kindName(n))
	}
}

func (d *decoder) scalar(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, d.shapeError(n, "%v", err)
	}
	if s, ok := v.(string); ok && strings.HasPrefix(s, handlerPrefix) {
		return d.handler(strings.TrimPrefix(s, handlerPrefix)), nil
	}
	return v, nil
}

// handler returns a stub event handler that logs its invocation.
func (d *decoder) handler(name string) func(...any) {
	logger := d.logger
	return func(args ...any) {
		logger.Info("handler invoked", "name", name, "args", len(args))
	}
}

func (d *decoder) renderFunc(name string) func() any {
	logger := d.logger
	return func() any {
		logger.Debug("render", "component", name)
		return nil
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// build builds desc and its element children bottom-up with b.
func (desc *descriptor) build(b vdom.NodeBuilder) *vdom.RenderNode {
	cfg := vdom.NewConfig()
	for _, key := range desc.Attrs.Keys() {
		cfg.Set(key, desc.Attrs.Value(key))
	}
	if desc.hasKids {
		kids := make([]any, len(desc.Children))
		for i, c := range desc.Children {
			if sub, ok := c.(*descriptor); ok {
				kids[i] = sub.build(b)
				continue
			}
			kids[i] = c
		}
		cfg.Set(vdom.ChildrenKey, kids)
	}
	return b.Build(desc.Tag, cfg)
}
