package vdom

import "log/slog"

// ModelTransformer installs the prop and event pair of a two-way binding
// key (vModel, v-model:title, ...) into data.
type ModelTransformer interface {
	Apply(tag any, key string, cfg *Config, data *NodeData, htmlLike bool)
}

// ModelTransformerFunc adapts a function to ModelTransformer.
type ModelTransformerFunc func(tag any, key string, cfg *Config, data *NodeData, htmlLike bool)

// Apply implements ModelTransformer.
func (f ModelTransformerFunc) Apply(tag any, key string, cfg *Config, data *NodeData, htmlLike bool) {
	f(tag, key, cfg, data, htmlLike)
}

// DirectiveTransformer appends the Directive described by key to
// data.Directives.
type DirectiveTransformer interface {
	Apply(key string, data *NodeData, cfg *Config)
}

// DirectiveTransformerFunc adapts a function to DirectiveTransformer.
type DirectiveTransformerFunc func(key string, data *NodeData, cfg *Config)

// Apply implements DirectiveTransformer.
func (f DirectiveTransformerFunc) Apply(key string, data *NodeData, cfg *Config) {
	f(key, data, cfg)
}

// Observer is notified of every classified attribute and every built node.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveAttr(key string, dest Destination)
	ObserveNode(node *RenderNode)
}

// NodeBuilder builds a RenderNode from a tag and its attributes.
type NodeBuilder interface {
	Build(tag any, cfg *Config) *RenderNode
}

// Builder is the default NodeBuilder. It holds only immutable configuration
// and is safe for concurrent use.
type Builder struct {
	model     ModelTransformer
	directive DirectiveTransformer
	observer  Observer
	logger    *slog.Logger
	rules     []rule
}

// Option configures a Builder.
type Option func(*Builder)

// WithModelTransformer sets the transformer for two-way binding keys.
func WithModelTransformer(t ModelTransformer) Option {
	return func(b *Builder) {
		b.model = t
	}
}

// WithDirectiveTransformer sets the transformer for directive keys.
func WithDirectiveTransformer(t DirectiveTransformer) Option {
	return func(b *Builder) {
		b.directive = t
	}
}

// WithDOMProps adds keys that are forced onto DOM properties, on top of
// innerHTML, textContent and innerText.
func WithDOMProps(names ...string) Option {
	return func(b *Builder) {
		set := domPropSet(defaultDOMProps)
		for _, n := range names {
			if n != "" {
				set[n] = true
			}
		}
		b.rules = newRules(set)
	}
}

// WithObserver sets an Observer.
func WithObserver(o Observer) Option {
	return func(b *Builder) {
		b.observer = o
	}
}

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{rules: defaultRules}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Classify returns the destination of key under this builder's rule table.
func (b *Builder) Classify(key string, htmlLike bool) Destination {
	if key == ChildrenKey {
		return DestChildren
	}
	return match(b.rules, key, htmlLike).dest
}

// Build classifies cfg and returns the node for tag. A nil tag with
// children yields a fragment. A nil cfg is treated as empty.
func (b *Builder) Build(tag any, cfg *Config) *RenderNode {
	if cfg == nil {
		cfg = NewConfig()
	}
	children, hasChildren := cfg.Children()

	if tag == nil && hasChildren {
		node := &RenderNode{
			Tag:      FragmentTag,
			Data:     NewNodeData(),
			Children: normalizeChildren(children),
		}
		b.observeNode(node)
		return node
	}

	s := &buildState{
		b:        b,
		tag:      tag,
		cfg:      cfg,
		data:     NewNodeData(),
		htmlLike: IsHTMLTag(tag),
	}
	for _, key := range cfg.keys {
		if key == ChildrenKey {
			continue
		}
		r := match(b.rules, key, s.htmlLike)
		r.apply(s, key, cfg.values[key])
		if b.observer != nil {
			b.observer.ObserveAttr(key, r.dest)
		}
	}

	if isBareFunc(tag) {
		b.logger.Debug("vdom: wrapping render function as inline component")
		tag = inlineComponent(tag)
	}

	kids := normalizeChildren(children)
	if hasChildren && len(kids) > 0 && IsVoidElement(tag) {
		b.logger.Debug("vdom: void element given children", "tag", tag, "children", len(kids))
	}

	node := &RenderNode{
		Tag:      tag,
		Data:     s.data,
		Children: kids,
	}
	b.observeNode(node)
	return node
}

func (b *Builder) observeNode(node *RenderNode) {
	if b.observer != nil {
		b.observer.ObserveNode(node)
	}
}
