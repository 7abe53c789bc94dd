package vdom

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement   NodeKind = iota // <div>, <button>, etc.
	KindFragment                  // Grouping without wrapper
	KindComponent                 // Composite tag
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// fragmentMarker is the type of FragmentTag.
type fragmentMarker struct{}

func (fragmentMarker) String() string { return "Fragment" }

// FragmentTag is the tag of every fragment node.
var FragmentTag any = fragmentMarker{}

// RenderNode is the description of one element instance handed to the host
// rendering engine.
type RenderNode struct {
	Tag      any       // string, Component, or FragmentTag
	Data     *NodeData // Classified attributes
	Children []any     // Never nil; absent children are []any{nil}
}

// Kind reports whether the node is a fragment, an HTML-like element or a
// component.
func (n *RenderNode) Kind() NodeKind {
	if n == nil {
		return KindFragment
	}
	if n.Tag == FragmentTag {
		return KindFragment
	}
	if IsHTMLTag(n.Tag) {
		return KindElement
	}
	return KindComponent
}

// Props holds attributes or component props by name.
type Props map[string]any

// Handlers maps event names to handlers. A value may be a single handler
// or a []any of handlers.
type Handlers map[string]any

// NodeData is the classified attribute data of a RenderNode.
// Every attribute key lands in exactly one field.
type NodeData struct {
	Key         any
	Ref         any
	Class       any
	Style       any
	Slot        any
	ScopedSlots any

	Attrs    Props    // HTML-like elements
	Props    Props    // Composite tags
	DOMProps Props    // Forced DOM property overrides
	On       Handlers // Component (or element) event handlers
	NativeOn Handlers // Native handlers on composite tags; nil until used

	// OnObject holds the raw value of an on key that is not a handler map.
	// On is left empty in that case.
	OnObject any

	Directives []Directive
}

// NewNodeData returns NodeData with the always-present buckets allocated.
func NewNodeData() *NodeData {
	return &NodeData{
		Attrs:    make(Props),
		Props:    make(Props),
		DOMProps: make(Props),
		On:       make(Handlers),
	}
}

// AddHandler installs handler for event, keeping any handler already
// present. Two or more handlers are stored as a []any in call order.
// An existing []any may be shared with the caller's config, so it is
// copied rather than appended to.
func (d *NodeData) AddHandler(event string, handler any) {
	if d.On == nil {
		d.On = make(Handlers)
	}
	existing, ok := d.On[event]
	if !ok || existing == nil {
		d.On[event] = handler
		return
	}
	if list, ok := existing.([]any); ok {
		next := make([]any, 0, len(list)+1)
		next = append(next, list...)
		d.On[event] = append(next, handler)
		return
	}
	d.On[event] = []any{existing, handler}
}

// Directive is one structural directive attached to a node.
type Directive struct {
	Name      string          // "focus", "click-outside"
	RawName   string          // Attribute key as written
	Value     any             // Attribute value
	Arg       string          // Text after ':'
	Modifiers map[string]bool // Suffixes after '_'
}

// Component marks a pre-registered component. Bare functions that do not
// implement Component are wrapped into an anonymous ComponentDef.
type Component interface {
	ComponentName() string
}

// ModelOption overrides the prop and event a component uses for two-way
// binding. The zero value means "value" and "input".
type ModelOption struct {
	Prop  string
	Event string
}

// ComponentDef is a registered component definition.
type ComponentDef struct {
	Name  string
	Model *ModelOption
	Setup func() any // Returns the render body
}

// ComponentName implements Component.
func (c *ComponentDef) ComponentName() string {
	return c.Name
}

// Func registers render as a named component.
func Func(name string, render any) *ComponentDef {
	return &ComponentDef{Name: name, Setup: func() any { return render }}
}
