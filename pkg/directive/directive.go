// Package directive turns v-name / vName attribute keys into vdom.Directive
// descriptors.
//
// Key grammar:
//
//	(v-name|vName)(:arg)?(_modifier)*
//
// CamelCase names are converted to kebab-case, so vClickOutside_stop yields
// the directive "click-outside" with modifier "stop".
package directive

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/vango-dev/vjsx/pkg/vdom"
)

var keyPattern = regexp.MustCompile(`^(?:v-([a-z][A-Za-z0-9-]*)|v([A-Z][A-Za-z0-9]*))(?::([A-Za-z0-9-]+))?((?:_[A-Za-z0-9]+)*)$`)

// Parse parses key into a Directive without a value. ok is false when key
// is not a directive key; model keys are never directives.
func Parse(key string) (d vdom.Directive, ok bool) {
	if !vdom.IsDirectiveKey(key) {
		return vdom.Directive{}, false
	}
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return vdom.Directive{}, false
	}

	name := m[1]
	if name == "" {
		name = m[2]
	}
	d = vdom.Directive{
		Name:      kebab(name),
		RawName:   key,
		Arg:       m[3],
		Modifiers: map[string]bool{},
	}
	for _, mod := range strings.Split(m[4], "_") {
		if mod != "" {
			d.Modifiers[mod] = true
		}
	}
	return d, true
}

// kebab converts ClickOutside or clickOutside to click-outside.
func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Transformer is the default vdom.DirectiveTransformer.
type Transformer struct{}

var _ vdom.DirectiveTransformer = Transformer{}

// New creates a Transformer.
func New() Transformer {
	return Transformer{}
}

// Apply implements vdom.DirectiveTransformer.
func (Transformer) Apply(key string, data *vdom.NodeData, cfg *vdom.Config) {
	d, ok := Parse(key)
	if !ok {
		return
	}
	d.Value = cfg.Value(key)
	data.Directives = append(data.Directives, d)
}
