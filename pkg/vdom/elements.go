package vdom

import "regexp"

// htmlTagPattern matches primitive markup names: lowercase-leading ASCII,
// optionally behind a recognized namespace prefix. Components are
// CamelCase by convention, so no registry lookup is involved.
var htmlTagPattern = regexp.MustCompile(`^(?:(?:svg|math):)?[a-z][a-zA-Z0-9-]*$`)

// IsHTMLTag reports whether tag names a primitive markup element.
// Non-string tags are always composite.
func IsHTMLTag(tag any) bool {
	s, ok := tag.(string)
	if !ok {
		return false
	}
	return htmlTagPattern.MatchString(s)
}

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag any) bool {
	s, ok := tag.(string)
	return ok && voidElements[s]
}
