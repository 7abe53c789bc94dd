package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		key       string
		html      Destination
		composite Destination
	}{
		{"key", DestKey, DestKey},
		{"class", DestClass, DestClass},
		{"className", DestClass, DestClass},
		{"style", DestStyle, DestStyle},
		{"innerHTML", DestDOMProps, DestDOMProps},
		{"textContent", DestDOMProps, DestDOMProps},
		{"innerText", DestDOMProps, DestDOMProps},
		{"on", DestOnObject, DestOnObject},
		{"nativeOnClick", DestAttrs, DestNativeOn},
		{"onClick", DestOn, DestOn},
		{"on-my-event", DestOn, DestOn},
		{"onUpdate:title", DestOn, DestOn},
		{"slot", DestSlot, DestSlot},
		{"scopedSlots", DestScopedSlots, DestScopedSlots},
		{"vModel", DestModel, DestModel},
		{"v-model", DestModel, DestModel},
		{"vModel_trim", DestModel, DestModel},
		{"v-model:title", DestModel, DestModel},
		{"vModel:title_lazy_number", DestModel, DestModel},
		{"ref", DestRef, DestRef},
		{"v-focus", DestDirective, DestDirective},
		{"vClickOutside", DestDirective, DestDirective},
		{"v-tooltip:top_delay", DestDirective, DestDirective},
		{"id", DestAttrs, DestProps},
		{"one", DestAttrs, DestProps},
		{"online", DestAttrs, DestProps},
		{"nativeOn", DestAttrs, DestProps},
		{"on-", DestAttrs, DestProps},
		{"v-", DestAttrs, DestProps},
		{"value", DestAttrs, DestProps},
		{"data-id", DestAttrs, DestProps},
		{"children", DestChildren, DestChildren},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := Classify(tt.key, true); got != tt.html {
				t.Errorf("Classify(%q, html) = %v, want %v", tt.key, got, tt.html)
			}
			if got := Classify(tt.key, false); got != tt.composite {
				t.Errorf("Classify(%q, composite) = %v, want %v", tt.key, got, tt.composite)
			}
		})
	}
}

func TestRulesOrder(t *testing.T) {
	want := []Destination{
		DestKey, DestClass, DestStyle, DestDOMProps, DestOnObject,
		DestNativeOn, DestOn, DestSlot, DestScopedSlots, DestModel,
		DestRef, DestDirective, DestAttrs, DestProps,
	}
	if diff := cmp.Diff(want, Rules()); diff != "" {
		t.Errorf("Rules() mismatch (-want +got):\n%s", diff)
	}
}

// Each naming convention must be matched by exactly one non-fallback rule,
// so first-match-wins never has to break a tie.
func TestConventionsDoNotOverlap(t *testing.T) {
	samples := map[Destination][]string{
		DestKey:         {"key"},
		DestClass:       {"class", "className"},
		DestStyle:       {"style"},
		DestDOMProps:    {"innerHTML", "textContent", "innerText"},
		DestOnObject:    {"on"},
		DestNativeOn:    {"nativeOnClick", "nativeOnMouseEnter"},
		DestOn:          {"onClick", "onInput", "on-change", "onUpdate:value"},
		DestSlot:        {"slot"},
		DestScopedSlots: {"scopedSlots"},
		DestModel:       {"vModel", "v-model", "vModel_trim", "v-model:title_lazy"},
		DestRef:         {"ref"},
		DestDirective:   {"v-focus", "vFocus", "v-click-outside:x_stop", "vShow"},
	}

	specific := defaultRules[:len(defaultRules)-2]
	for dest, keys := range samples {
		for _, key := range keys {
			var matched []Destination
			for _, r := range specific {
				if r.match(key, false) {
					matched = append(matched, r.dest)
				}
			}
			if len(matched) != 1 || matched[0] != dest {
				t.Errorf("key %q matched %v, want exactly [%v]", key, matched, dest)
			}
		}
	}
}

func TestIsHTMLTag(t *testing.T) {
	tests := []struct {
		tag  any
		want bool
	}{
		{"div", true},
		{"h1", true},
		{"my-element", true},
		{"svg:path", true},
		{"math:mi", true},
		{"foreignObject", true},
		{"MyComponent", false},
		{"xlink:href", false},
		{"1div", false},
		{"", false},
		{nil, false},
		{func() {}, false},
		{&ComponentDef{Name: "div"}, false},
	}

	for _, tt := range tests {
		if got := IsHTMLTag(tt.tag); got != tt.want {
			t.Errorf("IsHTMLTag(%#v) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestEventNames(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		key  string
		want string
	}{
		{EventName, "onClick", "click"},
		{EventName, "onMouseEnter", "mouseEnter"},
		{EventName, "on-my-event", "my-event"},
		{EventName, "onUpdate:title", "update:title"},
		{EventName, "online", "online"},
		{NativeEventName, "nativeOnClick", "click"},
		{NativeEventName, "nativeOn", "nativeOn"},
	}

	for _, tt := range tests {
		if got := tt.fn(tt.key); got != tt.want {
			t.Errorf("event name of %q = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDestinationString(t *testing.T) {
	if got := DestNativeOn.String(); got != "nativeOn" {
		t.Errorf("DestNativeOn.String() = %q", got)
	}
	if got := Destination(200).String(); got != "unknown" {
		t.Errorf("Destination(200).String() = %q", got)
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("input") || IsVoidElement("div") || IsVoidElement(nil) {
		t.Error("IsVoidElement misclassified input/div/nil")
	}
}

func TestTagName(t *testing.T) {
	tests := []struct {
		tag  any
		want string
	}{
		{nil, ""},
		{"div", "div"},
		{FragmentTag, "Fragment"},
		{&ComponentDef{Name: "Card"}, "Card"},
		{&ComponentDef{}, "anonymous"},
		{func() {}, "func()"},
	}
	for _, tt := range tests {
		if got := TagName(tt.tag); got != tt.want {
			t.Errorf("TagName(%#v) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
