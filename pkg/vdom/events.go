package vdom

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	onPrefix       = "on"
	onDashPrefix   = "on-"
	nativeOnPrefix = "nativeOn"
)

// hasUpperAfter reports whether key starts with prefix followed by an
// uppercase letter.
func hasUpperAfter(key, prefix string) bool {
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key[len(prefix):])
	return unicode.IsUpper(r)
}

// lowerFirst lowercases the first rune of s.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// EventName converts an onX / on-x attribute key to its event name:
// "onClick" becomes "click", "on-my-event" becomes "my-event". Keys that
// are not event keys are returned unchanged.
func EventName(key string) string {
	switch {
	case strings.HasPrefix(key, onDashPrefix) && len(key) > len(onDashPrefix):
		return key[len(onDashPrefix):]
	case hasUpperAfter(key, onPrefix):
		return lowerFirst(key[len(onPrefix):])
	default:
		return key
	}
}

// NativeEventName converts a nativeOnX key to its event name:
// "nativeOnClick" becomes "click".
func NativeEventName(key string) string {
	if !hasUpperAfter(key, nativeOnPrefix) {
		return key
	}
	return lowerFirst(key[len(nativeOnPrefix):])
}
