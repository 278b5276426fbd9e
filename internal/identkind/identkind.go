// Package identkind classifies parameter names as synthesized placeholders
// or real identifiers, a distinction the XML parser and the recovery
// engine both need (spec sections 4.1 and 4.4).
package identkind

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reUArgPlaceholder = regexp.MustCompile(`^uArg\d+$`)
	reArgPlaceholder  = regexp.MustCompile(`^arg\d+$`)
)

// IsPlaceholder reports whether name is a synthesized placeholder of the
// form argN or uArgN.
func IsPlaceholder(name string) bool {
	return reUArgPlaceholder.MatchString(name) || reArgPlaceholder.MatchString(name)
}

// IsRealIdentifier reports whether name is a genuine parameter identifier:
// not a placeholder, containing no space or tab, not digit-prefixed, and
// non-empty.
func IsRealIdentifier(name string) bool {
	if name == "" || IsPlaceholder(name) {
		return false
	}
	if strings.ContainsAny(name, " \t") {
		return false
	}
	if unicode.IsDigit(rune(name[0])) {
		return false
	}
	return true
}
