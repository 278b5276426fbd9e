// Package typenorm implements the fixed rewrite table that maps the
// ExtendScript XML's source vocabulary of type strings onto target-language
// TypeScript types. It is applied recursively and is idempotent:
// Normalize(Normalize(t)) == Normalize(t) for any input t.
package typenorm

import (
	"regexp"
	"strings"

	"github.com/cwbudde/esxdts/internal/model"
)

var (
	reEnumeratorSuffix = regexp.MustCompile(`(?i)enumerators?$`)
	reUnitOrReal       = regexp.MustCompile(`^(Unit|Real)(\s*\([\d.]+ - [\d.]+( points)?\))?$`)
	reShortLongInt     = regexp.MustCompile(`^(Short|Long) Integers?$`)
	reArrayOf          = regexp.MustCompile(`^Array of (.+?)s?$`)
	reArraysOf2Reals   = regexp.MustCompile(`^Arrays? of 2 Reals$`)
	reArraysOf3Reals   = regexp.MustCompile(`^Arrays? of 3 Reals$`)
	reArraysOf6Reals   = regexp.MustCompile(`^Arrays? of 6 Reals$`)
	reArraysOf2Units   = regexp.MustCompile(`^Arrays? of 2 Units$`)
	reArraysOf2Strings = regexp.MustCompile(`^Arrays? of 2 Strings$`)
)

// Normalize rewrites a single (already corruption-resolved) type name into
// its target-language TypeRef. It never returns a TypeRef with an empty
// Name.
func Normalize(raw string) model.TypeRef {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".")
	s = reEnumeratorSuffix.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	switch {
	case s == "varies=any" || s == "Any":
		return simple("any")
	case s == "Undefined":
		return simple("undefined")
	case s == "Object":
		return simple("object")
	case s == "String":
		return simple("string")
	case s == "Boolean" || s == "bool":
		return simple("boolean")
	case s == "Number" || s == "int" || s == "Int32" || s == "uint":
		return simple("number")
	case reUnitOrReal.MatchString(s):
		return simple("number")
	case s == "Array of 4 Units (0 - 8640 points)":
		return model.TypeRef{Kind: model.TypeTuple, Name: "[number, number, number, number]"}
	case s == "Array of Reals":
		r := simple("number")
		r.IsArray = true
		return r
	case reArraysOf2Reals.MatchString(s):
		return model.TypeRef{Kind: model.TypeTuple, Name: "[number, number]"}
	case reArraysOf3Reals.MatchString(s):
		return model.TypeRef{Kind: model.TypeTuple, Name: "[number, number, number]"}
	case reArraysOf6Reals.MatchString(s):
		return model.TypeRef{Kind: model.TypeTuple, Name: "[number, number, number, number, number, number]"}
	case reArraysOf2Units.MatchString(s):
		return model.TypeRef{Kind: model.TypeTuple, Name: "[number | string, number | string]"}
	case reArraysOf2Strings.MatchString(s):
		return model.TypeRef{Kind: model.TypeTuple, Name: "[string, string]"}
	case reShortLongInt.MatchString(s):
		return simple("number")
	case s == "Swatche":
		return simple("Swatch")
	case s == "JavaScript Function":
		return simple("Function")
	}

	if m := reArrayOf.FindStringSubmatch(s); m != nil {
		inner := Normalize(m[1])
		inner.IsArray = true
		return inner
	}

	return simple(s)
}

func simple(name string) model.TypeRef {
	return model.TypeRef{Kind: model.TypeSimple, Name: name}
}

// IsAny reports whether t normalizes to the "any" type, used by the XML
// parser when it strips spurious "any" entries introduced by "Can
// return/accept" parsing (spec section 4.1).
func IsAny(t model.TypeRef) bool {
	return t.Kind == model.TypeSimple && t.Name == "any" && !t.IsArray
}
