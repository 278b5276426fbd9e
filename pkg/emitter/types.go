package emitter

import (
	"strings"

	"github.com/cwbudde/esxdts/internal/model"
)

// formatTypes renders a Parameter/Property's Types list as a TypeScript
// type: a single type, a union of several, or "void" for an empty return
// type (voidIfEmpty). Per the data model invariant, a parameter's Types is
// never empty; "any" is the fallback only for defensive safety.
func formatTypes(types []model.TypeRef, voidIfEmpty bool) string {
	if len(types) == 0 {
		if voidIfEmpty {
			return "void"
		}
		return "any"
	}
	if len(types) == 1 {
		return formatOne(types[0])
	}

	allArray := true
	for _, t := range types {
		if !t.IsArray {
			allArray = false
			break
		}
	}

	parts := make([]string, len(types))
	for i, t := range types {
		if allArray {
			t.IsArray = false
		}
		parts[i] = formatOne(t)
	}
	joined := strings.Join(parts, " | ")
	if allArray {
		return "(" + joined + ")[]"
	}
	return joined
}

func formatOne(t model.TypeRef) string {
	if t.Kind == model.TypeTuple {
		return t.Name
	}
	if t.IsArray {
		return t.Name + "[]"
	}
	return t.Name
}
