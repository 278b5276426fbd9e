package xmldef

import (
	"regexp"
	"strconv"
	"strings"

	"aqwari.net/xml/xmltree"
	"github.com/cwbudde/esxdts/internal/model"
	"github.com/cwbudde/esxdts/internal/typenorm"
)

var reColonSplit = regexp.MustCompile(`^(.*):(\S+)$`)

const measurementUnitLiteral = "Measurement Unit (Number or String)=any"

// datatypeResult is the outcome of parsing one <datatype> element: the
// resolved type list, whether the <type> text carried a colon (spec's
// central corruption signal), and a description salvaged from a
// description-leaked-into-type string.
type datatypeResult struct {
	Types        []model.TypeRef
	Malformed    bool
	SalvagedDesc string
}

// parseDatatype implements spec section 4.1's "Type parsing (corruption
// detection - central rule)".
func parseDatatype(dt *xmltree.Element) datatypeResult {
	if dt == nil {
		return datatypeResult{Types: []model.TypeRef{{Kind: model.TypeSimple, Name: "any"}}}
	}

	typeText := text(firstChild(dt, "type"))
	arrayFlag := firstChild(dt, "array") != nil
	valueEl := firstChild(dt, "value")

	if typeText == "" && valueEl != nil {
		return parseEnumValue(valueEl)
	}

	if typeText == measurementUnitLiteral {
		t1 := model.TypeRef{Kind: model.TypeSimple, Name: "number", IsArray: arrayFlag}
		t2 := model.TypeRef{Kind: model.TypeSimple, Name: "string", IsArray: arrayFlag}
		return datatypeResult{Types: []model.TypeRef{t1, t2}}
	}

	var malformed bool
	var salvaged string
	resolvedName := typeText

	if m := reColonSplit.FindStringSubmatch(typeText); m != nil {
		malformed = true
		salvaged = strings.TrimSuffix(strings.TrimSpace(m[1]), ".")
		resolvedName = strings.TrimSpace(m[2])
	} else if strings.Contains(strings.TrimSpace(typeText), " ") {
		salvaged = strings.TrimSpace(typeText)
		resolvedName = "any"
	}

	ref := typenorm.Normalize(resolvedName)
	if ref.Kind == model.TypeTuple {
		// A tuple's Name is already the literal tuple text (e.g. "[number,
		// number, number, number]"); an <array> sibling never wraps it in
		// a further array, so the flag is cleared regardless of arrayFlag.
		ref.IsArray = false
	} else if arrayFlag {
		ref.IsArray = true
	}

	return datatypeResult{
		Types:        []model.TypeRef{ref},
		Malformed:    malformed,
		SalvagedDesc: salvaged,
	}
}

func parseEnumValue(valueEl *xmltree.Element) datatypeResult {
	raw := strings.TrimSpace(text(valueEl))
	name := "string"
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		name = "number"
	}
	return datatypeResult{
		Types: []model.TypeRef{{Kind: model.TypeSimple, Name: name, Value: raw}},
	}
}
