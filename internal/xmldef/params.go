package xmldef

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"aqwari.net/xml/xmltree"
	"github.com/cwbudde/esxdts/internal/model"
)

var rePlaceholder = regexp.MustCompile(`^uArg(\d+)$`)

// placeholderAllocator synthesizes uArgN names that never collide with
// placeholders already present in the XML (spec section 4.1: "pre-scan the
// full parameter list for existing placeholder names... to avoid
// collisions when synthesizing").
type placeholderAllocator struct {
	next int
}

func newPlaceholderAllocator(paramEls []*xmltree.Element) *placeholderAllocator {
	max := 0
	for _, p := range paramEls {
		if m := rePlaceholder.FindStringSubmatch(attrValue(p, "name")); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > max {
				max = n
			}
		}
	}
	return &placeholderAllocator{next: max + 1}
}

func (a *placeholderAllocator) synth() string {
	name := fmt.Sprintf("uArg%d", a.next)
	a.next++
	return name
}

// parseParameters implements spec section 4.1's "Parameter parsing".
func parseParameters(paramsEl *xmltree.Element) []model.Parameter {
	if paramsEl == nil {
		return nil
	}
	paramEls := childrenByName(paramsEl, "parameter")
	alloc := newPlaceholderAllocator(paramEls)

	params := make([]model.Parameter, 0, len(paramEls))
	optionalSticky := false

	for _, pEl := range paramEls {
		desc := extractDesc(text(firstChild(pEl, "shortdesc")), text(firstChild(pEl, "description")))
		descFromXML := len(desc) > 0

		rawName := attrValue(pEl, "name")
		name := rawName
		wasSpaceName := false

		switch {
		case rawName == ".index":
			name = "index"
		case rawName != "" && unicode.IsDigit(rune(rawName[0])):
			// Garbage from a comma split: discard, synthesize, never
			// contribute to desc.
			name = alloc.synth()
		case strings.ContainsAny(rawName, " \t"):
			trimmed := strings.TrimSpace(rawName)
			desc = append([]string{trimmed}, desc...)
			name = alloc.synth()
			wasSpaceName = true
		case rawName == "":
			name = alloc.synth()
		}

		xmlDescCount := len(desc)

		dt := parseDatatype(firstChild(pEl, "datatype"))
		if dt.SalvagedDesc != "" {
			desc = append(desc, dt.SalvagedDesc)
		}

		optionalAttr := attrValue(pEl, "optional") == "true" || attrValue(pEl, "optional") == "1"
		optional := optionalAttr || optionalSticky || containsOptional(desc)
		if optional {
			optionalSticky = true
		}

		for i, l := range desc {
			desc[i] = stripOptionalToken(l)
		}

		param := model.Parameter{
			Name:         name,
			Desc:         desc,
			Optional:     optional,
			Types:        dt.Types,
			Malformed:    dt.Malformed,
			DescFromXML:  descFromXML,
			WasSpaceName: wasSpaceName,
			XMLDescCount: xmlDescCount,
		}

		if strings.Contains(param.Name, "...") {
			param.Name = "...rest"
			if len(param.Types) > 0 {
				param.Types[0].IsArray = true
			}
		}

		params = append(params, param)
	}

	return params
}
