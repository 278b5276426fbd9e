package xmldef

import (
	"aqwari.net/xml/xmltree"
	"github.com/cwbudde/esxdts/internal/model"
)

func hasIndexParam(paramsEl *xmltree.Element) bool {
	if paramsEl == nil {
		return false
	}
	for _, p := range childrenByName(paramsEl, "parameter") {
		if attrValue(p, "name") == ".index" {
			return true
		}
	}
	return false
}

func parsePropertyMember(el *xmltree.Element, isStatic bool) model.Property {
	dt := parseDatatype(firstChild(el, "datatype"))
	return model.Property{
		Kind:     model.KindProperty,
		IsStatic: isStatic,
		ReadOnly: hasAttr(el, "readonly"),
		Name:     sanitizeMemberName(attrValue(el, "name")),
		Desc:     extractDesc(text(firstChild(el, "shortdesc")), text(firstChild(el, "description"))),
		Types:    dt.Types,
	}
}

func parseMethodMember(el *xmltree.Element, isStatic bool) model.Property {
	paramsEl := firstChild(el, "parameters")
	params := parseParameters(paramsEl)

	name := sanitizeMemberName(attrValue(el, "name"))
	kind := model.KindMethod
	if hasIndexParam(paramsEl) {
		kind = model.KindIndexer
		name = "__indexer"
	}

	dt := parseDatatype(firstChild(el, "datatype"))
	m := model.Property{
		Kind:     kind,
		IsStatic: isStatic,
		Name:     name,
		Desc:     extractDesc(text(firstChild(el, "shortdesc")), text(firstChild(el, "description"))),
		Params:   params,
		Types:    dt.Types,
	}
	finishMember(&m)
	return m
}

func parseConstructorMember(el *xmltree.Element, isStatic bool) model.Property {
	params := parseParameters(firstChild(el, "parameters"))
	m := model.Property{
		Kind:     model.KindMethod,
		IsStatic: isStatic,
		Name:     "constructor",
		Desc:     extractDesc(text(firstChild(el, "shortdesc")), text(firstChild(el, "description"))),
		Params:   params,
	}
	finishMember(&m)
	return m
}

// finishMember applies the method-description rescue and "Can
// return/accept" parsing, then derives the two transient flags the
// recovery engine needs (spec section 4.1, "Flag propagation").
func finishMember(m *model.Property) {
	applyMethodDescRescue(m)
	applyCanReturnAccept(m)

	for _, p := range m.Params {
		if p.Malformed {
			m.NeedsFullBinaryRecovery = true
			break
		}
	}
	m.HasParamsToEnrich = len(m.Params) > 0
}

// applyMethodDescRescue implements spec section 4.1's "Method-description
// rescue": when a method has no description of its own, but its last
// parameter carries one that came from genuine XML text (not a salvaged
// malformed name) and no other parameter has any description, the
// generator dumped the method's own description onto that last parameter.
func applyMethodDescRescue(m *model.Property) {
	if len(m.Desc) > 0 || len(m.Params) == 0 {
		return
	}
	last := &m.Params[len(m.Params)-1]
	if len(last.Desc) == 0 || !last.DescFromXML {
		return
	}
	for i := 0; i < len(m.Params)-1; i++ {
		if len(m.Params[i].Desc) > 0 {
			return
		}
	}

	n := last.XMLDescCount
	if n > len(last.Desc) {
		n = len(last.Desc)
	}
	m.Desc = append([]string(nil), last.Desc[:n]...)
	last.Desc = append([]string(nil), last.Desc[n:]...)
}
