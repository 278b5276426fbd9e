// Package xmldef walks the ExtendScript XML tree and produces the
// definition tree consumed by the recovery engine. It never performs a
// global descendant search: every lookup follows a direct-child path named
// in spec section 4.1.
package xmldef

import (
	"strconv"

	"aqwari.net/xml/xmltree"
	"github.com/cwbudde/esxdts/internal/model"
	"github.com/cwbudde/esxdts/internal/xmlerr"
)

// ParseDocument walks a "package" root element and returns the definition
// tree for every classdef found as its direct child. It is fatal (returns
// an error) only for the two structural conditions in spec section 7.1.
func ParseDocument(root *xmltree.Element) ([]*model.Definition, error) {
	var defs []*model.Definition
	for i, classdef := range childrenByName(root, "classdef") {
		def, err := parseClassdef(classdef, i)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func parseClassdef(el *xmltree.Element, index int) (*model.Definition, error) {
	name := attrValue(el, "name")
	path := pathFor(index)

	elementsGroups := childrenByName(el, "elements")
	hasConstructor := false
	for _, g := range elementsGroups {
		if firstChild(g, "constructor") != nil {
			hasConstructor = true
			break
		}
	}

	def := &model.Definition{
		Name: name,
		Desc: extractDesc(text(firstChild(el, "shortdesc")), text(firstChild(el, "description"))),
	}

	switch {
	case hasAttr(el, "enumeration"):
		def.Kind = model.KindEnum
	case hasAttr(el, "dynamic"):
		if hasConstructor {
			def.Kind = model.KindClass
		} else {
			def.Kind = model.KindInterface
		}
	default:
		return nil, xmlerr.New(path, name, "unknown definition: neither enumeration nor dynamic")
	}

	if sc := firstChild(el, "superclass"); sc != nil {
		def.Extends = text(sc)
	}

	for gi, group := range elementsGroups {
		isStatic := attrValue(group, "type") == "class"
		members, err := parseElementsGroup(group, isStatic, pathFor(index, gi))
		if err != nil {
			return nil, err
		}
		def.Members = append(def.Members, members...)
	}

	if def.Kind == model.KindEnum {
		for i := range def.Members {
			if def.Members[i].Kind == model.KindProperty {
				def.Members[i].Kind = model.KindEnumMember
			}
		}
	}

	return def, nil
}

func parseElementsGroup(group *xmltree.Element, isStatic bool, path string) ([]model.Property, error) {
	var members []model.Property
	for _, child := range group.Children {
		var (
			m   model.Property
			err error
			ok  = true
		)
		switch child.Name.Local {
		case "property":
			m = parsePropertyMember(&child, isStatic)
		case "method":
			m = parseMethodMember(&child, isStatic)
		case "constructor":
			m = parseConstructorMember(&child, isStatic)
		default:
			ok = false
		}
		if !ok {
			return nil, xmlerr.New(path, child.Name.Local, "unknown member: neither property, method, nor indexer marker")
		}
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func pathFor(parts ...int) string {
	path := "package"
	for i, p := range parts {
		if i == 0 {
			path += "/classdef[" + strconv.Itoa(p) + "]"
		} else {
			path += "/elements[" + strconv.Itoa(p) + "]"
		}
	}
	return path
}
