package xmldef

import "aqwari.net/xml/xmltree"

// childrenByName returns the direct children of el whose local name matches
// name. Never descends further; the parser must never perform a global
// descendant search (spec section 4.1).
func childrenByName(el *xmltree.Element, name string) []*xmltree.Element {
	var out []*xmltree.Element
	for i := range el.Children {
		if el.Children[i].Name.Local == name {
			out = append(out, &el.Children[i])
		}
	}
	return out
}

// firstChild returns the first direct child with the given local name, or
// nil.
func firstChild(el *xmltree.Element, name string) *xmltree.Element {
	for i := range el.Children {
		if el.Children[i].Name.Local == name {
			return &el.Children[i]
		}
	}
	return nil
}

// hasAttr reports whether el carries an attribute with the given local
// name, distinguishing "absent" from "present but empty".
func hasAttr(el *xmltree.Element, local string) bool {
	for _, a := range el.StartElement.Attr {
		if a.Name.Local == local {
			return true
		}
	}
	return false
}

// attrValue returns the value of the named attribute, or "" if absent.
func attrValue(el *xmltree.Element, local string) string {
	return el.Attr("", local)
}

// text returns the decoded character data of a leaf element (no markup
// children expected, e.g. <shortdesc>, <description>, <superclass>, the
// text form of <type>).
func text(el *xmltree.Element) string {
	if el == nil {
		return ""
	}
	var v struct {
		Text string `xml:",chardata"`
	}
	if err := el.Unmarshal(&v); err != nil {
		return string(el.Content)
	}
	return v.Text
}
