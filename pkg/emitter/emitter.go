// Package emitter implements the text-emitter collaborator (spec section
// 4.5): it formats a repaired, pruned, sorted definition tree as a
// syntactically valid TypeScript declaration file. It never reads the
// transient corruption-tracking fields on Parameter/Property — those are
// a parsing-time bookkeeping concern consumed entirely by the recovery
// engine (spec section 9, "Corruption flags on parameters").
package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/esxdts/internal/model"
)

var reservedWords = map[string]bool{
	"for": true, "with": true, "in": true, "default": true,
	"return": true, "export": true, "function": true,
}

// Emit renders defs as a complete .d.ts file.
func Emit(defs []*model.Definition) string {
	var b strings.Builder

	i := 0
	for i < len(defs) {
		ns, _ := splitDotted(defs[i].Name)
		if ns == "" {
			emitDefinition(&b, defs[i], 0)
			i++
			continue
		}

		j := i
		for j < len(defs) {
			nsj, _ := splitDotted(defs[j].Name)
			if nsj != ns {
				break
			}
			j++
		}

		fmt.Fprintf(&b, "declare namespace %s {\n", ns)
		for _, d := range defs[i:j] {
			emitDefinition(&b, d, 1)
		}
		b.WriteString("}\n")
		i = j
	}

	return b.String()
}

func emitDefinition(b *strings.Builder, d *model.Definition, indent int) {
	_, localName := splitDotted(d.Name)
	pad := strings.Repeat("\t", indent)

	emitJSDoc(b, d.Desc, indent)

	switch d.Kind {
	case model.KindClass:
		fmt.Fprintf(b, "%sdeclare class %s", pad, localName)
	case model.KindInterface:
		fmt.Fprintf(b, "%sdeclare interface %s", pad, localName)
	case model.KindEnum:
		fmt.Fprintf(b, "%sdeclare enum %s", pad, localName)
	}
	if d.Extends != "" {
		fmt.Fprintf(b, " extends %s", d.Extends)
	}
	b.WriteString(" {\n")

	for _, m := range d.Members {
		emitMember(b, d.Kind, m, indent+1)
	}

	fmt.Fprintf(b, "%s}\n", pad)
}

func emitMember(b *strings.Builder, defKind model.DefinitionKind, m model.Property, indent int) {
	pad := strings.Repeat("\t", indent)
	emitJSDoc(b, m.Desc, indent)

	switch m.Kind {
	case model.KindEnumMember:
		if len(m.Types) > 0 && m.Types[0].Value != "" {
			fmt.Fprintf(b, "%s%s = %s,\n", pad, m.Name, literalFor(m.Types[0]))
		} else {
			fmt.Fprintf(b, "%s%s,\n", pad, m.Name)
		}
	case model.KindIndexer:
		keyType := "number"
		keyName := "index"
		if len(m.Params) > 0 {
			keyName = escapeKeyword(m.Params[0].Name)
			keyType = formatTypes(m.Params[0].Types, false)
		}
		fmt.Fprintf(b, "%s[%s: %s]: %s;\n", pad, keyName, keyType, formatTypes(m.Types, true))
	case model.KindMethod:
		emitMethodSignature(b, pad, m)
	default: // model.KindProperty
		fmt.Fprintf(b, "%s%s%s%s: %s;\n", pad, staticPrefix(m), readonlyPrefix(m), m.Name, formatTypes(m.Types, false))
	}
}

func emitMethodSignature(b *strings.Builder, pad string, m model.Property) {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		opt := ""
		if p.Optional {
			opt = "?"
		}
		params[i] = fmt.Sprintf("%s%s: %s", escapeKeyword(p.Name), opt, formatTypes(p.Types, false))
	}

	if m.Name == "constructor" {
		fmt.Fprintf(b, "%sconstructor(%s);\n", pad, strings.Join(params, ", "))
		return
	}

	fmt.Fprintf(b, "%s%s%s(%s): %s;\n", pad, staticPrefix(m), m.Name, strings.Join(params, ", "), formatTypes(m.Types, true))
}

func staticPrefix(m model.Property) string {
	if m.IsStatic {
		return "static "
	}
	return ""
}

func readonlyPrefix(m model.Property) string {
	if m.ReadOnly {
		return "readonly "
	}
	return ""
}

func escapeKeyword(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

func emitJSDoc(b *strings.Builder, desc []string, indent int) {
	if len(desc) == 0 {
		return
	}
	pad := strings.Repeat("\t", indent)
	fmt.Fprintf(b, "%s/**\n", pad)
	for _, line := range desc {
		fmt.Fprintf(b, "%s * %s\n", pad, line)
	}
	fmt.Fprintf(b, "%s */\n", pad)
}

// splitDotted splits a definition name "X.Y.Z" into namespace "X" and the
// remaining "Y.Z" (spec section 9, "Dotted names and namespaces"). A name
// with no dot returns an empty namespace.
func splitDotted(name string) (ns, rest string) {
	i := strings.IndexByte(name, '.')
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}

func literalFor(t model.TypeRef) string {
	if t.Name == "string" {
		return fmt.Sprintf("%q", t.Value)
	}
	return t.Value
}
