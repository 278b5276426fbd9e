// Package prune implements the inherited-property elimination collaborator
// (spec section 4.1, "Inherited-property pruning"): no class may list a
// member name also present in any ancestor's member list.
package prune

import "github.com/cwbudde/esxdts/internal/model"

// Prune removes, from every definition in defs, any member whose name also
// appears in a transitive ancestor's member list. A referenced parent that
// isn't present in defs is treated as an external type and produces no
// error. The inheritance graph is assumed acyclic; a cycle is detected by
// revisiting a name during the walk and simply terminates that walk
// (spec section 9, "Cycle handling").
func Prune(defs []*model.Definition) {
	byName := make(map[string]*model.Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}

	for _, d := range defs {
		ancestorNames := ancestorMemberNames(d, byName)
		if len(ancestorNames) == 0 {
			continue
		}
		kept := d.Members[:0]
		for _, m := range d.Members {
			if ancestorNames[m.Name] {
				continue
			}
			kept = append(kept, m)
		}
		d.Members = kept
	}
}

func ancestorMemberNames(d *model.Definition, byName map[string]*model.Definition) map[string]bool {
	names := make(map[string]bool)
	visited := map[string]bool{d.Name: true}

	for cur := d.Extends; cur != ""; {
		if visited[cur] {
			break
		}
		visited[cur] = true

		parent, ok := byName[cur]
		if !ok {
			break
		}
		for _, m := range parent.Members {
			names[m.Name] = true
		}
		cur = parent.Extends
	}
	return names
}
