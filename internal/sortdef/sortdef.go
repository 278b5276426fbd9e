// Package sortdef implements the sort collaborator (spec section 4.5): a
// total order over definitions by name, and within each definition, by
// (kind-bucket, name) where methods sort after non-methods.
package sortdef

import (
	"sort"

	"github.com/cwbudde/esxdts/internal/model"
)

// Sort orders defs by name ascending, and each definition's members by
// kind bucket (non-methods first) then name ascending, in place.
func Sort(defs []*model.Definition) {
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	for _, d := range defs {
		sort.SliceStable(d.Members, func(i, j int) bool {
			bi, bj := bucket(d.Members[i]), bucket(d.Members[j])
			if bi != bj {
				return bi < bj
			}
			return d.Members[i].Name < d.Members[j].Name
		})
	}
}

func bucket(p model.Property) int {
	if p.Kind == model.KindMethod {
		return 1
	}
	return 0
}
