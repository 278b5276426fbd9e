package prune

import (
	"testing"

	"github.com/cwbudde/esxdts/internal/model"
)

func TestPruneRemovesInheritedMembers(t *testing.T) {
	defs := []*model.Definition{
		{
			Name: "Base",
			Members: []model.Property{
				{Kind: model.KindProperty, Name: "name"},
				{Kind: model.KindMethod, Name: "toString"},
			},
		},
		{
			Name:    "Derived",
			Extends: "Base",
			Members: []model.Property{
				{Kind: model.KindProperty, Name: "name"},
				{Kind: model.KindProperty, Name: "extra"},
			},
		},
	}

	Prune(defs)

	derived := defs[1]
	if len(derived.Members) != 1 || derived.Members[0].Name != "extra" {
		t.Errorf("Derived.Members = %+v, want only [extra]", derived.Members)
	}
	if len(defs[0].Members) != 2 {
		t.Errorf("Base.Members should be untouched, got %+v", defs[0].Members)
	}
}

func TestPruneWalksTransitiveAncestors(t *testing.T) {
	defs := []*model.Definition{
		{Name: "A", Members: []model.Property{{Name: "shared"}}},
		{Name: "B", Extends: "A", Members: []model.Property{{Name: "b_only"}}},
		{Name: "C", Extends: "B", Members: []model.Property{{Name: "shared"}, {Name: "c_only"}}},
	}

	Prune(defs)

	c := defs[2]
	if len(c.Members) != 1 || c.Members[0].Name != "c_only" {
		t.Errorf("C.Members = %+v, want only [c_only] (shared defined on grandparent A)", c.Members)
	}
}

func TestPruneMissingParentIsNotAnError(t *testing.T) {
	defs := []*model.Definition{
		{Name: "Orphan", Extends: "NotInThisDocument", Members: []model.Property{{Name: "x"}}},
	}

	Prune(defs)

	if len(defs[0].Members) != 1 {
		t.Errorf("a missing parent should leave members untouched, got %+v", defs[0].Members)
	}
}

func TestPruneTerminatesOnCycle(t *testing.T) {
	defs := []*model.Definition{
		{Name: "A", Extends: "B", Members: []model.Property{{Name: "a_member"}}},
		{Name: "B", Extends: "A", Members: []model.Property{{Name: "b_member"}}},
	}

	Prune(defs) // a cyclic extends chain must terminate, not hang
}
