package sortdef

import (
	"testing"

	"github.com/cwbudde/esxdts/internal/model"
)

func TestSortOrdersDefinitionsByName(t *testing.T) {
	defs := []*model.Definition{
		{Name: "Zebra"},
		{Name: "Apple"},
		{Name: "Mango"},
	}

	Sort(defs)

	got := []string{defs[0].Name, defs[1].Name, defs[2].Name}
	want := []string{"Apple", "Mango", "Zebra"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("defs[%d].Name = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSortOrdersMembersByKindBucketThenName(t *testing.T) {
	defs := []*model.Definition{{
		Name: "Layer",
		Members: []model.Property{
			{Kind: model.KindMethod, Name: "save"},
			{Kind: model.KindProperty, Name: "name"},
			{Kind: model.KindMethod, Name: "duplicate"},
			{Kind: model.KindProperty, Name: "bounds"},
		},
	}}

	Sort(defs)

	names := make([]string, len(defs[0].Members))
	for i, m := range defs[0].Members {
		names[i] = m.Name
	}
	want := []string{"bounds", "name", "duplicate", "save"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Members[%d] = %q, want %q (full order: %v)", i, names[i], want[i], names)
		}
	}
}
