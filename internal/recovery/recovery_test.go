package recovery

import (
	"testing"

	"github.com/cwbudde/esxdts/internal/model"
)

func strBlob(name, s string) model.Blob {
	return model.Blob{Name: name, Bytes: []byte(s)}
}

func TestApplyRepairsPlaceholdersFromLocalWindow(t *testing.T) {
	blob := strBlob("lib", "\x00width: the width in pixels\x00height: the height in pixels\x00resize\x00")
	engine := NewEngine([]model.Blob{blob})

	defs := []*model.Definition{{
		Name: "Layer",
		Members: []model.Property{{
			Kind: model.KindMethod,
			Name: "resize",
			Params: []model.Parameter{
				{Name: "uArg0", Malformed: true},
				{Name: "uArg1", Malformed: true},
			},
			NeedsFullBinaryRecovery: true,
		}},
	}}

	engine.Apply(defs)

	// Per spec section 4.4, local window position 0 (the entry immediately
	// left of the method name, i.e. "height") corresponds to the method's
	// *last* parameter, so it binds to params[1], not params[0].
	m := defs[0].Members[0]
	if m.Params[0].Name != "width" {
		t.Errorf("Params[0].Name = %q, want width", m.Params[0].Name)
	}
	if m.Params[1].Name != "height" {
		t.Errorf("Params[1].Name = %q, want height", m.Params[1].Name)
	}
	if len(m.Params[0].Desc) == 0 || len(m.Params[1].Desc) == 0 {
		t.Errorf("params should have recovered descriptions: %+v", m.Params)
	}
	if engine.Recovered() != 1 {
		t.Errorf("Recovered() = %d, want 1", engine.Recovered())
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	blob := strBlob("lib", "\x00width: the width in pixels\x00height: the height in pixels\x00resize\x00")

	defs := []*model.Definition{{
		Name: "Layer",
		Members: []model.Property{{
			Kind: model.KindMethod,
			Name: "resize",
			Params: []model.Parameter{
				{Name: "uArg0", Malformed: true},
				{Name: "uArg1", Malformed: true},
			},
			NeedsFullBinaryRecovery: true,
		}},
	}}

	NewEngine([]model.Blob{blob}).Apply(defs)
	first := defs[0].Members[0]

	NewEngine([]model.Blob{blob}).Apply(defs)
	second := defs[0].Members[0]

	if first.Params[0].Name != second.Params[0].Name || first.Params[1].Name != second.Params[1].Name {
		t.Errorf("Apply is not idempotent on parameter names: %+v vs %+v", first.Params, second.Params)
	}
	if len(first.Params[0].Desc) != len(second.Params[0].Desc) {
		t.Errorf("Apply is not idempotent on parameter descriptions: %+v vs %+v", first.Params, second.Params)
	}
}

func TestApplyEnrichesFromCrossBlobCache(t *testing.T) {
	libBlob := strBlob("lib", "\x00resize\x00")
	cacheBlob := strBlob("other", "\x00width: the new width\x00")
	engine := NewEngine([]model.Blob{libBlob, cacheBlob})

	defs := []*model.Definition{{
		Name: "Layer",
		Members: []model.Property{{
			Kind:   model.KindMethod,
			Name:   "resize",
			Params: []model.Parameter{{Name: "width"}},
		}},
	}}

	engine.Apply(defs)

	p := defs[0].Members[0].Params[0]
	if len(p.Desc) == 0 || p.Desc[0] != "the new width" {
		t.Errorf("expected the description to be enriched from the second blob's cache, got %+v", p.Desc)
	}
}

func TestApplySkipsMethodsNotFoundInAnyBlob(t *testing.T) {
	blob := strBlob("lib", "\x00unrelated\x00")
	engine := NewEngine([]model.Blob{blob})

	defs := []*model.Definition{{
		Name: "Layer",
		Members: []model.Property{{
			Kind:   model.KindMethod,
			Name:   "resize",
			Params: []model.Parameter{{Name: "width"}},
		}},
	}}

	engine.Apply(defs)

	if engine.Recovered() != 0 {
		t.Errorf("Recovered() = %d, want 0", engine.Recovered())
	}
	if len(defs[0].Members[0].Params[0].Desc) != 0 {
		t.Error("a method never found in any blob should be left untouched")
	}
}

func TestRemoveCommaSplitArtifactsRemovesSpaceNamedGarbage(t *testing.T) {
	m := &model.Property{
		Params: []model.Parameter{
			{Name: "bounds"},
			{Name: "synthesized garbage token", WasSpaceName: true},
		},
	}
	matches := []model.ParamMatch{
		{Name: "bounds", Desc: "the bounds, clipped, resized", Source: model.SourceLocal},
	}

	removeCommaSplitArtifacts(m, matches)

	if len(m.Params) != 1 {
		t.Fatalf("got %d params, want 1 (the space-named garbage should be removed)", len(m.Params))
	}
	if m.Params[0].Name != "bounds" {
		t.Errorf("remaining param = %q, want bounds", m.Params[0].Name)
	}
}
