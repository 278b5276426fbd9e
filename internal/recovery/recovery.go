// Package recovery implements the cross-reference stage of the pipeline:
// for every method in the definition tree, it locates the method's name in
// the binary string index, extracts the strings immediately surrounding
// it, and repairs parameter names, parameter descriptions, spurious
// parameters, and method descriptions (spec section 4.4).
//
// Running Apply twice on an already-repaired tree is a no-op: every rule
// either leaves a field alone or writes the value it would write again
// (spec section 4.4, "Idempotence").
package recovery

import (
	"github.com/cwbudde/esxdts/internal/binidx"
	"github.com/cwbudde/esxdts/internal/model"
	"github.com/cwbudde/esxdts/internal/paramcache"
)

// Engine holds the read-only indexes the recovery pass consults. It is
// built once per Convert call and never mutated afterward.
type Engine struct {
	blobIndexes []*model.BinaryIndex
	master      map[string]string
	recovered   int
}

// NewEngine scans every blob and builds the master parameter cache. Blobs
// are scanned in the order given; the master cache merge is first-seen-wins
// over that same order (spec section 5).
func NewEngine(blobs []model.Blob) *Engine {
	indexes := binidx.BuildAll(blobs)

	perBlob := make([]map[string]string, len(indexes))
	for i, idx := range indexes {
		perBlob[i] = paramcache.BuildLocal(idx)
	}

	return &Engine{
		blobIndexes: indexes,
		master:      paramcache.Merge(perBlob),
	}
}

// Apply repairs every method and indexer in defs in place.
func (e *Engine) Apply(defs []*model.Definition) {
	for _, def := range defs {
		for i := range def.Members {
			m := &def.Members[i]
			if m.Kind != model.KindMethod && m.Kind != model.KindIndexer {
				continue
			}
			e.recoverMethod(m)
		}
	}
}

// Recovered returns how many methods were actually found in some blob's
// string index, for the CLI's --verbose summary.
func (e *Engine) Recovered() int {
	return e.recovered
}

// recoverMethod implements spec section 4.4's "Per method" + stage 1/2.
func (e *Engine) recoverMethod(m *model.Property) {
	entry, idx, found := e.findMethod(m.Name)
	if !found {
		return
	}
	e.recovered++

	window := e.localWindow(idx, entry, len(m.Params))
	info := extractStage1(window)
	matches := append([]model.ParamMatch(nil), info.Matches...)
	matches = e.enrichFromCache(m.Params, matches)

	removeCommaSplitArtifacts(m, matches)
	applyRepairs(m, matches)

	if len(m.Desc) == 0 && info.HasMethodDesc {
		m.Desc = []string{info.MethodDesc}
	}
}

// findMethod looks up m's name in each blob's index in blob order and
// returns the first match (spec section 4.4: "For each blob in order...
// take the first match").
func (e *Engine) findMethod(name string) (model.StringIndexEntry, *model.BinaryIndex, bool) {
	for _, idx := range e.blobIndexes {
		if entries, ok := idx.ByText[name]; ok && len(entries) > 0 {
			return entries[0], idx, true
		}
	}
	return model.StringIndexEntry{}, nil, false
}
