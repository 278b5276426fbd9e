// Package esxdts is the recovery pipeline's public entry point: it wires
// the XML definition parser, the recovery engine, and the sort/prune/emit
// collaborators into the single Convert operation spec section 6 names,
// the way the teacher's pkg/dwscript package wires lexer, parser, semantic
// analysis, and the interpreter into one call.
package esxdts

import (
	"aqwari.net/xml/xmltree"

	"github.com/cwbudde/esxdts/internal/model"
	"github.com/cwbudde/esxdts/internal/prune"
	"github.com/cwbudde/esxdts/internal/recovery"
	"github.com/cwbudde/esxdts/internal/sortdef"
	"github.com/cwbudde/esxdts/internal/xmldef"
	"github.com/cwbudde/esxdts/pkg/emitter"
)

// Blob is the Go shape of spec section 6's {name, bytes} input: name is
// opaque to the pipeline, bytes is the raw content of one native library
// file.
type Blob struct {
	Name  string
	Bytes []byte
}

// Stats reports how much corruption the pipeline found and fixed. It is
// never part of Convert's contract (spec section 6 fixes that signature
// exactly); ConvertWithStats exists for the CLI's --verbose output.
type Stats struct {
	Definitions             int
	Methods                 int
	MethodsNeedingRecovery  int
	MethodsRecoveredFromBin int
}

// Convert runs the full recovery pipeline and returns the completed
// TypeScript declaration file text. If blobs is empty, the recovery
// engine is skipped entirely and the output is produced from the XML tree
// alone (spec section 6).
func Convert(xmlDoc *xmltree.Element, blobs []Blob) (string, error) {
	out, _, err := convert(xmlDoc, blobs)
	return out, err
}

// ConvertWithStats is Convert plus a Stats summary, for callers (the CLI)
// that want to report on what was recovered without affecting the
// returned text itself (spec section 7: logging must not affect output).
func ConvertWithStats(xmlDoc *xmltree.Element, blobs []Blob) (string, Stats, error) {
	return convert(xmlDoc, blobs)
}

func convert(xmlDoc *xmltree.Element, blobs []Blob) (string, Stats, error) {
	defs, err := xmldef.ParseDocument(xmlDoc)
	if err != nil {
		return "", Stats{}, err
	}

	stats := Stats{Definitions: len(defs)}
	for _, d := range defs {
		for _, m := range d.Members {
			if m.Kind != model.KindMethod && m.Kind != model.KindIndexer {
				continue
			}
			stats.Methods++
			if m.NeedsFullBinaryRecovery {
				stats.MethodsNeedingRecovery++
			}
		}
	}

	if len(blobs) > 0 {
		engine := recovery.NewEngine(toModelBlobs(blobs))
		engine.Apply(defs)
		stats.MethodsRecoveredFromBin = engine.Recovered()
	}

	prune.Prune(defs)
	sortdef.Sort(defs)

	return emitter.Emit(defs), stats, nil
}

func toModelBlobs(blobs []Blob) []model.Blob {
	out := make([]model.Blob, len(blobs))
	for i, b := range blobs {
		out[i] = model.Blob{Name: b.Name, Bytes: b.Bytes}
	}
	return out
}
