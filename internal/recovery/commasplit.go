package recovery

import (
	"sort"
	"strings"
	"unicode"

	"github.com/cwbudde/esxdts/internal/identkind"
	"github.com/cwbudde/esxdts/internal/model"
)

// removeCommaSplitArtifacts implements spec section 4.4's "Comma-split
// removal": when the local-window matches' descriptions carry commas and
// the method has more XML parameters than local-window matches, the
// upstream generator exploded a single comma-bearing description into
// several spurious XML parameters. Remove as many as there are commas (or
// every candidate, if there are fewer), ranked by how strongly each
// unmatched parameter looks like an artifact.
func removeCommaSplitArtifacts(m *model.Property, matches []model.ParamMatch) {
	commaCount := 0
	localCount := 0
	for _, match := range matches {
		if match.Source != model.SourceLocal {
			continue
		}
		localCount++
		commaCount += strings.Count(match.Desc, ",")
	}
	if commaCount == 0 || len(m.Params) <= localCount {
		return
	}

	matchedNames := make(map[string]bool, len(matches))
	for _, match := range matches {
		matchedNames[match.Name] = true
	}

	type candidate struct {
		index    int
		priority int
	}
	var candidates []candidate
	for i, p := range m.Params {
		if matchedNames[p.Name] {
			continue
		}
		if pr := removalPriority(p); pr > 0 {
			candidates = append(candidates, candidate{index: i, priority: pr})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority < candidates[j].priority
	})

	n := commaCount
	if n > len(candidates) {
		n = len(candidates)
	}
	remove := make(map[int]bool, n)
	for _, c := range candidates[:n] {
		remove[c.index] = true
	}

	kept := m.Params[:0]
	for i, p := range m.Params {
		if remove[i] {
			continue
		}
		kept = append(kept, p)
	}
	m.Params = kept
}

// removalPriority implements the three-tier ranking table of spec section
// 4.4. It returns 0 for a parameter that matches none of the patterns and
// is therefore not a removal candidate at all.
func removalPriority(p model.Parameter) int {
	if p.WasSpaceName {
		return 1
	}
	if strings.Contains(p.Name, " ") && len(strings.Fields(p.Name)) >= 3 {
		return 1
	}
	if n := len(p.Name); n > 0 {
		switch p.Name[n-1] {
		case '.', '!', '?', ',':
			return 1
		}
	}
	if p.Name != "" && unicode.IsDigit(rune(p.Name[0])) {
		return 2
	}
	if identkind.IsPlaceholder(p.Name) {
		return 3
	}
	return 0
}
