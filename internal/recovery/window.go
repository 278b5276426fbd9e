package recovery

import (
	"strings"

	"github.com/cwbudde/esxdts/internal/model"
	"github.com/cwbudde/esxdts/internal/paramcache"
)

const localWindowByteCutoff = 500

// localWindow implements spec section 4.4's "Local window extraction":
// walk backward from the matched entry's ordinal, taking up to
// paramCount+2 preceding entries, stopping once an entry is more than 500
// bytes before the matched entry. "$$$"-prefixed internal markers are then
// discarded. The returned slice is most-recent-first: index 0 is the entry
// immediately left of the method name in the binary, and corresponds to
// the *last* parameter of the method.
func (e *Engine) localWindow(idx *model.BinaryIndex, matched model.StringIndexEntry, paramCount int) []model.StringIndexEntry {
	budget := paramCount + 2
	var raw []model.StringIndexEntry

	for pos, taken := matched.Ordinal-1, 0; pos >= 0 && taken < budget; pos-- {
		entry := idx.Entries[pos]
		if matched.ByteOffset-entry.ByteOffset > localWindowByteCutoff {
			break
		}
		raw = append(raw, entry)
		taken++
	}

	window := raw[:0]
	for _, entry := range raw {
		if strings.HasPrefix(entry.Text, "$$$") {
			continue
		}
		window = append(window, entry)
	}
	return window
}

// stage1Result is the outcome of scanning a method's local window for
// "name: description" observations (spec section 4.4, "Stage 1 — extract").
type stage1Result struct {
	Matches       []model.ParamMatch
	MethodDesc    string
	HasMethodDesc bool
}

func extractStage1(window []model.StringIndexEntry) stage1Result {
	var result stage1Result
	highest := -1

	for i, e := range window {
		name, desc, ok := paramcache.MatchNameDesc(e.Text)
		if !ok {
			continue
		}
		result.Matches = append(result.Matches, model.ParamMatch{
			Name:     name,
			Desc:     desc,
			Source:   model.SourceLocal,
			LocalPos: i,
		})
		if i > highest {
			highest = i
		}
	}

	candidateIdx := highest + 1
	if candidateIdx >= 0 && candidateIdx < len(window) {
		candidate := window[candidateIdx].Text
		if len(candidate) > 15 && strings.Contains(candidate, " ") && !strings.HasSuffix(candidate, " class") {
			result.MethodDesc = candidate
			result.HasMethodDesc = true
		}
	}

	return result
}
