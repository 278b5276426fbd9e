package recovery

import (
	"strings"

	"github.com/cwbudde/esxdts/internal/identkind"
	"github.com/cwbudde/esxdts/internal/model"
)

// applyRepairs implements spec section 4.4's "Name and description
// repair": each ParamMatch is bound to the first still-unmatched XML
// parameter sharing its name, or, failing that and only in full-recovery
// mode, to the parameter sitting at the match's own local-window position
// if that parameter is still an unmatched placeholder. A local-window
// position of 0 is the entry immediately left of the method name in the
// binary, which corresponds to the method's *last* parameter, so the
// position is mirrored before it's used as a params index.
func applyRepairs(m *model.Property, matches []model.ParamMatch) {
	adopted := make([]bool, len(m.Params))

	for _, match := range matches {
		target := -1
		for i, p := range m.Params {
			if !adopted[i] && p.Name == match.Name {
				target = i
				break
			}
		}

		if target == -1 && m.NeedsFullBinaryRecovery && match.Source == model.SourceLocal && match.LocalPos < len(m.Params) {
			pos := len(m.Params) - 1 - match.LocalPos
			if !adopted[pos] && identkind.IsPlaceholder(m.Params[pos].Name) {
				m.Params[pos].Name = match.Name
				target = pos
			}
		}

		if target == -1 {
			continue
		}
		adopted[target] = true

		p := &m.Params[target]
		if len(p.Desc) == 0 || m.NeedsFullBinaryRecovery {
			p.Desc = []string{strings.TrimSpace(match.Desc)}
		}
		if descMentionsOptional(p.Desc) {
			p.Optional = true
		}
	}
}

func descMentionsOptional(lines []string) bool {
	for _, l := range lines {
		if strings.Contains(strings.ToLower(l), "optional") {
			return true
		}
	}
	return false
}
