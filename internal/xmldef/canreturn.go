package xmldef

import (
	"regexp"
	"strings"

	"github.com/cwbudde/esxdts/internal/model"
	"github.com/cwbudde/esxdts/internal/typenorm"
)

var (
	reCanReturnAccept = regexp.MustCompile(`^(.*?)Can(?: also)? (?:accept|return):(.*)$`)
	reArraysOfArrays  = regexp.MustCompile(`(?i)Arrays? of Arrays? of`)
)

// applyCanReturnAccept implements spec section 4.1's "'Can return/Can
// accept' parsing": when a member's first description line announces
// additional accepted/returned types in prose, fold those types into the
// member's type union and replace the description line with its prefix.
func applyCanReturnAccept(m *model.Property) {
	if len(m.Desc) == 0 {
		return
	}
	match := reCanReturnAccept.FindStringSubmatch(m.Desc[0])
	if match == nil {
		return
	}
	tail := match[2]
	if strings.Contains(tail, "containing") || reArraysOfArrays.MatchString(tail) {
		return
	}

	for _, part := range splitCommaOr(tail) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m.Types = append(m.Types, typenorm.Normalize(part))
	}

	filtered := m.Types[:0]
	for _, t := range m.Types {
		if typenorm.IsAny(t) {
			continue
		}
		filtered = append(filtered, t)
	}
	m.Types = filtered

	m.Desc[0] = strings.TrimSpace(match[1])
	if m.Desc[0] == "" {
		m.Desc = m.Desc[1:]
	}
}

// splitCommaOr splits on commas and the literal " or " separator.
func splitCommaOr(s string) []string {
	s = strings.ReplaceAll(s, " or ", ",")
	return strings.Split(s, ",")
}
