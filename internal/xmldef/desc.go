package xmldef

import "strings"

// extractDesc implements spec section 4.1's description extraction: join
// shortdesc and description text with a newline, re-split on newlines,
// collapse internal double-spaces, trim, and discard empty lines.
func extractDesc(shortdesc, description string) []string {
	joined := shortdesc
	if description != "" {
		if joined != "" {
			joined += "\n"
		}
		joined += description
	}
	if joined == "" {
		return nil
	}

	lines := strings.Split(joined, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = collapseSpaces(line)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// collapseSpaces repeatedly folds runs of two-or-more spaces down to one.
func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

// stripOptionalToken removes the literal "(Optional)" marker (any case)
// from a description line.
func stripOptionalToken(s string) string {
	for _, tok := range []string{"(Optional)", "(optional)", "(OPTIONAL)"} {
		s = strings.ReplaceAll(s, tok, "")
	}
	return strings.TrimSpace(collapseSpaces(s))
}

func containsOptional(lines []string) bool {
	for _, l := range lines {
		if strings.Contains(strings.ToLower(l), "optional") {
			return true
		}
	}
	return false
}
