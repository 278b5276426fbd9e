package xmldef

import "strings"

// sanitizeMemberName replaces every character outside [\]0-9a-zA-Z_$.[]
// with an underscore (spec section 4.1, member name sanitization).
// Constructors use "constructor" verbatim and never pass through this.
func sanitizeMemberName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r == '_', r == '$', r == '.', r == '[', r == ']':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
