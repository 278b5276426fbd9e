// Package paramcache builds the "name: description" dictionaries the
// recovery engine consults when a method's own binary neighborhood
// doesn't carry a parameter's description (spec section 4.4,
// "Preparation" and "Cache enrichment").
package paramcache

import (
	"regexp"

	"github.com/cwbudde/esxdts/internal/model"
)

const maxIdentifierLen = 50

var reNameDesc = regexp.MustCompile(`^([^\s:]+):(.*)$`)

// MatchNameDesc matches the "identifier: description" pattern shared by the
// parameter cache builder and the recovery engine's local-window scan: an
// identifier with no spaces, at most maxIdentifierLen characters, and a
// colon within that span.
func MatchNameDesc(s string) (name, desc string, ok bool) {
	m := reNameDesc.FindStringSubmatch(s)
	if m == nil || len(m[1]) > maxIdentifierLen {
		return "", "", false
	}
	return m[1], m[2], true
}

// BuildLocal scans one blob's string index for "identifier: description"
// patterns. When the same identifier appears more than once, the longer
// description wins.
func BuildLocal(idx *model.BinaryIndex) map[string]string {
	cache := make(map[string]string)
	for _, e := range idx.Entries {
		name, desc, ok := MatchNameDesc(e.Text)
		if !ok {
			continue
		}
		if existing, ok := cache[name]; !ok || len(desc) > len(existing) {
			cache[name] = desc
		}
	}
	return cache
}

// Merge combines per-blob caches into a single master cache, first-seen-wins
// across blobs in the order given (spec section 9, Open Question (a): the
// merge order is the blob list order, so any implementation that instead
// restricts lookups to a locality window diverges from this contract by
// definition).
func Merge(perBlob []map[string]string) map[string]string {
	master := make(map[string]string)
	for _, cache := range perBlob {
		for name, desc := range cache {
			if _, ok := master[name]; !ok {
				master[name] = desc
			}
		}
	}
	return master
}
