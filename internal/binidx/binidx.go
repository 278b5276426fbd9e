// Package binidx builds the per-blob string index described in spec
// section 4.3: a single linear scan of each binary blob that yields an
// ordinal-ordered sequence of plausible text strings and a lookup table
// from exact text to the entries sharing it.
package binidx

import (
	"sync"
	"unicode/utf8"

	"github.com/cwbudde/esxdts/internal/model"
)

const (
	minStringLen = 1
	maxStringLen = 500
)

// Build scans one blob and returns its string index. The scan is a single
// linear pass; entries reference the blob's own decoded string (shared
// between Entries and ByText, never duplicated), per spec section 5's
// resource policy.
func Build(blob model.Blob) *model.BinaryIndex {
	idx := &model.BinaryIndex{
		BlobName: blob.Name,
		ByText:   make(map[string][]model.StringIndexEntry),
	}

	data := blob.Bytes
	ordinal := 0
	i := 0
	for i < len(data) {
		if data[i] == 0 {
			i++
			continue
		}
		start := i
		for i < len(data) && data[i] != 0 {
			i++
		}
		chunk := data[start:i]
		if len(chunk) < minStringLen || len(chunk) >= maxStringLen {
			continue
		}
		if !utf8.Valid(chunk) {
			continue
		}
		s := string(chunk)
		if !looksLikeText(s) {
			continue
		}

		entry := model.StringIndexEntry{
			Text:       s,
			ByteOffset: start,
			Ordinal:    ordinal,
		}
		idx.Entries = append(idx.Entries, entry)
		idx.ByText[s] = append(idx.ByText[s], entry)
		ordinal++
	}

	return idx
}

// BuildAll scans every blob. Per-blob scanning is independent and may run
// concurrently without observable effect (spec section 5); results are
// returned in the same order as blobs regardless of completion order, so
// that any later first-seen-wins merge is deterministic.
func BuildAll(blobs []model.Blob) []*model.BinaryIndex {
	out := make([]*model.BinaryIndex, len(blobs))
	var wg sync.WaitGroup
	for i, b := range blobs {
		wg.Add(1)
		go func(i int, b model.Blob) {
			defer wg.Done()
			out[i] = Build(b)
		}(i, b)
	}
	wg.Wait()
	return out
}

// looksLikeText implements spec section 4.3's text heuristic: at least 80%
// of the string's characters must be ASCII printable, tab, newline,
// carriage return, or a codepoint of 160 or above.
func looksLikeText(s string) bool {
	total := 0
	good := 0
	for _, r := range s {
		total++
		if isTextRune(r) {
			good++
		}
	}
	if total == 0 {
		return false
	}
	return float64(good)/float64(total) >= 0.8
}

func isTextRune(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return true
	}
	if r >= 32 && r < 127 {
		return true
	}
	return r >= 160
}
