package binidx

import (
	"strings"
	"testing"

	"github.com/cwbudde/esxdts/internal/model"
)

func TestBuildSplitsOnNullBytes(t *testing.T) {
	blob := model.Blob{Name: "lib", Bytes: []byte("\x00hello\x00\x00world\x00")}
	idx := Build(blob)

	if len(idx.Entries) != 2 {
		t.Fatalf("got %d entries, want 2, entries=%+v", len(idx.Entries), idx.Entries)
	}
	if idx.Entries[0].Text != "hello" || idx.Entries[1].Text != "world" {
		t.Errorf("entries = %+v, want hello/world", idx.Entries)
	}
	if idx.Entries[0].Ordinal != 0 || idx.Entries[1].Ordinal != 1 {
		t.Errorf("ordinals not sequential: %+v", idx.Entries)
	}
}

func TestBuildByteOffsets(t *testing.T) {
	blob := model.Blob{Name: "lib", Bytes: []byte("\x00abc\x00de\x00")}
	idx := Build(blob)

	if idx.Entries[0].ByteOffset != 1 {
		t.Errorf("first entry offset = %d, want 1", idx.Entries[0].ByteOffset)
	}
	if idx.Entries[1].ByteOffset != 5 {
		t.Errorf("second entry offset = %d, want 5", idx.Entries[1].ByteOffset)
	}
}

func TestBuildRejectsOversizedRun(t *testing.T) {
	long := strings.Repeat("a", maxStringLen)
	blob := model.Blob{Name: "lib", Bytes: append([]byte{0}, append([]byte(long), 0)...)}
	idx := Build(blob)

	if len(idx.Entries) != 0 {
		t.Errorf("a run of exactly maxStringLen should be rejected, got %d entries", len(idx.Entries))
	}
}

func TestBuildRejectsNonTextRatio(t *testing.T) {
	garble := string([]byte{1, 2, 3, 4, 5, 'a', 'b'})
	blob := model.Blob{Name: "lib", Bytes: []byte("\x00" + garble + "\x00")}
	idx := Build(blob)

	if len(idx.Entries) != 0 {
		t.Errorf("mostly-control-byte run should be rejected by the text heuristic, got %+v", idx.Entries)
	}
}

func TestBuildByTextSharesEntries(t *testing.T) {
	blob := model.Blob{Name: "lib", Bytes: []byte("\x00width\x00height\x00width\x00")}
	idx := Build(blob)

	if len(idx.ByText["width"]) != 2 {
		t.Fatalf("ByText[width] has %d entries, want 2", len(idx.ByText["width"]))
	}
}

func TestBuildAllPreservesOrder(t *testing.T) {
	blobs := []model.Blob{
		{Name: "a", Bytes: []byte("\x00alpha\x00")},
		{Name: "b", Bytes: []byte("\x00beta\x00")},
		{Name: "c", Bytes: []byte("\x00gamma\x00")},
	}
	indexes := BuildAll(blobs)

	if len(indexes) != 3 {
		t.Fatalf("got %d indexes, want 3", len(indexes))
	}
	for i, want := range []string{"a", "b", "c"} {
		if indexes[i].BlobName != want {
			t.Errorf("indexes[%d].BlobName = %q, want %q (order not preserved)", i, indexes[i].BlobName, want)
		}
	}
}
