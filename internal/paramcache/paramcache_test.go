package paramcache

import (
	"testing"

	"github.com/cwbudde/esxdts/internal/model"
)

func TestMatchNameDesc(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantOk   bool
		wantName string
		wantDesc string
	}{
		{"simple match", "bounds: the target bounds", true, "bounds", " the target bounds"},
		{"no colon", "just some text", false, "", ""},
		{"name too long", "thisIdentifierNameIsDefinitelyLongerThanFiftyCharactersLong: x", false, "", ""},
		{"name has space", "not a name: description", false, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, desc, ok := MatchNameDesc(tt.in)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if name != tt.wantName || desc != tt.wantDesc {
				t.Errorf("got (%q, %q), want (%q, %q)", name, desc, tt.wantName, tt.wantDesc)
			}
		})
	}
}

func TestBuildLocalLongerDescriptionWins(t *testing.T) {
	idx := &model.BinaryIndex{
		Entries: []model.StringIndexEntry{
			{Text: "bounds: short"},
			{Text: "bounds: a much longer description of the bounds"},
		},
	}

	cache := BuildLocal(idx)
	if cache["bounds"] != " a much longer description of the bounds" {
		t.Errorf("cache[bounds] = %q, want the longer description to win", cache["bounds"])
	}
}

func TestMergeFirstSeenWins(t *testing.T) {
	perBlob := []map[string]string{
		{"width": "from first blob"},
		{"width": "from second blob", "height": "only in second"},
	}

	master := Merge(perBlob)
	if master["width"] != "from first blob" {
		t.Errorf("width = %q, want first-seen-wins", master["width"])
	}
	if master["height"] != "only in second" {
		t.Errorf("height = %q, want only in second", master["height"])
	}
}
