package xmldef

import "testing"

func TestSanitizeMemberName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"normalName", "normalName"},
		{"weird name!", "weird_name_"},
		{"a.b[2]", "a.b[2]"},
		{"has-dash", "has_dash"},
	}
	for _, tt := range tests {
		if got := sanitizeMemberName(tt.in); got != tt.want {
			t.Errorf("sanitizeMemberName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractDesc(t *testing.T) {
	got := extractDesc("Short summary.", "Longer  detail  line.\nSecond line.")
	want := []string{"Short summary.", "Longer detail line.", "Second line."}
	if len(got) != len(want) {
		t.Fatalf("extractDesc = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractDescEmpty(t *testing.T) {
	if got := extractDesc("", ""); got != nil {
		t.Errorf("extractDesc(\"\", \"\") = %v, want nil", got)
	}
}

func TestStripOptionalToken(t *testing.T) {
	got := stripOptionalToken("the width (Optional)")
	if got != "the width" {
		t.Errorf("stripOptionalToken = %q, want %q", got, "the width")
	}
}

func TestContainsOptional(t *testing.T) {
	if !containsOptional([]string{"this parameter is optional"}) {
		t.Error("containsOptional should detect the word optional case-insensitively")
	}
	if containsOptional([]string{"nothing special here"}) {
		t.Error("containsOptional false positive")
	}
}
