package gstin

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid maharashtra", "27AAPFU0939F1ZV", true},
		{"valid with whitespace", "  27aapfu0939f1zv ", true},
		{"empty", "", false},
		{"too short", "27AAPFU0939F1Z", false},
		{"too long", "27AAPFU0939F1ZVX", false},
		{"bad state code", "00AAPFU0939F1ZV", false},
		{"unassigned state code", "99AAPFU0939F1ZV", false},
		{"missing Z at position 14", "27AAPFU0939F1AV", false},
		{"digits in pan letters", "27AAP4U0939F1ZV", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.value); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestStateLookup(t *testing.T) {
	if got := StateCode("27AAPFU0939F1ZV"); got != "27" {
		t.Errorf("StateCode = %q, want 27", got)
	}
	if got := StateName("27"); got != "Maharashtra" {
		t.Errorf("StateName(27) = %q", got)
	}
	if got := StateName("99"); got != "" {
		t.Errorf("StateName(99) = %q, want empty", got)
	}
}

func TestSameState(t *testing.T) {
	if !SameState("27AAPFU0939F1ZV", "27BBPFU0939F1ZV") {
		t.Error("expected same state for two 27-prefixed GSTINs")
	}
	if SameState("27AAPFU0939F1ZV", "29AAPFU0939F1ZV") {
		t.Error("expected different states for 27 vs 29")
	}
	if SameState("", "27AAPFU0939F1ZV") {
		t.Error("empty GSTIN must not match any state")
	}
}
