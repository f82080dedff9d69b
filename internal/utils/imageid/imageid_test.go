package imageid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if !strings.HasPrefix(id, "img_") {
			t.Fatalf("New() = %q, want img_ prefix", id)
		}
		if id != strings.ToLower(id) {
			t.Fatalf("New() = %q, want lowercase", id)
		}
		if seen[id] {
			t.Fatalf("New() produced duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "generated id", value: New(), want: true},
		{name: "missing prefix", value: "01hv3q2z8k9w4x5y6z7a8b9c0d", want: false},
		{name: "wrong prefix", value: "doc_01hv3q2z8k9w4x5y6z7a8b9c0d", want: false},
		{name: "garbage", value: "img_not-a-ulid", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.value); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
