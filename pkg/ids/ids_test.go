package ids

import (
	"strings"
	"testing"
)

func TestPrefixes(t *testing.T) {
	g := NewGenerator()
	tests := []struct {
		id     string
		prefix string
	}{
		{g.Group(), GroupPrefix},
		{g.Option(), OptionPrefix},
		{g.Label(), LabelPrefix},
		{g.Description(), DescriptionPrefix},
	}
	for _, tt := range tests {
		if !strings.HasPrefix(tt.id, tt.prefix) {
			t.Errorf("id %q should carry prefix %q", tt.id, tt.prefix)
		}
	}
}

func TestUniqueness(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.Option()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSequentialIsDeterministic(t *testing.T) {
	g := NewSequential()
	if got := g.Option(); got != OptionPrefix+"000001" {
		t.Errorf("first id = %q, want %q", got, OptionPrefix+"000001")
	}
	if got := g.Option(); got != OptionPrefix+"000002" {
		t.Errorf("second id = %q, want %q", got, OptionPrefix+"000002")
	}
}

func TestPrefixesAreDistinct(t *testing.T) {
	prefixes := []string{GroupPrefix, OptionPrefix, LabelPrefix, DescriptionPrefix}
	for i, a := range prefixes {
		for j, b := range prefixes {
			if i != j && strings.HasPrefix(a, b) {
				t.Errorf("prefix %q shadows %q", a, b)
			}
		}
	}
}
