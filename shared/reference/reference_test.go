package reference_test

import (
	"strconv"
	"strings"
	"testing"
	"tourdesk/shared/reference"
)

func TestNew(t *testing.T) {
	ref := reference.New()

	parts := strings.Split(ref, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts in %q, got %d", ref, len(parts))
	}

	if parts[0] != reference.Prefix {
		t.Errorf("expected prefix %q, got %q", reference.Prefix, parts[0])
	}

	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		t.Errorf("expected unix timestamp, got %q", parts[1])
	}

	if len(parts[2]) != 6 {
		t.Errorf("expected 6-char suffix, got %q", parts[2])
	}
	if parts[2] != strings.ToUpper(parts[2]) {
		t.Errorf("expected uppercase suffix, got %q", parts[2])
	}
}

func TestNew_Unique(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		ref := reference.New()
		if seen[ref] {
			t.Fatalf("duplicate reference generated: %s", ref)
		}
		seen[ref] = true
	}
}
