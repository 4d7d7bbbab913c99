package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2026-08-15", false},
		{"2026-02-29", true},
		{"15-08-2026", true},
		{"2026-08-15T00:00:00Z", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := parseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("parseDate(%q) error does not wrap ErrInvalidInput", tt.in)
		}
	}
}

func TestParseIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := parseIDs([]string{a.String(), b.String()})
	if err != nil {
		t.Fatalf("parseIDs: %v", err)
	}
	if ids[0] != a || ids[1] != b {
		t.Errorf("parseIDs order mismatch: got %v, want [%v %v]", ids, a, b)
	}

	if _, err := parseIDs([]string{a.String(), "not-a-uuid"}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("parseIDs with a malformed entry: error = %v, want ErrInvalidID", err)
	}
}
