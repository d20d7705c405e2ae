package emojilock

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWithGroupSize(t *testing.T) {
	fastKDF(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		opts      []Option
		groupSize int
	}{
		{"default", nil, DefaultGroupSize},
		{"groups of 4", []Option{WithGroupSize(4)}, 4},
		{"groups of 1", []Option{WithGroupSize(1)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := Encrypt(ctx, "grouped output", "password", tt.opts...)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}

			groups := strings.Split(sealed, " ")
			for i, g := range groups[:len(groups)-1] {
				if n := utf8.RuneCountInString(g); n != tt.groupSize {
					t.Fatalf("group %d has %d symbols, want %d", i, n, tt.groupSize)
				}
			}

			// Grouping never affects decodability.
			decrypted, err := Decrypt(ctx, sealed, "password")
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}
			if decrypted != "grouped output" {
				t.Errorf("round trip = %q", decrypted)
			}
		})
	}
}

func TestWithoutGrouping(t *testing.T) {
	fastKDF(t)

	sealed, err := Encrypt(context.Background(), "ungrouped", "password", WithoutGrouping())
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if strings.Contains(sealed, " ") {
		t.Error("WithoutGrouping() output contains separators")
	}
}

func TestWithGroupSize_NonPositiveDisables(t *testing.T) {
	fastKDF(t)

	sealed, err := Encrypt(context.Background(), "ungrouped", "password", WithGroupSize(-3))
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if strings.Contains(sealed, " ") {
		t.Error("non-positive group size should disable grouping")
	}
}
