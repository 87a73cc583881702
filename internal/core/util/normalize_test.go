package util

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"03123456", "+96103123456"},    // no 961 prefix, digits kept as-is
		{"96103123456", "+96103123456"}, // prefix stripped, then re-added canonically
		{"(03) 123 456", "+96103123456"},
		{"70-123-456", "+96170123456"},
		{"961 3 123 456", ""}, // 7 digits after stripping the prefix
		{"1234567", ""},       // too short
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sweets", "sweets"},
		{" Sweets ", "sweets"},
		{"SWEETS", "sweets"},
		{"daily-platters", "daily-platters"},
		{"pastries", "daily-platters"}, // unrecognized values fall back
		{"", "daily-platters"},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePassword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"admin123", "admin123"},
		{" admin 123 ", "admin123"},
		{"admin\t123\n", "admin123"},
		{"admin 123", "admin123"},                // non-breaking space
		{"ａｄｍｉｎ", "admin"},   // fullwidth letters, NFKC
	}
	for _, tt := range tests {
		if got := NormalizePassword(tt.in); got != tt.want {
			t.Errorf("NormalizePassword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate(abcdef, 3) = %q", got)
	}
	// Rune-safe for multibyte input
	if got := Truncate("béirut", 2); got != "bé" {
		t.Errorf("Truncate(béirut, 2) = %q", got)
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID("item")
	b := GenerateID("item")
	if !strings.HasPrefix(a, "item_") {
		t.Errorf("GenerateID prefix missing: %q", a)
	}
	if a == b {
		t.Errorf("GenerateID produced duplicate ids: %q", a)
	}
}
