// File: stringx_test.go
// Title: Tests for Core String Utilities
// Description: Table-driven tests for the string helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17

package stringx

import (
	"reflect"
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newline", "\t\r\n", true},
		{"text", " a ", false},
		{"unicode space", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsNotBlank(tt.input); got == tt.want {
				t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.want)
			}
		})
	}
}

func TestHasPrefixFold(t *testing.T) {
	tests := []struct {
		s, prefix string
		want      bool
	}{
		{"canonical", "can", true},
		{"Canonical", "CAN", true},
		{"canonical", "canonical", true},
		{"canonical", "canonicals", false},
		{"polar", "can", false},
		{"anything", "", true},
		{"Straße", "STRA", true},
		{"", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.s+"/"+tt.prefix, func(t *testing.T) {
			if got := HasPrefixFold(tt.s, tt.prefix); got != tt.want {
				t.Errorf("HasPrefixFold(%q, %q) = %v, want %v", tt.s, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestSplitKeyword(t *testing.T) {
	tests := []struct {
		line          string
		wantKeyword   string
		wantRemainder string
	}{
		{"echo hello world", "echo", "hello world"},
		{"  echo   hello  ", "echo", "hello"},
		{"exit", "exit", ""},
		{"abs\t3+4i", "abs", "3+4i"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kw, rest := SplitKeyword(tt.line)
			if kw != tt.wantKeyword || rest != tt.wantRemainder {
				t.Errorf("SplitKeyword(%q) = (%q, %q), want (%q, %q)",
					tt.line, kw, rest, tt.wantKeyword, tt.wantRemainder)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("  a=1   b \t c=  ")
	want := []string{"a=1", "b", "c="}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %q, want %q", got, want)
	}
	if got := Tokens("   "); len(got) != 0 {
		t.Errorf("Tokens(blank) = %q, want none", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s        string
		max      int
		ellipsis string
		want     string
	}{
		{"hello", 10, "...", "hello"},
		{"hello world", 8, "...", "hello..."},
		{"hello", 2, "...", "he"},
		{"hello", 0, "...", ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.max, tt.ellipsis); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}

func TestFromBlankDefault(t *testing.T) {
	if got := FromBlankDefault("> ", "$ "); got != "> " {
		t.Errorf("FromBlankDefault() = %q", got)
	}
	if got := FromBlankDefault(" ", "$ "); got != "$ " {
		t.Errorf("FromBlankDefault() = %q", got)
	}
}
