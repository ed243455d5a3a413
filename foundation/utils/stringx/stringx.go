// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string operations used while turning a raw
//              input line into a keyword, a remainder and parameter tokens.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-17 v0.3.0: SplitKeyword, HasPrefixFold, Tokens

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one non-whitespace character
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// HasPrefixFold reports whether s begins with prefix, ignoring case.
// An empty prefix matches every string.
func HasPrefixFold(s, prefix string) bool {
	for prefix != "" {
		if s == "" {
			return false
		}
		pr, pn := utf8.DecodeRuneInString(prefix)
		sr, sn := utf8.DecodeRuneInString(s)
		if pr != sr && !equalFoldRune(pr, sr) {
			return false
		}
		prefix = prefix[pn:]
		s = s[sn:]
	}
	return true
}

func equalFoldRune(a, b rune) bool {
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// SplitKeyword splits a trimmed command line at the first space into the
// keyword and the remainder. The remainder has leading whitespace removed.
func SplitKeyword(line string) (keyword, remainder string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimLeftFunc(line[idx:], unicode.IsSpace)
}

// Tokens splits s on runs of whitespace and drops empty tokens
func Tokens(s string) []string {
	return strings.Fields(s)
}

// Truncate truncates a string to maxLen runes, appending ellipsis when it was cut
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// FromBlankDefault returns s, or defaultValue when s is blank
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}
