// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small string operations shared by
//              the REPL packages: blank detection, keyword splitting and
//              case-insensitive prefix tests.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-17 v0.3.0: Reduced to the helpers used by the command line engine

// Package stringx provides string helpers for command line processing.
//
// All functions are Unicode-aware and free of side effects. Case-insensitive
// comparisons use simple Unicode case folding (strings.EqualFold semantics).
//
//	keyword, remainder := stringx.SplitKeyword("echo  hello world")
//	// keyword == "echo", remainder == "hello world"
//
//	stringx.HasPrefixFold("Canonical", "CAN") // true
package stringx
