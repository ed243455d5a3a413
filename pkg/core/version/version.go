// ============================================================================
// mREPL - Line-oriented command shell engine
// ============================================================================
//
// Package:     version
// Description: Central version management for the engine and its binaries
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants of the engine and the bundled binaries
const (
	// Platform version
	Platform = "1.0.0"

	// Binary versions
	MREPL = "1.0.0"
)

// Commit and BuildDate are set at link time via -ldflags -X
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given binary name
func ComponentVersion(name string) string {
	switch name {
	case "mrepl":
		return MREPL
	default:
		return Platform
	}
}

// String returns the multi line version banner of a binary
func String(name string) string {
	return fmt.Sprintf("%s %s\nplatform: %s\ncommit:   %s\nbuilt:    %s\ngo:       %s %s/%s\n",
		name, ComponentVersion(name), Platform, Commit, BuildDate,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
