// Package shell implements the "!command" passthrough of the REPL.
//
// The command is handed verbatim to the platform shell. Its output is
// echoed between [SHELL OUTPUT] and [END SHELL OUTPUT] markers; a failure
// becomes an [EXCEPTION] line.
package shell
