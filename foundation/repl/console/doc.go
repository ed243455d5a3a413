// Package console provides the consoles the REPL talks to.
//
// The REPL only needs three operations: read a line, write text and flush.
// Stdio implements them on plain streams and is used for pipes, scripts and
// tests. Terminal runs a small bubbletea program per line with completion
// suggestions; Styled colours the message tags of another console. Detect
// picks between them.
package console
