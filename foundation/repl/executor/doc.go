// Package executor defines what a command executor receives and how a
// command with regex variants selects one.
//
// A command may register named patterns. Before its executor runs, the
// remainder of the line is matched against the patterns in registration
// order and the first full match is exposed on the Environment:
//
//	p := executor.NewPatterns().
//		MustAdd("canonical", `(\d+)\s*\+(\d+)i`).
//		MustAdd("polar", `(\d+)\((\d+\.?\d*)\)`)
//
//	m, _ := p.Select("3+4i") // m.Name == "canonical", m.Group(1) == "3"
package executor
