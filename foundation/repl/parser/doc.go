// Package parser parses command parameters.
//
// The remainder of a command line is a whitespace separated list of tokens.
// A token of the form name=value is a keyed parameter, every other token is
// positional. Keys may be abbreviated as long as the abbreviation is
// unambiguous among the names the command allows:
//
//	p, err := parser.Parse("key1=value1 value3 key0=wuff", parser.Names("key1a", "key2", "key0"))
//	p.Get("key1a")     // "value1", true
//	p.Positional(0)    // "value3", true
//
// Values can be abbreviated too when read through GetFrom with the list of
// allowed values.
package parser
