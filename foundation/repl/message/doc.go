// Package message implements the diagnostic message sink of the REPL.
//
// Executors and the dispatcher record messages while a command runs; the
// REPL fetches the rendered block after every dispatch cycle:
//
//	sink := message.New()
//	sink.Error("e")
//	sink.Warning("w")
//	sink.Info("i")
//	sink.Fetch() // "[ERROR] e\n[WARNING] w\n[INFO] i\n"
//	sink.Fetch() // ""
package message
