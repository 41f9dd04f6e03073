// Package cli provides the interactive command-line surface of the chat
// assistant.
//
// It wires configuration, the configured store and the chat orchestrator into
// a REPL. Typical flow: register or log in, then type messages; every line
// that is not a command is sent to the assistant.
//
// Key features:
//   - Register / Login / Logout
//   - New, clear, list, load and delete conversations
//   - Model and temperature selection
//   - Context memory summary
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
