// Package cli provides the interactive fridgekeeper command-line client.
//
// It wires configuration, the local session store, the remote API client,
// and an interactive REPL. Typical flow: restore the cached session, then
// execute user commands until exit.
//
// Key features:
//   - Login / Signup / Logout
//   - List fridge items, delete a selection (with confirmation)
//   - Account settings: nickname, notification preference, account deletion
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
