// Package cli provides the interactive notto command-line client.
//
// It wires configuration, the local store, the API client, the services
// and the background sync engine behind a small REPL. Typical flow: log
// in (online, falling back to the cached account when the server is
// unreachable), edit notes locally, and let the engine reconcile them.
//
// Commands:
//   - register, login, recover, passwd, logout
//   - new, edit, show, list, delete
//   - conflicts, resolve
//   - sync, status
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
