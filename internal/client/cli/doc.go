// Package cli provides the interactive crmkeeper command-line client.
//
// It wires configuration, the local SQLite store, the session store and the
// record collections into a read–eval–print loop. The user registers or logs
// in, then manages job applications, community tasks, projects and courses
// and looks at the dashboard.
//
// Records live in memory for the lifetime of the process; only identities and
// the active session are persisted.
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
