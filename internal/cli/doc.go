// Package cli provides the interactive paybook command-line client.
//
// It wires configuration, the local database and the payroll services into
// a REPL. A session persisted by an earlier run is restored on start.
//
// Commands when logged out: register, login, whoami, help, exit.
// Once logged in: list, add, edit, pay, delete, report, months, positions,
// export and logout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
