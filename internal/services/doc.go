// Package services holds the application services behind the CLI: the
// employee record store and the account directory with its login session.
//
// Services are synchronous and not safe for concurrent use. Each mutation is
// persisted as a whole-collection snapshot in one key/value write before the
// in-memory state changes, so a failed write leaves both untouched.
package services
