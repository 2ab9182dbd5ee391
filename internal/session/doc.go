// Package session implements the kiosk conversation persistence core:
// a key-value Store for session records, a lifecycle Manager enforcing
// the inactivity timeout, and a cancellable Watcher polling for the
// pre-expiry warning and the timeout itself.
//
// Persistence is best-effort. A kiosk losing a conversation is
// recoverable (the user re-answers a few questions); a crash is not.
// Store operations therefore swallow backend failures, log them, and
// degrade to "no session" instead of propagating errors to the UI.
// The one exception is a quota failure on write, which the Manager
// answers with a single sweep-and-retry cycle.
//
// Liveness is lazy: a record is live while its last recorded activity
// is younger than the timeout, and an expired record is deleted on the
// read that discovers it. There is no background sweeper; stale records
// linger until the next read or the opportunistic sweep in InitSession.
package session
