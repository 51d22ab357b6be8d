// Package event provides Signal, the typed notification channel used between
// the scroll controller, its ticker and its input adapters.
//
// Subscriptions are identified by the pair (owner, handler). Detach(owner)
// drops everything an owner attached; the Subscription returned by Attach
// drops a single handler. Both are idempotent and may be called from inside
// a handler while the signal is being posted.
//
// Signals are not safe for concurrent use. Every post, attach and detach is
// expected to happen on the goroutine that drives the frame loop.
package event
