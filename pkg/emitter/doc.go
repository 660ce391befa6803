// Package emitter provides a small synchronous publish/subscribe registry,
// the mechanism the routeros client uses to surface connection lifecycle
// events (connect, error, close, end) to callers.
package emitter
