// Package routeros implements a client for the MikroTik RouterOS API: the
// length-prefixed, sentence-oriented binary protocol routers speak on
// ports 8728 (plain TCP) and 8729 (TLS).
//
// A Client dials a single router, authenticates with either the modern
// or legacy MD5-challenge login flow, executes commands serially, and
// surfaces connection lifecycle events (connect, error, close, end)
// through an emitter.On/Once/Off subscription surface. Every fallible
// operation returns a plain (value, error) pair — the library never
// panics for an expected failure such as a bad login, a device-reported
// trap, or a lost connection.
package routeros
