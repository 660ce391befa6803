// Package log defines the structured protocol-event logging surface: raw
// sentences, login/connection state changes, and errors. pkg/transport
// reports every sentence crossing the wire through it and the client
// reports the transition to the connected state. Events are plain structs
// an application can render however it likes; Noop discards them,
// SlogAdapter renders them through log/slog, and EncodeEvent gives a
// canonical CBOR form for durable event logs.
package log
