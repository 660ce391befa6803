// Package transport dials the TCP or TLS connection to a RouterOS device
// and turns it into the byte-duplex the command engine drives: a
// connection wrapper that serializes writes, classifies read failures into
// the terminal conditions the engine and client emitter care about
// (transport error, closed, ended), and optionally logs every sentence
// crossing the wire.
package transport
