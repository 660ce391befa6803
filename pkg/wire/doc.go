// Package wire implements the RouterOS API wire format: the variable-length
// integer used for word lengths and the zero-length sentence terminator,
// word/sentence encoding, a
// fragmentation-tolerant sentence parser, and the projection of reply
// sentences into flat records.
//
// None of the types here perform I/O; pkg/transport drives them against a
// net.Conn.
package wire
