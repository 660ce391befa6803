package transport

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"

	"github.com/Hussseinkizz/routeros-go/pkg/log"
	"github.com/Hussseinkizz/routeros-go/pkg/wire"
)

// Sentinel conditions a Conn's read loop can terminate with. The command
// engine and client emitter translate these into the public error
// taxonomy; transport itself only needs to tell them apart.
var (
	// ErrConnectionClosed means the peer (or the network) ended the
	// connection. Go's net package surfaces this as io.EOF on Read.
	ErrConnectionClosed = errors.New("transport: connection closed")

	// ErrConnectionEnded means the connection was ended locally, by a
	// call to Conn.Close, rather than by the peer.
	ErrConnectionEnded = errors.New("transport: connection ended")
)

// TransportError wraps an unexpected read or write failure — anything
// that isn't a clean close (io.EOF) or a local Close call.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Handler receives the events a Conn's read loop produces. Implementations
// must not block; the read loop calls them synchronously and will not read
// the next sentence until Sentence returns.
type Handler interface {
	// Sentence is called once per fully framed sentence, in arrival order.
	Sentence(words []string)

	// Failed is called exactly once when the read loop terminates, with
	// one of ErrConnectionClosed, ErrConnectionEnded, or a *TransportError.
	Failed(err error)
}

// Conn wraps a dialed net.Conn with the framing and lifecycle semantics
// the command engine depends on: serialized writes, a background read
// loop that reassembles sentences via pkg/wire and classifies how the
// connection ended, and optional structured logging of every sentence
// crossing the wire.
type Conn struct {
	id     string
	nc     net.Conn
	logger log.Logger

	writeMu sync.Mutex

	closeOnce sync.Once
	closed    chan struct{}
}

// NewConn wraps nc. If logger is nil, log.Noop() is used.
func NewConn(nc net.Conn, logger log.Logger) *Conn {
	if logger == nil {
		logger = log.Noop()
	}
	return &Conn{
		id:     uuid.NewString(),
		nc:     nc,
		logger: logger,
		closed: make(chan struct{}),
	}
}

// ID identifies this connection in log events.
func (c *Conn) ID() string { return c.id }

// WriteSentence writes words as one framed sentence. Concurrent calls are
// serialized; a write after Close returns ErrConnectionEnded.
func (c *Conn) WriteSentence(words ...string) error {
	select {
	case <-c.closed:
		return ErrConnectionEnded
	default:
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if _, err := c.nc.Write(wire.EncodeSentence(words...)); err != nil {
		return &TransportError{Op: "write", Err: err}
	}

	c.logger.Log(log.Event{
		ConnectionID: c.id,
		Direction:    log.Outbound,
		Category:     log.CategorySentence,
		Sentence:     words,
	})
	return nil
}

// Serve drives the read loop until the connection ends, calling h for
// each parsed sentence and exactly once with the terminal error. Serve
// blocks; callers run it in its own goroutine.
func (c *Conn) Serve(h Handler) {
	parser := wire.NewParser()
	buf := make([]byte, 4096)

	for {
		n, err := c.nc.Read(buf)
		if n > 0 {
			sentences, perr := parser.Feed(buf[:n])
			for _, s := range sentences {
				c.logger.Log(log.Event{
					ConnectionID: c.id,
					Direction:    log.Inbound,
					Category:     log.CategorySentence,
					Sentence:     s,
				})
				h.Sentence(s)
			}
			if perr != nil {
				h.Failed(&TransportError{Op: "parse", Err: perr})
				return
			}
		}
		if err != nil {
			h.Failed(c.classify(err))
			return
		}
	}
}

// classify maps a Read error to the terminal condition it represents. A
// local Close call unblocks the pending Read with a "use of closed
// network connection" error; classify recognizes that case first so the
// read loop reports ErrConnectionEnded rather than a spurious
// TransportError for a shutdown it was told to perform.
func (c *Conn) classify(err error) error {
	select {
	case <-c.closed:
		return ErrConnectionEnded
	default:
	}

	if errors.Is(err, io.EOF) {
		return ErrConnectionClosed
	}
	if errors.Is(err, net.ErrClosed) {
		return ErrConnectionEnded
	}
	return &TransportError{Op: "read", Err: err}
}

// Close ends the connection locally. It is safe to call more than once
// and from any goroutine, including concurrently with Serve or
// WriteSentence.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.nc.Close()
	})
	return err
}
