package routeros

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Hussseinkizz/routeros-go/pkg/emitter"
	"github.com/Hussseinkizz/routeros-go/pkg/log"
	"github.com/Hussseinkizz/routeros-go/pkg/transport"
	"github.com/Hussseinkizz/routeros-go/pkg/wire"
)

// DefaultTimeout is the connect timeout applied when Options.Timeout is
// zero.
const DefaultTimeout = 30 * time.Second

// Options configures a Client. Host is required; Port defaults to 8729
// when SSL is set, else 8728. Timeout defaults to DefaultTimeout.
type Options struct {
	Host    string
	Port    int
	SSL     bool
	Timeout time.Duration

	// Logger receives a structured event for every sentence sent and
	// received and for the transition to the connected state; errors are
	// not logged. Nil disables logging.
	Logger log.Logger
}

// Client is a single-router RouterOS API connection. A Client processes
// at most one command at a time; it does not pool or multiplex
// connections, and it never reconnects on its own — after a
// transport-level error the caller is expected to construct a new
// Client (see DESIGN.md's Open Question notes).
type Client struct {
	opts Options

	emitter *emitter.Emitter

	mu        sync.Mutex
	conn      *transport.Conn
	connected bool

	cmdMu    sync.Mutex // serializes RunCommand calls
	activeCh chan commandEvent
}

// commandEvent is what the transport read loop feeds to whichever
// RunCommand call currently owns the connection.
type commandEvent struct {
	words []string
	err   error
}

// NewClient constructs a Client bound to opts. It does not dial;
// call Connect to open the transport.
func NewClient(opts Options) *Client {
	if opts.Logger == nil {
		opts.Logger = log.Noop()
	}
	return &Client{
		opts:    opts,
		emitter: emitter.New(),
	}
}

// On registers fn to be invoked every time event fires. See pkg/emitter
// for the exact identity/dedup semantics.
func (c *Client) On(event string, fn emitter.Listener) *Client {
	c.emitter.On(event, fn)
	return c
}

// Once registers fn to be invoked at most once for event.
func (c *Client) Once(event string, fn emitter.Listener) *Client {
	c.emitter.Once(event, fn)
	return c
}

// Off removes fn from event's listener set.
func (c *Client) Off(event string, fn emitter.Listener) *Client {
	c.emitter.Off(event, fn)
	return c
}

// Connect dials the router and starts the background read loop. The
// dial (and, for SSL, the TLS handshake) is bounded by opts.Timeout
// (default 30s) or by ctx's own deadline, whichever is tighter.
func (c *Client) Connect(ctx context.Context) error {
	timeout := c.opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	nc, err := transport.Dial(ctx, transport.DialOptions{
		Host:    c.opts.Host,
		Port:    c.opts.Port,
		SSL:     c.opts.SSL,
		Timeout: timeout,
	})
	if err != nil {
		addr := fmt.Sprintf("%s:%d", c.opts.Host, effectivePort(c.opts))
		return &ConnectError{Addr: addr, Err: err}
	}

	conn := transport.NewConn(nc, c.opts.Logger)

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	c.opts.Logger.Log(log.Event{
		ConnectionID: conn.ID(),
		Category:     log.CategoryState,
		StateChange:  &log.StateChangeEvent{NewState: "connected"},
	})

	go conn.Serve(c)

	c.emitter.Emit(EventConnect)
	return nil
}

func effectivePort(opts Options) int {
	if opts.Port != 0 {
		return opts.Port
	}
	if opts.SSL {
		return transport.DefaultTLSPort
	}
	return transport.DefaultPort
}

// Close synchronously tears down the transport and emits EventClose.
// Calling Close before Connect is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.connected = false
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	if err := conn.Close(); err != nil {
		wrapped := &CloseError{Err: err}
		c.emitter.Emit(EventError, wrapped)
		return wrapped
	}

	c.emitter.Emit(EventClose)
	return nil
}

// GetSystemIdentity is shorthand for RunCommand("/system/identity/print", nil).
func (c *Client) GetSystemIdentity() ([]wire.Record, error) {
	return c.RunCommand("/system/identity/print", nil)
}

// Sentence implements transport.Handler: it forwards each parsed
// sentence to whichever RunCommand call currently owns the connection.
func (c *Client) Sentence(words []string) {
	c.mu.Lock()
	ch := c.activeCh
	c.mu.Unlock()

	if ch != nil {
		ch <- commandEvent{words: words}
	}
}

// Failed implements transport.Handler: it classifies the terminal
// condition of the read loop, forwards it to any in-flight command, and
// fires the matching client-lifecycle event.
func (c *Client) Failed(err error) {
	c.mu.Lock()
	ch := c.activeCh
	c.connected = false
	c.mu.Unlock()

	switch {
	case errors.Is(err, transport.ErrConnectionClosed):
		c.emitter.Emit(EventClose)
		if ch != nil {
			ch <- commandEvent{err: ErrConnectionClosed}
		}
	case errors.Is(err, transport.ErrConnectionEnded):
		c.emitter.Emit(EventEnd)
		if ch != nil {
			ch <- commandEvent{err: ErrConnectionEnded}
		}
	default:
		wrapped := &TransportError{Err: err}
		c.emitter.Emit(EventError, wrapped)
		if ch != nil {
			ch <- commandEvent{err: wrapped}
		}
	}
}
