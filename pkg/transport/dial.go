package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"
)

// Default RouterOS API ports.
const (
	DefaultPort    = 8728
	DefaultTLSPort = 8729
)

// DialOptions configures how Dial reaches a router.
type DialOptions struct {
	// Host is the router's address (hostname or IP), required.
	Host string

	// Port overrides the default port for the chosen scheme. Zero means
	// DefaultPort (SSL false) or DefaultTLSPort (SSL true).
	Port int

	// SSL selects TLS instead of plain TCP.
	SSL bool

	// Timeout bounds the dial (and, for SSL, the handshake). Zero means
	// no explicit timeout beyond the context passed to Dial.
	Timeout time.Duration
}

func (o DialOptions) address() string {
	port := o.Port
	if port == 0 {
		if o.SSL {
			port = DefaultTLSPort
		} else {
			port = DefaultPort
		}
	}
	return net.JoinHostPort(o.Host, fmt.Sprintf("%d", port))
}

// Dial opens a connection to a RouterOS device per opts. RouterOS TLS
// listeners commonly present self-signed certificates, so the client
// deliberately never validates them — the router is trusted by virtue of
// the caller having supplied its address directly, not by a certificate
// chain.
func Dial(ctx context.Context, opts DialOptions) (net.Conn, error) {
	if opts.Host == "" {
		return nil, fmt.Errorf("transport: host is required")
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	addr := opts.address()

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s failed: %w", addr, err)
	}

	if !opts.SSL {
		return conn, nil
	}

	tlsConn := tls.Client(conn, &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec // RouterOS self-signed certs are the norm; see doc comment above.
	})
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("TLS handshake with %s failed: %w", addr, err)
	}
	return tlsConn, nil
}
