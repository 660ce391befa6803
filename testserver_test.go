package routeros

import (
	"net"
	"testing"
	"time"

	"github.com/Hussseinkizz/routeros-go/pkg/wire"
)

// mockServer accepts exactly one connection and exposes it as a
// request channel and a reply method: recv delivers each sentence the
// client sent, and the test drives replies by calling send.
type mockServer struct {
	ln       net.Listener
	conn     net.Conn
	recv     chan []string
	accepted chan struct{}
}

// newMockServer starts listening but does not block for a connection —
// the caller dials (typically via Client.Connect) and then uses
// send/waitRequest, which wait for the accepted connection's traffic
// internally.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}

	s := &mockServer{ln: ln, recv: make(chan []string, 32), accepted: make(chan struct{})}

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		s.conn = conn
		close(s.accepted)

		parser := wire.NewParser()
		buf := make([]byte, 4096)
		for {
			n, err := conn.Read(buf)
			if n > 0 {
				sentences, _ := parser.Feed(buf[:n])
				for _, sent := range sentences {
					s.recv <- sent
				}
			}
			if err != nil {
				return
			}
		}
	}()

	t.Cleanup(func() {
		ln.Close()
		if s.conn != nil {
			s.conn.Close()
		}
	})

	return s
}

func (s *mockServer) waitAccepted(t *testing.T) {
	t.Helper()
	select {
	case <-s.accepted:
	case <-time.After(2 * time.Second):
		t.Fatal("mock server never accepted a connection")
	}
}

func (s *mockServer) hostPort() (string, int) {
	host, portStr, _ := net.SplitHostPort(s.ln.Addr().String())
	var port int
	for _, c := range portStr {
		port = port*10 + int(c-'0')
	}
	return host, port
}

func (s *mockServer) send(t *testing.T, words ...string) {
	t.Helper()
	s.waitAccepted(t)
	if _, err := s.conn.Write(wire.EncodeSentence(words...)); err != nil {
		t.Fatalf("mock server write failed: %v", err)
	}
}

func (s *mockServer) closeConn(t *testing.T) {
	t.Helper()
	s.waitAccepted(t)
	s.conn.Close()
}

func (s *mockServer) waitRequest(t *testing.T) []string {
	t.Helper()
	select {
	case words := <-s.recv:
		return words
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for client request")
		return nil
	}
}
