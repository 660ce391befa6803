package routeros

import (
	"github.com/Hussseinkizz/routeros-go/pkg/wire"
)

// commandEventBuffer bounds how many pending sentences/errors a single
// command's channel can hold before the read loop would block. The
// protocol yields at most one terminal sentence and a bounded number of
// !re rows per read; this is generous headroom, not a hard protocol
// limit.
const commandEventBuffer = 64

// RunCommand sends path with params as a single request sentence and
// blocks until the router resolves it with "!done", "!trap", "!fatal",
// or the connection is lost. params keys are forwarded verbatim as
// "=key=value" words; a caller building a query word must include the
// leading "?" in the key itself.
//
// The wire protocol carries no per-request tag, so a client can only
// ever have one command in flight at a time; calling RunCommand
// concurrently with another in-flight call on the same Client is
// undefined.
func (c *Client) RunCommand(path string, params map[string]string) ([]wire.Record, error) {
	records, _, err := c.runCommand(path, params)
	return records, err
}

// runCommand is RunCommand's underlying implementation. It additionally
// returns the attributes carried on the terminal "!done" sentence itself
// (e.g. the "ret" login challenge), which ProjectRecords deliberately
// drops since it only ever reads "!re" rows. Login needs that terminal
// record; ordinary callers go through RunCommand and ignore it.
func (c *Client) runCommand(path string, params map[string]string) ([]wire.Record, wire.Record, error) {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	c.mu.Lock()
	conn := c.conn
	connected := c.connected
	c.mu.Unlock()

	if !connected || conn == nil {
		return nil, nil, ErrNotConnected
	}

	ch := make(chan commandEvent, commandEventBuffer)
	c.mu.Lock()
	c.activeCh = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.activeCh == ch {
			c.activeCh = nil
		}
		c.mu.Unlock()
	}()

	words := make([]string, 0, 1+len(params))
	words = append(words, path)
	for k, v := range params {
		words = append(words, "="+k+"="+v)
	}

	if err := conn.WriteSentence(words...); err != nil {
		return nil, nil, &TransportError{Err: err}
	}

	var collected [][]string
	for ev := range ch {
		if ev.err != nil {
			return nil, nil, ev.err
		}

		sentence := ev.words
		if len(sentence) == 0 {
			continue
		}

		switch sentence[0] {
		case "!trap":
			return nil, nil, &TrapError{Message: trapMessage(sentence)}
		case "!fatal":
			return nil, nil, &FatalError{Message: fatalMessage(sentence)}
		default:
			collected = append(collected, sentence)
			if sentence[0] == "!done" {
				terminal := wire.ProjectAttributes(sentence[1:])
				return wire.ProjectRecords(collected), terminal, nil
			}
		}
	}

	// ch is never closed (see teardown above), so the range loop only
	// ends through one of its returns; this line is reached only if
	// something elsewhere in the engine closed ch, which is a contract
	// violation.
	return nil, nil, ErrConnectionEnded
}

func trapMessage(sentence []string) string {
	for _, w := range sentence[1:] {
		if key, value, ok := wire.SplitAttribute(w); ok && key == "message" {
			return value
		}
	}
	return "Trap error"
}

func fatalMessage(sentence []string) string {
	msg := "Fatal error: "
	for i, w := range sentence[1:] {
		if i > 0 {
			msg += " "
		}
		msg += w
	}
	return msg
}
