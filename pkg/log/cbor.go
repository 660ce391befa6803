package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the canonical CBOR encoder mode for events: sorted map keys,
// no indefinite-length items, so two encoders never disagree on the
// bytes for the same Event.
var encMode cbor.EncMode

// decMode is the matching decoder mode.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("log: bad CBOR encoder options: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("log: bad CBOR decoder options: %v", err))
	}
}

// EncodeEvent renders event as canonical CBOR.
func EncodeEvent(event Event) ([]byte, error) {
	return encMode.Marshal(event)
}

// DecodeEvent parses CBOR bytes produced by EncodeEvent.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := decMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder returns a CBOR encoder for a stream of events, e.g. an
// append-only event log file.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a matching decoder for NewEncoder's stream.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// CBORLogger appends every event to an encoder, e.g. for durable
// event-log files opened in append mode.
type CBORLogger struct {
	enc *cbor.Encoder
}

// NewCBORLogger returns a Logger that CBOR-encodes each event to w.
func NewCBORLogger(w io.Writer) *CBORLogger {
	return &CBORLogger{enc: NewEncoder(w)}
}

// Log encodes event, discarding any write error — a durable event log is
// a diagnostic aid, not a correctness dependency of the client.
func (c *CBORLogger) Log(event Event) {
	_ = c.enc.Encode(event)
}

var _ Logger = (*CBORLogger)(nil)
