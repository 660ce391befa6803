package log

import "time"

// Event is one structured log record. Exactly one of the type-specific
// payload fields below is normally populated, matching Category.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID identifies the connection this event belongs to.
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates message flow, meaningful for CategorySentence.
	Direction Direction `cbor:"3,keyasint,omitempty"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// Sentence holds the raw words of a sentence crossing the wire, for
	// CategorySentence events.
	Sentence []string `cbor:"5,keyasint,omitempty"`

	// StateChange describes a connection or login state transition, for
	// CategoryState events.
	StateChange *StateChangeEvent `cbor:"6,keyasint,omitempty"`

	// Error describes a terminal or command-level failure, for
	// CategoryError events.
	Error *ErrorEventData `cbor:"7,keyasint,omitempty"`
}

// Direction indicates the direction of a sentence.
type Direction uint8

const (
	// Inbound is a sentence received from the router.
	Inbound Direction = 0
	// Outbound is a sentence sent to the router.
	Outbound Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Inbound:
		return "IN"
	case Outbound:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies an Event.
type Category uint8

const (
	// CategorySentence is a raw sentence crossing the wire.
	CategorySentence Category = 0
	// CategoryState is a connection or login lifecycle transition.
	CategoryState Category = 1
	// CategoryError is a terminal or command-level failure.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategorySentence:
		return "SENTENCE"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent records a connection lifecycle transition, e.g.
// "dialing" -> "connected" -> "authenticated" -> "closed".
type StateChangeEvent struct {
	OldState string `cbor:"1,keyasint,omitempty"`
	NewState string `cbor:"2,keyasint"`
	Reason   string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData records a failure at any layer: transport, login, or a
// single command.
type ErrorEventData struct {
	Op      string `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`
}
