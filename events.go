package routeros

// Event names emitted by a Client. Payloads: EventConnect carries no
// arguments; EventError carries the error that occurred; EventClose and
// EventEnd carry no arguments.
const (
	EventConnect = "connect"
	EventError   = "error"
	EventClose   = "close"
	EventEnd     = "end"
)
