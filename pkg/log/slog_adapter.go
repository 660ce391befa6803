package log

import (
	"context"
	"log/slog"
)

// SlogAdapter renders protocol events through an *slog.Logger, one line
// per event at Debug level. Useful during development to see the wire
// traffic and lifecycle transitions of a connection.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log renders event as a set of slog attributes.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("conn_id", event.ConnectionID),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Sentence != nil:
		attrs = append(attrs,
			slog.String("direction", event.Direction.String()),
			slog.Any("words", event.Sentence),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("op", event.Error.Op),
			slog.String("error", event.Error.Message),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "routeros", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
