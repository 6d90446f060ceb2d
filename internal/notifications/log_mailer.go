package notifications

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer writes the message to the log instead of delivering it. It stands
// in for the SMTP relay outside production so local runs need no mail server.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.HTML).
		Msg("email would be sent in production")
	return nil
}
