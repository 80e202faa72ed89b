// Package notify holds outbound notification adapters. Email delivery is
// owned by a separate system; the adapter here only records that a
// notification should go out.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer satisfies ports.Mailer by logging the notification instead of
// sending it. The reset token itself is never logged.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, name, token string) error {
	m.log.Info().
		Str("email", email).
		Str("name", name).
		Msg("password reset notification queued")
	return nil
}
