package email

import (
	"context"
	"log/slog"
)

// Sender delivers outbound mail. Services call it fire-and-forget from a
// goroutine; delivery failures are logged, never surfaced to the requester.
type Sender interface {
	SendOTP(ctx context.Context, to, code, languageCode string) error
}

// LogSender is the dev fallback used when no SMTP host is configured. It
// writes the code to the log instead of sending anything.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendOTP(ctx context.Context, to, code, languageCode string) error {
	s.log.Info("otp email (log sender, not delivered)",
		"to", to,
		"code", code,
		"language", languageCode,
	)
	return nil
}
