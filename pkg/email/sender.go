package email

import (
	"context"
	"log/slog"
	"time"
)

// defaultTimeout bounds the SMTP dial and submission.
const defaultTimeout = 15 * time.Second

// notConfiguredDetail is the failure detail reported when SMTP credentials
// are absent.
const notConfiguredDetail = "Email service not configured"

// Result is the outcome of one email delivery attempt. Failures travel
// through the result, never as a returned error.
type Result struct {
	// Succeeded is true when the transport accepted the message.
	Succeeded bool
	// MessageID is the RFC 5322 Message-ID assigned to the submission,
	// present only on success.
	MessageID string
	// ErrorDetail describes the failure, present only on failure.
	ErrorDetail string
}

// Sender delivers one rendered HTML email.
type Sender interface {
	Send(ctx context.Context, msg Message) Result
}

type options struct {
	logger *slog.Logger
}

// Option customizes sender construction.
type Option func(*options)

// WithLogger sets the logger used for send diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New returns the SMTP-backed sender when cfg carries complete credentials,
// and a disabled sender otherwise. The decision is made once per process;
// the returned sender is safe for concurrent use.
func New(cfg Config, opts ...Option) Sender {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	if !cfg.Configured() {
		return &disabledSender{logger: o.logger}
	}
	return newSMTPSender(cfg, o)
}
