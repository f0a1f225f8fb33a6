package sms

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sevanet/notify/pkg/phone"
)

// defaultTimeout bounds every outbound gateway call so a stalled vendor
// cannot block a dispatch indefinitely.
const defaultTimeout = 15 * time.Second

// notConfiguredDetail is the failure detail reported when no vendor
// credentials are present.
const notConfiguredDetail = "SMS service not configured"

// Result is the outcome of one SMS delivery attempt. Failures travel through
// the result, never as a returned error.
type Result struct {
	// Succeeded is true when the vendor accepted the message.
	Succeeded bool
	// MessageID is the vendor's message identifier, present only on success.
	MessageID string
	// ErrorDetail describes the failure, present only on failure.
	ErrorDetail string
}

// Sender delivers one rendered text message to one phone number and reports
// a uniform result regardless of which vendor is active.
type Sender interface {
	Send(ctx context.Context, phoneNumber, message string) Result
	// Provider names the active vendor, for logging and audit records.
	Provider() string
}

type options struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	normalizer phone.Normalizer
}

// Option customizes sender construction.
type Option func(*options)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithBaseURL overrides the vendor API base URL. Used by tests to point the
// sender at a local server.
func WithBaseURL(u string) Option {
	return func(o *options) {
		if u != "" {
			o.baseURL = u
		}
	}
}

// WithLogger sets the logger used for send diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNormalizer replaces the default Sri Lankan phone normalizer.
func WithNormalizer(n phone.Normalizer) Option {
	return func(o *options) { o.normalizer = n }
}

// New resolves the active vendor from cfg and returns the corresponding
// sender. The decision is made once; the returned sender is safe for
// concurrent use and holds no mutable state.
func New(cfg Config, opts ...Option) Sender {
	o := &options{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
		normalizer: phone.NewNormalizer(),
	}
	for _, opt := range opts {
		opt(o)
	}

	switch {
	case cfg.primaryConfigured():
		return newTextLKSender(cfg, o)
	case cfg.backupConfigured():
		return newNotifyLKSender(cfg, o)
	default:
		return &disabledSender{logger: o.logger}
	}
}
