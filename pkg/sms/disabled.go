package sms

import (
	"context"
	"log/slog"
)

// disabledSender is installed when no vendor credentials are configured.
// Every send short-circuits to a failed result without a network call.
type disabledSender struct {
	logger *slog.Logger
}

func (s *disabledSender) Send(ctx context.Context, phoneNumber, message string) Result {
	s.logger.WarnContext(ctx, "sms credentials not configured, skipping send")
	return Result{ErrorDetail: notConfiguredDetail}
}

func (s *disabledSender) Provider() string { return "disabled" }
