package email

import (
	"context"
	"log/slog"
)

// disabledSender is installed when SMTP credentials are not configured.
// Every send short-circuits to a failed result without a network call.
type disabledSender struct {
	logger *slog.Logger
}

func (s *disabledSender) Send(ctx context.Context, msg Message) Result {
	s.logger.WarnContext(ctx, "smtp credentials not configured, skipping send")
	return Result{ErrorDetail: notConfiguredDetail}
}
