package notify

import (
	"context"
	"log/slog"

	"github.com/sevanet/notify/pkg/email"
	"github.com/sevanet/notify/pkg/qrcode"
	"github.com/sevanet/notify/pkg/sms"
)

// SMSSender is the slice of the sms package the dispatcher needs.
// sms.Sender satisfies it.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) sms.Result
}

// EmailSender is the slice of the email package the dispatcher needs.
// email.Sender satisfies it.
type EmailSender interface {
	Send(ctx context.Context, msg email.Message) email.Result
}

// Dispatcher fans one notification request out to the SMS and email channels.
// It is safe for concurrent use.
type Dispatcher struct {
	sms    SMSSender
	email  EmailSender
	logger *slog.Logger
}

// DispatcherOption customizes a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for channel failure reporting.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher wires the two channel senders into a dispatcher. Both senders
// are required; a channel that should stay dark is expressed by passing a
// sender built from an empty config, which reports "not configured" results
// instead of attempting delivery.
func NewDispatcher(smsSender SMSSender, emailSender EmailSender, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sms:    smsSender,
		email:  emailSender,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send dispatches the request to both channels and merges their results.
// The SMS channel is always attempted; the email channel only when the
// request carries a recipient address. Send never returns an error and
// never panics: every failure is reported inside the Outcome.
func (d *Dispatcher) Send(ctx context.Context, req Request) Outcome {
	var outcome Outcome

	smsResult := d.sms.Send(ctx, req.RecipientPhone, RenderSMS(req))
	outcome.SMS = ChannelResult{
		Succeeded:         smsResult.Succeeded,
		ProviderMessageID: smsResult.MessageID,
		ErrorDetail:       smsResult.ErrorDetail,
	}
	if !smsResult.Succeeded {
		d.logger.WarnContext(ctx, "sms channel failed",
			"category", req.Category,
			"reference", req.BookingReference,
			"detail", smsResult.ErrorDetail)
	}

	if req.RecipientEmail != "" {
		emailResult := d.email.Send(ctx, d.buildEmailMessage(req))
		outcome.Email = &ChannelResult{
			Succeeded:         emailResult.Succeeded,
			ProviderMessageID: emailResult.MessageID,
			ErrorDetail:       emailResult.ErrorDetail,
		}
		if !emailResult.Succeeded {
			d.logger.WarnContext(ctx, "email channel failed",
				"category", req.Category,
				"reference", req.BookingReference,
				"detail", emailResult.ErrorDetail)
		}
	}

	outcome.OverallSucceeded = outcome.SMS.Succeeded ||
		(outcome.Email != nil && outcome.Email.Succeeded)
	switch {
	case outcome.SMS.Succeeded:
		outcome.PrimaryMessageID = outcome.SMS.ProviderMessageID
	case outcome.Email != nil && outcome.Email.Succeeded:
		outcome.PrimaryMessageID = outcome.Email.ProviderMessageID
	}

	if !outcome.OverallSucceeded {
		d.logger.ErrorContext(ctx, "notification failed on all channels",
			"category", req.Category,
			"reference", req.BookingReference)
	}

	return outcome
}

// buildEmailMessage renders the HTML body and resolves the inline QR code.
// Confirmations get a QR code even when the request did not carry one; a QR
// payload that fails to decode is dropped rather than failing the channel,
// leaving the base64 fallback image in the HTML.
func (d *Dispatcher) buildEmailMessage(req Request) email.Message {
	if req.Category == CategoryConfirmation && req.QRCodeData == "" && req.BookingReference != "" {
		if dataURL, err := qrcode.DataURL(req.BookingReference, 0); err == nil {
			req.QRCodeData = dataURL
		} else {
			d.logger.Warn("qr code generation failed",
				"reference", req.BookingReference,
				"error", err)
		}
	}

	subject, html := RenderEmail(req)
	msg := email.Message{
		To:       req.RecipientEmail,
		Subject:  subject,
		BodyHTML: html,
	}

	if req.QRCodeData != "" {
		if png, err := qrcode.DecodeDataURL(req.QRCodeData); err == nil {
			msg.Inline = &email.InlineImage{
				Filename:  "qr-code-" + req.BookingReference + ".png",
				ContentID: QRContentID,
				Data:      png,
			}
		} else {
			d.logger.Warn("inline qr code payload invalid, sending without attachment",
				"reference", req.BookingReference,
				"error", err)
		}
	}

	return msg
}
