package email

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	mail "github.com/wneessen/go-mail"
)

// smtpSender submits messages over authenticated SMTP.
type smtpSender struct {
	cfg    Config
	client *mail.Client
	logger *slog.Logger
}

func newSMTPSender(cfg Config, o *options) Sender {
	clientOpts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPass),
		mail.WithTimeout(defaultTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPSecure {
		clientOpts = append(clientOpts, mail.WithSSL())
	}

	client, err := mail.NewClient(cfg.SMTPHost, clientOpts...)
	if err != nil {
		// Treat an unusable transport like an unconfigured one: sends fail
		// as data instead of crashing the process.
		o.logger.Error("smtp client construction failed, email channel disabled", "error", err)
		return &disabledSender{logger: o.logger}
	}

	return &smtpSender{
		cfg:    cfg,
		client: client,
		logger: o.logger.With("transport", "smtp"),
	}
}

func (s *smtpSender) Send(ctx context.Context, msg Message) Result {
	if err := msg.Validate(); err != nil {
		return Result{ErrorDetail: err.Error()}
	}

	id := newMessageID(s.cfg.From)
	m, err := buildMessage(s.cfg, msg, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "email message construction failed", "to", msg.To, "error", err)
		return Result{ErrorDetail: "failed to build email: " + err.Error()}
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		s.logger.ErrorContext(ctx, "email send failed", "to", msg.To, "error", err)
		return Result{ErrorDetail: "failed to send email: " + err.Error()}
	}

	s.logger.InfoContext(ctx, "email sent", "to", msg.To, "message_id", id)
	return Result{Succeeded: true, MessageID: id}
}

// newMessageID generates an RFC 5322 Message-ID value scoped to the sender
// domain, so delivery can be correlated in the audit log.
func newMessageID(from string) string {
	domain := "sevanet.gov.lk"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return uuid.NewString() + "@" + domain
}

// buildMessage assembles the MIME message: HTML body plus the optional
// inline image part referenced by content-id.
func buildMessage(cfg Config, msg Message, messageID string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(cfg.FromName, cfg.From); err != nil {
		return nil, err
	}
	if err := m.To(msg.To); err != nil {
		return nil, err
	}
	m.Subject(msg.Subject)
	m.SetMessageIDWithValue(messageID)
	m.SetBodyString(mail.TypeTextHTML, msg.BodyHTML)

	if msg.Inline != nil {
		if err := m.EmbedReader(msg.Inline.Filename, bytes.NewReader(msg.Inline.Data),
			mail.WithFileContentID(msg.Inline.ContentID)); err != nil {
			return nil, err
		}
	}
	return m, nil
}
