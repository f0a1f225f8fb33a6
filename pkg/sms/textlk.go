package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/sevanet/notify/pkg/phone"
)

// textLKDefaultBaseURL is the production Text.lk API endpoint.
const textLKDefaultBaseURL = "https://app.text.lk/api/v3"

// textLKSender is the primary vendor adapter. Text.lk authenticates with a
// bearer token and addresses messages by canonical recipient number.
type textLKSender struct {
	apiToken   string
	senderID   string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	normalizer phone.Normalizer
}

func newTextLKSender(cfg Config, o *options) *textLKSender {
	baseURL := o.baseURL
	if baseURL == "" {
		baseURL = textLKDefaultBaseURL
	}
	return &textLKSender{
		apiToken:   cfg.TextLKAPIToken,
		senderID:   cfg.SenderID,
		baseURL:    baseURL,
		httpClient: o.httpClient,
		logger:     o.logger.With("provider", "textlk"),
		normalizer: o.normalizer,
	}
}

type textLKRequest struct {
	Recipient string `json:"recipient"`
	SenderID  string `json:"sender_id"`
	Message   string `json:"message"`
}

// textLKResponse is the vendor envelope. Status is "success" on acceptance;
// Message carries the failure text otherwise.
type textLKResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		UID string `json:"uid"`
	} `json:"data"`
}

func (s *textLKSender) Provider() string { return "textlk" }

func (s *textLKSender) Send(ctx context.Context, phoneNumber, message string) Result {
	recipient := s.normalizer.Normalize(phoneNumber)

	body, err := json.Marshal(textLKRequest{
		Recipient: recipient,
		SenderID:  s.senderID,
		Message:   message,
	})
	if err != nil {
		return Result{ErrorDetail: "failed to encode SMS request: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/sms/send", bytes.NewReader(body))
	if err != nil {
		return Result{ErrorDetail: "failed to build SMS request: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.ErrorContext(ctx, "sms send failed", "recipient", recipient, "error", err)
		return Result{ErrorDetail: "failed to send SMS: " + err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.ErrorContext(ctx, "sms response unreadable", "recipient", recipient, "error", err)
		return Result{ErrorDetail: "failed to read SMS gateway response: " + err.Error()}
	}

	var envelope textLKResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		s.logger.WarnContext(ctx, "sms response malformed", "recipient", recipient, "status_code", resp.StatusCode)
		return Result{ErrorDetail: "malformed SMS gateway response"}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && envelope.Status == "success" {
		s.logger.InfoContext(ctx, "sms sent", "recipient", recipient, "message_id", envelope.Data.UID)
		return Result{Succeeded: true, MessageID: envelope.Data.UID}
	}

	detail := envelope.Message
	if detail == "" {
		detail = "SMS sending failed"
	}
	s.logger.WarnContext(ctx, "sms rejected by gateway", "recipient", recipient, "status_code", resp.StatusCode, "detail", detail)
	return Result{ErrorDetail: detail}
}
