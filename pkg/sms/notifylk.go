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

// notifyLKDefaultBaseURL is the production Notify.lk API endpoint.
const notifyLKDefaultBaseURL = "https://app.notify.lk/api/v1"

// notifyLKSender is the backup vendor adapter. Notify.lk takes its
// credentials in the request body instead of an auth header.
type notifyLKSender struct {
	userID     string
	apiKey     string
	senderID   string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	normalizer phone.Normalizer
}

func newNotifyLKSender(cfg Config, o *options) *notifyLKSender {
	baseURL := o.baseURL
	if baseURL == "" {
		baseURL = notifyLKDefaultBaseURL
	}
	return &notifyLKSender{
		userID:     cfg.NotifyLKUserID,
		apiKey:     cfg.NotifyLKAPIKey,
		senderID:   cfg.SenderID,
		baseURL:    baseURL,
		httpClient: o.httpClient,
		logger:     o.logger.With("provider", "notifylk"),
		normalizer: o.normalizer,
	}
}

type notifyLKRequest struct {
	UserID  string `json:"user_id"`
	APIKey  string `json:"api_key"`
	Sender  string `json:"sender"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// notifyLKResponse is the vendor envelope. Notify.lk reports numeric message
// ids, so the field is decoded as json.Number to survive both forms.
type notifyLKResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		MessageID json.Number `json:"message_id"`
	} `json:"data"`
}

func (s *notifyLKSender) Provider() string { return "notifylk" }

func (s *notifyLKSender) Send(ctx context.Context, phoneNumber, message string) Result {
	recipient := s.normalizer.Normalize(phoneNumber)

	body, err := json.Marshal(notifyLKRequest{
		UserID:  s.userID,
		APIKey:  s.apiKey,
		Sender:  s.senderID,
		To:      recipient,
		Message: message,
	})
	if err != nil {
		return Result{ErrorDetail: "failed to encode SMS request: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return Result{ErrorDetail: "failed to build SMS request: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

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

	var envelope notifyLKResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		s.logger.WarnContext(ctx, "sms response malformed", "recipient", recipient, "status_code", resp.StatusCode)
		return Result{ErrorDetail: "malformed SMS gateway response"}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && envelope.Status == "success" {
		id := envelope.Data.MessageID.String()
		s.logger.InfoContext(ctx, "sms sent", "recipient", recipient, "message_id", id)
		return Result{Succeeded: true, MessageID: id}
	}

	detail := envelope.Message
	if detail == "" {
		detail = "SMS sending failed"
	}
	s.logger.WarnContext(ctx, "sms rejected by gateway", "recipient", recipient, "status_code", resp.StatusCode, "detail", detail)
	return Result{ErrorDetail: detail}
}
