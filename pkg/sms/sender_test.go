package sms_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevanet/notify/pkg/sms"
)

func TestNew_ProviderSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   sms.Config
		provider string
	}{
		{
			name:     "primary preferred when configured",
			config:   sms.Config{TextLKAPIToken: "token", SenderID: "SevaNet"},
			provider: "textlk",
		},
		{
			name: "primary preferred even when backup also configured",
			config: sms.Config{
				TextLKAPIToken: "token",
				NotifyLKUserID: "user",
				NotifyLKAPIKey: "key",
				SenderID:       "SevaNet",
			},
			provider: "textlk",
		},
		{
			name:     "backup used when primary absent",
			config:   sms.Config{NotifyLKUserID: "user", NotifyLKAPIKey: "key", SenderID: "SevaNet"},
			provider: "notifylk",
		},
		{
			name:     "backup requires both credentials",
			config:   sms.Config{NotifyLKUserID: "user", SenderID: "SevaNet"},
			provider: "disabled",
		},
		{
			name:     "nothing configured disables the channel",
			config:   sms.Config{SenderID: "SevaNet"},
			provider: "disabled",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := sms.New(tt.config)
			assert.Equal(t, tt.provider, sender.Provider())
		})
	}
}

func TestDisabledSender_Send(t *testing.T) {
	t.Parallel()

	sender := sms.New(sms.Config{SenderID: "SevaNet"})

	res := sender.Send(context.Background(), "0771234567", "hello")
	assert.False(t, res.Succeeded)
	assert.Empty(t, res.MessageID)
	assert.Equal(t, "SMS service not configured", res.ErrorDetail)
}

func TestTextLKSender_Send(t *testing.T) {
	t.Parallel()

	cfg := sms.Config{TextLKAPIToken: "test-token", SenderID: "SevaNet"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var captured map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/sms/send", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"success","data":{"uid":"msg-42"}}`))
		}))
		defer srv.Close()

		sender := sms.New(cfg, sms.WithBaseURL(srv.URL))
		res := sender.Send(context.Background(), "0771234567", "Your appointment is confirmed")

		assert.True(t, res.Succeeded)
		assert.Equal(t, "msg-42", res.MessageID)
		assert.Empty(t, res.ErrorDetail)

		// The request carries the canonical phone format and sender identity.
		assert.Equal(t, "94771234567", captured["recipient"])
		assert.Equal(t, "SevaNet", captured["sender_id"])
		assert.Equal(t, "Your appointment is confirmed", captured["message"])
	})

	t.Run("vendor reported failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"error","message":"insufficient credit"}`))
		}))
		defer srv.Close()

		sender := sms.New(cfg, sms.WithBaseURL(srv.URL))
		res := sender.Send(context.Background(), "0771234567", "hello")

		assert.False(t, res.Succeeded)
		assert.Equal(t, "insufficient credit", res.ErrorDetail)
	})

	t.Run("non-2xx without message falls back to generic detail", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"status":"error"}`))
		}))
		defer srv.Close()

		sender := sms.New(cfg, sms.WithBaseURL(srv.URL))
		res := sender.Send(context.Background(), "0771234567", "hello")

		assert.False(t, res.Succeeded)
		assert.Equal(t, "SMS sending failed", res.ErrorDetail)
	})

	t.Run("malformed response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		}))
		defer srv.Close()

		sender := sms.New(cfg, sms.WithBaseURL(srv.URL))
		res := sender.Send(context.Background(), "0771234567", "hello")

		assert.False(t, res.Succeeded)
		assert.Equal(t, "malformed SMS gateway response", res.ErrorDetail)
	})

	t.Run("connection failure is reported as data", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing is listening anymore

		sender := sms.New(cfg, sms.WithBaseURL(srv.URL))

		var res sms.Result
		assert.NotPanics(t, func() {
			res = sender.Send(context.Background(), "0771234567", "hello")
		})
		assert.False(t, res.Succeeded)
		assert.Contains(t, res.ErrorDetail, "failed to send SMS")
	})
}

func TestNotifyLKSender_Send(t *testing.T) {
	t.Parallel()

	cfg := sms.Config{NotifyLKUserID: "user-1", NotifyLKAPIKey: "key-1", SenderID: "SevaNet"}

	t.Run("success with numeric message id", func(t *testing.T) {
		t.Parallel()

		var captured map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/send", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"success","data":{"message_id":987654}}`))
		}))
		defer srv.Close()

		sender := sms.New(cfg, sms.WithBaseURL(srv.URL))
		res := sender.Send(context.Background(), "+94 77 123 4567", "Reminder")

		assert.True(t, res.Succeeded)
		assert.Equal(t, "987654", res.MessageID)

		// Credentials ride in the body for the backup vendor.
		assert.Equal(t, "user-1", captured["user_id"])
		assert.Equal(t, "key-1", captured["api_key"])
		assert.Equal(t, "SevaNet", captured["sender"])
		assert.Equal(t, "94771234567", captured["to"])
	})

	t.Run("vendor reported failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status":"error","message":"invalid api key"}`))
		}))
		defer srv.Close()

		sender := sms.New(cfg, sms.WithBaseURL(srv.URL))
		res := sender.Send(context.Background(), "0771234567", "hello")

		assert.False(t, res.Succeeded)
		assert.Equal(t, "invalid api key", res.ErrorDetail)
	})

	t.Run("connection failure is reported as data", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		sender := sms.New(cfg, sms.WithBaseURL(srv.URL))

		var res sms.Result
		assert.NotPanics(t, func() {
			res = sender.Send(context.Background(), "0771234567", "hello")
		})
		assert.False(t, res.Succeeded)
		assert.Contains(t, res.ErrorDetail, "failed to send SMS")
	})
}
