package email

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SMTPHost: "smtp.example.com",
		SMTPUser: "user",
		SMTPPass: "pass",
		From:     "noreply@sevanet.gov.lk",
		FromName: "SevaNet",
	}

	t.Run("plain HTML message", func(t *testing.T) {
		t.Parallel()

		msg := Message{
			To:       "citizen@example.com",
			Subject:  "Appointment Confirmed - REF123",
			BodyHTML: "<p>Reference: REF123</p>",
		}

		m, err := buildMessage(cfg, msg, "abc@sevanet.gov.lk")
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = m.WriteTo(&buf)
		require.NoError(t, err)

		mime := buf.String()
		assert.Contains(t, mime, "To: <citizen@example.com>")
		assert.Contains(t, mime, "Subject: Appointment Confirmed - REF123")
		assert.Contains(t, mime, "<abc@sevanet.gov.lk>")
		assert.Contains(t, mime, "text/html")
	})

	t.Run("inline image becomes a cid-referenced MIME part", func(t *testing.T) {
		t.Parallel()

		msg := Message{
			To:       "citizen@example.com",
			Subject:  "Appointment Confirmed - REF123",
			BodyHTML: `<img src="cid:qr-code-image" alt="QR">`,
			Inline: &InlineImage{
				Filename:  "qr-code-REF123.png",
				ContentID: "qr-code-image",
				Data:      []byte{0x89, 0x50, 0x4E, 0x47},
			},
		}

		m, err := buildMessage(cfg, msg, "abc@sevanet.gov.lk")
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = m.WriteTo(&buf)
		require.NoError(t, err)

		mime := buf.String()
		assert.Contains(t, mime, "qr-code-image")
		assert.Contains(t, mime, "qr-code-REF123.png")
		assert.True(t, strings.Contains(mime, "inline"), "inline disposition expected")
	})

	t.Run("invalid recipient rejected", func(t *testing.T) {
		t.Parallel()

		msg := Message{
			To:       "not an address",
			Subject:  "s",
			BodyHTML: "<p>b</p>",
		}

		_, err := buildMessage(cfg, msg, "abc@sevanet.gov.lk")
		assert.Error(t, err)
	})
}

func TestNewMessageID(t *testing.T) {
	t.Parallel()

	id := newMessageID("noreply@sevanet.gov.lk")
	assert.True(t, strings.HasSuffix(id, "@sevanet.gov.lk"))

	// Fallback domain when the from address has no domain part.
	id = newMessageID("not-an-address")
	assert.True(t, strings.HasSuffix(id, "@sevanet.gov.lk"))

	// Each call produces a unique id.
	assert.NotEqual(t, newMessageID("a@b.cc"), newMessageID("a@b.cc"))
}
