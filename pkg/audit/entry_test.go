package audit_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevanet/notify/pkg/audit"
	"github.com/sevanet/notify/pkg/notify"
)

func TestNewEntry(t *testing.T) {
	t.Parallel()

	req := notify.Request{
		Category:         notify.CategoryConfirmation,
		RecipientPhone:   "94771234567",
		RecipientEmail:   "citizen@example.com",
		BookingReference: "REF123",
	}

	t.Run("full success", func(t *testing.T) {
		t.Parallel()

		outcome := notify.Outcome{
			OverallSucceeded: true,
			SMS:              notify.ChannelResult{Succeeded: true, ProviderMessageID: "sms-1"},
			Email:            &notify.ChannelResult{Succeeded: true, ProviderMessageID: "mail-1"},
			PrimaryMessageID: "sms-1",
		}

		entry := audit.NewEntry("user-1", "apt-1", req, outcome)

		_, err := uuid.Parse(entry.ID)
		require.NoError(t, err)
		assert.Equal(t, "user-1", entry.UserID)
		assert.Equal(t, "apt-1", entry.AppointmentID)
		assert.Equal(t, notify.CategoryConfirmation, entry.Category)
		assert.Equal(t, "94771234567", entry.RecipientPhone)
		assert.Equal(t, "sms-1", entry.SMSMessageID)
		assert.Equal(t, "mail-1", entry.EmailMessageID)
		assert.True(t, entry.Succeeded)
		require.NotNil(t, entry.SentAt)
		assert.Equal(t, entry.CreatedAt, *entry.SentAt)
	})

	t.Run("partial success records the failed channel", func(t *testing.T) {
		t.Parallel()

		outcome := notify.Outcome{
			OverallSucceeded: true,
			SMS:              notify.ChannelResult{Succeeded: true, ProviderMessageID: "sms-2"},
			Email:            &notify.ChannelResult{ErrorDetail: "SMTP connect refused"},
		}

		entry := audit.NewEntry("user-1", "apt-1", req, outcome)

		assert.True(t, entry.Succeeded)
		assert.Equal(t, "sms-2", entry.SMSMessageID)
		assert.Empty(t, entry.EmailMessageID)
		assert.Equal(t, "SMTP connect refused", entry.EmailError)
		assert.NotNil(t, entry.SentAt)
	})

	t.Run("total failure leaves sent_at unset", func(t *testing.T) {
		t.Parallel()

		outcome := notify.Outcome{
			SMS:   notify.ChannelResult{ErrorDetail: "SMS sending failed"},
			Email: &notify.ChannelResult{ErrorDetail: "Email sending failed"},
		}

		entry := audit.NewEntry("user-1", "", req, outcome)

		assert.False(t, entry.Succeeded)
		assert.Nil(t, entry.SentAt)
		assert.Equal(t, "SMS sending failed", entry.SMSError)
		assert.Equal(t, "Email sending failed", entry.EmailError)
	})

	t.Run("sms only dispatch leaves email fields empty", func(t *testing.T) {
		t.Parallel()

		smsOnly := req
		smsOnly.RecipientEmail = ""
		outcome := notify.Outcome{
			OverallSucceeded: true,
			SMS:              notify.ChannelResult{Succeeded: true, ProviderMessageID: "sms-3"},
		}

		entry := audit.NewEntry("user-1", "apt-1", smsOnly, outcome)

		assert.Empty(t, entry.RecipientEmail)
		assert.Empty(t, entry.EmailMessageID)
		assert.Empty(t, entry.EmailError)
	})
}
