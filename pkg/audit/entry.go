package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sevanet/notify/pkg/notify"
)

// Entry is one row of the notification delivery log.
type Entry struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	AppointmentID string          `json:"appointment_id,omitempty"`
	Category      notify.Category `json:"category"`

	RecipientPhone string `json:"recipient_phone"`
	RecipientEmail string `json:"recipient_email,omitempty"`

	SMSMessageID   string `json:"sms_message_id,omitempty"`
	SMSError       string `json:"sms_error,omitempty"`
	EmailMessageID string `json:"email_message_id,omitempty"`
	EmailError     string `json:"email_error,omitempty"`

	// Succeeded mirrors the dispatch outcome: true when at least one
	// channel delivered.
	Succeeded bool `json:"succeeded"`

	// SentAt is set only when Succeeded is true.
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewEntry builds the delivery log row for one dispatch. userID identifies
// the citizen account; appointmentID may be empty for notifications not tied
// to a booking.
func NewEntry(userID, appointmentID string, req notify.Request, outcome notify.Outcome) Entry {
	now := time.Now().UTC()
	entry := Entry{
		ID:             uuid.New().String(),
		UserID:         userID,
		AppointmentID:  appointmentID,
		Category:       req.Category,
		RecipientPhone: req.RecipientPhone,
		RecipientEmail: req.RecipientEmail,
		SMSMessageID:   outcome.SMS.ProviderMessageID,
		SMSError:       outcome.SMS.ErrorDetail,
		Succeeded:      outcome.OverallSucceeded,
		CreatedAt:      now,
	}
	if outcome.Email != nil {
		entry.EmailMessageID = outcome.Email.ProviderMessageID
		entry.EmailError = outcome.Email.ErrorDetail
	}
	if outcome.OverallSucceeded {
		entry.SentAt = &now
	}
	return entry
}

// Store persists and retrieves notification delivery entries.
type Store interface {
	// Record persists one entry. Implementations must be safe for
	// concurrent use.
	Record(ctx context.Context, entry Entry) error

	// ListByUser returns the user's entries, newest first, up to limit.
	// A non-positive limit returns all entries.
	ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error)
}
