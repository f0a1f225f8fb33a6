package audit

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sevanet/notify/pkg/notify"
)

const notificationsSchema = `
CREATE TABLE IF NOT EXISTS notifications (
	id               UUID PRIMARY KEY,
	user_id          TEXT NOT NULL,
	appointment_id   TEXT,
	category         TEXT NOT NULL,
	recipient_phone  TEXT NOT NULL,
	recipient_email  TEXT,
	sms_message_id   TEXT,
	sms_error        TEXT,
	email_message_id TEXT,
	email_error      TEXT,
	succeeded        BOOLEAN NOT NULL,
	sent_at          TIMESTAMPTZ,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_notifications_user_created
	ON notifications (user_id, created_at DESC);`

// PostgresStore persists delivery entries in a notifications table using
// a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing connection pool. Call EnsureSchema
// once at startup before recording entries.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("audit: pool cannot be nil")
	}
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the notifications table and its index if missing.
// Idempotent, safe to call on every startup.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, notificationsSchema); err != nil {
		return errors.Join(ErrFailedToEnsureSchema, err)
	}
	return nil
}

// Record inserts one delivery entry.
func (s *PostgresStore) Record(ctx context.Context, entry Entry) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO notifications (
			id, user_id, appointment_id, category,
			recipient_phone, recipient_email,
			sms_message_id, sms_error, email_message_id, email_error,
			succeeded, sent_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		entry.ID, entry.UserID, nullable(entry.AppointmentID), string(entry.Category),
		entry.RecipientPhone, nullable(entry.RecipientEmail),
		nullable(entry.SMSMessageID), nullable(entry.SMSError),
		nullable(entry.EmailMessageID), nullable(entry.EmailError),
		entry.Succeeded, entry.SentAt, entry.CreatedAt,
	)
	if err != nil {
		return errors.Join(ErrFailedToRecord, err)
	}
	return nil
}

// ListByUser returns the user's entries, newest first, up to limit.
func (s *PostgresStore) ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error) {
	query := `
		SELECT id, user_id, appointment_id, category,
			recipient_phone, recipient_email,
			sms_message_id, sms_error, email_message_id, email_error,
			succeeded, sent_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry         Entry
			category      string
			appointmentID *string
			email         *string
			smsMsgID      *string
			smsErr        *string
			emailMsgID    *string
			emailErr      *string
		)
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &appointmentID, &category,
			&entry.RecipientPhone, &email,
			&smsMsgID, &smsErr, &emailMsgID, &emailErr,
			&entry.Succeeded, &entry.SentAt, &entry.CreatedAt,
		); err != nil {
			return nil, errors.Join(ErrFailedToQuery, err)
		}
		entry.Category = notify.Category(category)
		entry.AppointmentID = deref(appointmentID)
		entry.RecipientEmail = deref(email)
		entry.SMSMessageID = deref(smsMsgID)
		entry.SMSError = deref(smsErr)
		entry.EmailMessageID = deref(emailMsgID)
		entry.EmailError = deref(emailErr)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	return entries, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
