package audit

import "errors"

var (
	// ErrFailedToRecord indicates the entry could not be persisted.
	ErrFailedToRecord = errors.New("failed to record notification entry")

	// ErrFailedToQuery indicates the entry listing query failed.
	ErrFailedToQuery = errors.New("failed to query notification entries")

	// ErrFailedToEnsureSchema indicates the notifications table could not be created.
	ErrFailedToEnsureSchema = errors.New("failed to ensure notifications schema")
)
