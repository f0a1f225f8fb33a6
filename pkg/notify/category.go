package notify

// Category identifies the kind of notification being sent. Each category has
// its own SMS and email templates.
type Category string

const (
	// CategoryConfirmation is sent when an appointment is booked.
	CategoryConfirmation Category = "appointment_confirmation"
	// CategoryReminder is sent 24 hours before the appointment.
	CategoryReminder Category = "appointment_reminder"
	// CategoryDocumentStatus is sent when an officer reviews an uploaded document.
	CategoryDocumentStatus Category = "document_status"
	// CategoryCancellation is sent when an appointment is cancelled.
	CategoryCancellation Category = "appointment_cancelled"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryConfirmation, CategoryReminder, CategoryDocumentStatus, CategoryCancellation:
		return true
	}
	return false
}
