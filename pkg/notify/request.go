package notify

// Request is the parameter object for one notification send. It is created
// fresh per dispatch and never stored; the audit package captures the
// durable record.
//
// RecipientPhone is required and accepts any regional format; the SMS sender
// normalizes it. RecipientEmail is optional: when empty, only the SMS channel
// is attempted.
type Request struct {
	Category       Category
	RecipientPhone string
	RecipientEmail string

	// Common appointment fields.
	CitizenName      string
	ServiceName      string
	Department       string
	AppointmentDate  string
	AppointmentTime  string
	BookingReference string

	// Reminder: documents the citizen must bring, rendered as a bullet list.
	RequiredDocuments []string

	// Document status review outcome.
	DocumentName     string
	DocumentApproved bool
	OfficerComments  string

	// Cancellation.
	CancellationReason string

	// QRCodeData is an optional base64 PNG data URL attached inline to the
	// confirmation email. When empty, a QR code encoding the booking
	// reference is generated automatically for confirmations.
	QRCodeData string
}
