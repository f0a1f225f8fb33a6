package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevanet/notify/pkg/notify"
)

func confirmationRequest() notify.Request {
	return notify.Request{
		Category:         notify.CategoryConfirmation,
		RecipientPhone:   "0771234567",
		RecipientEmail:   "citizen@example.com",
		CitizenName:      "A. Perera",
		ServiceName:      "Passport Renewal",
		Department:       "Department of Immigration and Emigration",
		AppointmentDate:  "2026-09-15",
		AppointmentTime:  "10:30 AM",
		BookingReference: "REF123",
	}
}

func TestRenderSMS(t *testing.T) {
	t.Parallel()

	t.Run("confirmation includes appointment details", func(t *testing.T) {
		t.Parallel()

		body := notify.RenderSMS(confirmationRequest())

		assert.Contains(t, body, "Appointment Confirmed")
		assert.Contains(t, body, "A. Perera")
		assert.Contains(t, body, "Passport Renewal")
		assert.Contains(t, body, "2026-09-15")
		assert.Contains(t, body, "10:30 AM")
		assert.Contains(t, body, "REF123")
		assert.Contains(t, body, "- SevaNet Team")
	})

	t.Run("reminder lists required documents", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.CategoryReminder
		req.RequiredDocuments = []string{"National ID", "Old Passport"}

		body := notify.RenderSMS(req)

		assert.Contains(t, body, "tomorrow")
		assert.Contains(t, body, "Required Documents:")
		assert.Contains(t, body, "• National ID")
		assert.Contains(t, body, "• Old Passport")
	})

	t.Run("reminder without documents omits checklist", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.CategoryReminder

		body := notify.RenderSMS(req)

		assert.NotContains(t, body, "Required Documents:")
	})

	t.Run("document status approved", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.CategoryDocumentStatus
		req.DocumentName = "Birth Certificate"
		req.DocumentApproved = true

		body := notify.RenderSMS(req)

		assert.Contains(t, body, "Birth Certificate")
		assert.Contains(t, body, "APPROVED")
		assert.Contains(t, body, "has been approved")
		assert.NotContains(t, body, "Comments:")
	})

	t.Run("document status rejected with comments", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.CategoryDocumentStatus
		req.DocumentName = "Birth Certificate"
		req.DocumentApproved = false
		req.OfficerComments = "Scan is illegible"

		body := notify.RenderSMS(req)

		assert.Contains(t, body, "REJECTED")
		assert.Contains(t, body, "Comments: Scan is illegible")
		assert.Contains(t, body, "corrected document")
	})

	t.Run("cancellation with reason", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.CategoryCancellation
		req.CancellationReason = "Officer unavailable"

		body := notify.RenderSMS(req)

		assert.Contains(t, body, "Appointment Cancelled")
		assert.Contains(t, body, "Reason: Officer unavailable")
		assert.Contains(t, body, "book a new appointment")
	})

	t.Run("cancellation without reason omits reason line", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.CategoryCancellation

		body := notify.RenderSMS(req)

		assert.NotContains(t, body, "Reason:")
	})

	t.Run("unknown category falls back to generic message", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.Category("something_else")

		body := notify.RenderSMS(req)

		assert.Contains(t, body, "REF123")
		assert.Contains(t, body, "- SevaNet Team")
	})
}

func TestRenderEmail(t *testing.T) {
	t.Parallel()

	t.Run("confirmation subject and body", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.QRCodeData = "data:image/png;base64,aGVsbG8="

		subject, html := notify.RenderEmail(req)

		assert.Equal(t, "Appointment Confirmed - REF123", subject)
		assert.Contains(t, html, "A. Perera")
		assert.Contains(t, html, "Passport Renewal")
		assert.Contains(t, html, "cid:qr-code-image")
		assert.Contains(t, html, "data:image/png;base64,aGVsbG8=")
	})

	t.Run("confirmation without qr omits qr section", func(t *testing.T) {
		t.Parallel()

		_, html := notify.RenderEmail(confirmationRequest())

		assert.NotContains(t, html, "cid:qr-code-image")
	})

	t.Run("reminder subject carries time", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.CategoryReminder
		req.RequiredDocuments = []string{"National ID"}

		subject, html := notify.RenderEmail(req)

		assert.Equal(t, "Appointment Reminder - Tomorrow at 10:30 AM", subject)
		assert.Contains(t, html, "Required Documents Checklist")
		assert.Contains(t, html, "National ID")
	})

	t.Run("document status subject follows review outcome", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.CategoryDocumentStatus
		req.DocumentName = "Birth Certificate"

		req.DocumentApproved = true
		subject, html := notify.RenderEmail(req)
		assert.Equal(t, "Document Approved - REF123", subject)
		assert.Contains(t, html, "APPROVED")

		req.DocumentApproved = false
		subject, html = notify.RenderEmail(req)
		assert.Equal(t, "Document Rejected - REF123", subject)
		assert.Contains(t, html, "REJECTED")
		assert.Contains(t, html, "upload a corrected document")
	})

	t.Run("cancellation subject and reason", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.Category = notify.CategoryCancellation
		req.CancellationReason = "Officer unavailable"

		subject, html := notify.RenderEmail(req)

		assert.Equal(t, "Appointment Cancelled - REF123", subject)
		assert.Contains(t, html, "Officer unavailable")
	})

	t.Run("html escapes citizen supplied fields", func(t *testing.T) {
		t.Parallel()

		req := confirmationRequest()
		req.CitizenName = `<script>alert("x")</script>`

		_, html := notify.RenderEmail(req)

		assert.NotContains(t, html, "<script>")
	})
}
