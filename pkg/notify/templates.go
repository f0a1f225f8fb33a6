package notify

import (
	"bytes"
	htmltemplate "html/template"
	"log/slog"
	texttemplate "text/template"
)

// QRContentID is the content-id the confirmation email HTML uses to
// reference the inline QR code attachment.
const QRContentID = "qr-code-image"

// templateData is the rendering context shared by the SMS and email
// templates: the request itself plus a few computed fields.
type templateData struct {
	Request
	StatusText  string
	StatusColor string
	QRCodeURL   htmltemplate.URL
}

func newTemplateData(req Request) templateData {
	data := templateData{Request: req}
	if req.DocumentApproved {
		data.StatusText = "APPROVED"
		data.StatusColor = "#28a745"
	} else {
		data.StatusText = "REJECTED"
		data.StatusColor = "#dc3545"
	}
	data.QRCodeURL = htmltemplate.URL(req.QRCodeData)
	return data
}

// RenderSMS produces the compact plain-text body for the request's category.
// Rendering is pure string substitution and cannot fail; an unknown category
// degrades to a generic message carrying the booking reference.
func RenderSMS(req Request) string {
	tmpl, ok := smsTemplates[req.Category]
	if !ok {
		tmpl = smsFallback
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newTemplateData(req)); err != nil {
		// Templates are static and reference only struct fields; an
		// execute failure is a programming bug, not a runtime condition.
		slog.Error("sms template execution failed", "category", req.Category, "error", err)
	}
	return buf.String()
}

// RenderEmail produces the subject and HTML body for the request's category.
// Like RenderSMS it performs no I/O and cannot fail.
func RenderEmail(req Request) (subject, html string) {
	data := newTemplateData(req)

	var tmpl *htmltemplate.Template
	switch req.Category {
	case CategoryConfirmation:
		subject = "Appointment Confirmed - " + req.BookingReference
		tmpl = confirmationEmailTmpl
	case CategoryReminder:
		subject = "Appointment Reminder - Tomorrow at " + req.AppointmentTime
		tmpl = reminderEmailTmpl
	case CategoryDocumentStatus:
		if req.DocumentApproved {
			subject = "Document Approved - " + req.BookingReference
			tmpl = documentApprovedEmailTmpl
		} else {
			subject = "Document Rejected - " + req.BookingReference
			tmpl = documentRejectedEmailTmpl
		}
	case CategoryCancellation:
		subject = "Appointment Cancelled - " + req.BookingReference
		tmpl = cancellationEmailTmpl
	default:
		subject = "SevaNet Notification - " + req.BookingReference
		tmpl = confirmationEmailTmpl
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("email template execution failed", "category", req.Category, "error", err)
	}
	return subject, buf.String()
}

var (
	smsTemplates = map[Category]*texttemplate.Template{
		CategoryConfirmation:   texttemplate.Must(texttemplate.New("sms_confirmation").Parse(smsConfirmation)),
		CategoryReminder:       texttemplate.Must(texttemplate.New("sms_reminder").Parse(smsReminder)),
		CategoryDocumentStatus: texttemplate.Must(texttemplate.New("sms_document_status").Parse(smsDocumentStatus)),
		CategoryCancellation:   texttemplate.Must(texttemplate.New("sms_cancellation").Parse(smsCancellation)),
	}
	smsFallback = texttemplate.Must(texttemplate.New("sms_fallback").Parse(
		"SevaNet notification - Ref: {{.BookingReference}}. Visit sevanet.gov.lk for details.\n\n- SevaNet Team"))

	confirmationEmailTmpl     = htmltemplate.Must(htmltemplate.New("email_confirmation").Parse(emailConfirmation))
	reminderEmailTmpl         = htmltemplate.Must(htmltemplate.New("email_reminder").Parse(emailReminder))
	documentApprovedEmailTmpl = htmltemplate.Must(htmltemplate.New("email_document_approved").Parse(emailDocumentApproved))
	documentRejectedEmailTmpl = htmltemplate.Must(htmltemplate.New("email_document_rejected").Parse(emailDocumentRejected))
	cancellationEmailTmpl     = htmltemplate.Must(htmltemplate.New("email_cancellation").Parse(emailCancellation))
)

const smsConfirmation = `✅ Appointment Confirmed!

Dear {{.CitizenName}},

Service: {{.ServiceName}}
Department: {{.Department}}
Date: {{.AppointmentDate}}
Time: {{.AppointmentTime}}
Reference: {{.BookingReference}}

Please bring all required documents. Visit sevanet.gov.lk to manage your appointment.

- SevaNet Team`

const smsReminder = `⏰ Reminder: Your SevaNet appointment is tomorrow!

Service: {{.ServiceName}}
Date: {{.AppointmentDate}}
Time: {{.AppointmentTime}}
Reference: {{.BookingReference}}
{{- if .RequiredDocuments}}

Required Documents:
{{- range .RequiredDocuments}}
• {{.}}
{{- end}}
{{- end}}

Visit sevanet.gov.lk for details.

- SevaNet Team`

const smsDocumentStatus = `📄 Document Update - Ref: {{.BookingReference}}

Document: {{.DocumentName}}
Status: {{.StatusText}}
{{- if .OfficerComments}}

Comments: {{.OfficerComments}}
{{- end}}

{{if .DocumentApproved}}Your document has been approved.{{else}}Please upload a corrected document via SevaNet.{{end}}

- SevaNet Team`

const smsCancellation = `❌ Appointment Cancelled - Ref: {{.BookingReference}}

Service: {{.ServiceName}}
Original Date: {{.AppointmentDate}}
{{- if .CancellationReason}}

Reason: {{.CancellationReason}}
{{- end}}

You can book a new appointment at sevanet.gov.lk

- SevaNet Team`
