// Package email delivers rendered HTML notifications over authenticated SMTP
// submission, with optional inline image attachments.
//
// # Architecture
//
// The package is built around the Sender interface so transports can be
// swapped without changing application code:
//   - the SMTP sender for production delivery (wneessen/go-mail underneath)
//   - DevSender for local development (saves messages to disk)
//   - a disabled sender installed automatically when SMTP credentials are
//     absent, which short-circuits every send to a failed result
//
// # Error handling
//
// Send never returns an error. Transport failures and invalid messages are
// folded into the returned Result so that the email channel can fail without
// affecting the SMS channel of the same dispatch.
//
// # Inline images
//
// A Message may carry one inline image (in practice the appointment QR code).
// It is attached as a MIME inline part referenced by content-id from the HTML
// body, so clients that resolve cid: URLs render it in place; the HTML
// templates additionally embed the same image as a base64 data URL fallback.
package email
