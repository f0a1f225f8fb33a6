// Package qrcode generates QR code images for appointment confirmations.
//
// The booking reference is encoded as a PNG that can be attached to a
// confirmation email as an inline image or embedded directly in HTML as a
// base64 data URL.
package qrcode
