package email

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex is a light structural check; full validation is the mail
// server's job.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InlineImage is an image attached as a MIME inline part and referenced from
// the HTML body via "cid:<ContentID>".
type InlineImage struct {
	// Filename is the attachment file name shown by mail clients.
	Filename string
	// ContentID is the identifier the HTML body references.
	ContentID string
	// Data is the raw image bytes (PNG in practice).
	Data []byte
}

// Message is one rendered HTML email ready for submission.
type Message struct {
	To       string
	Subject  string
	BodyHTML string
	// Inline is an optional inline image attachment.
	Inline *InlineImage
}

// Validate checks the message is complete enough to submit.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if !emailRegex.MatchString(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidMessage)
	}
	if m.Inline != nil && len(m.Inline.Data) == 0 {
		return fmt.Errorf("%w: inline image has no data", ErrInvalidMessage)
	}
	return nil
}
