package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. Instead of submitting
// over SMTP it saves each message as an HTML file with a JSON metadata
// sidecar (and the inline image, when present) in a directory.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves messages to dir.
// The directory is created on first send if it does not exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// devMetadata is the JSON sidecar written next to the HTML body.
type devMetadata struct {
	Timestamp   string `json:"timestamp"`
	To          string `json:"to"`
	Subject     string `json:"subject"`
	MessageID   string `json:"message_id"`
	InlineImage string `json:"inline_image,omitempty"`
}

// Send saves the message to disk and reports success. Filesystem failures
// are folded into the result like any other transport failure.
func (d *DevSender) Send(ctx context.Context, msg Message) Result {
	if err := msg.Validate(); err != nil {
		return Result{ErrorDetail: err.Error()}
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return Result{ErrorDetail: "failed to create output directory: " + err.Error()}
	}

	now := time.Now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject))
	messageID := newMessageID("dev@localhost")

	htmlPath := filepath.Join(d.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.BodyHTML), 0644); err != nil {
		return Result{ErrorDetail: "failed to write HTML file: " + err.Error()}
	}

	meta := devMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Subject:   msg.Subject,
		MessageID: messageID,
	}

	if msg.Inline != nil {
		imagePath := filepath.Join(d.dir, base+"_"+sanitizeFilename(msg.Inline.Filename))
		if err := os.WriteFile(imagePath, msg.Inline.Data, 0644); err != nil {
			return Result{ErrorDetail: "failed to write inline image: " + err.Error()}
		}
		meta.InlineImage = filepath.Base(imagePath)
	}

	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return Result{ErrorDetail: "failed to marshal metadata: " + err.Error()}
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), metaJSON, 0644); err != nil {
		return Result{ErrorDetail: "failed to write metadata file: " + err.Error()}
	}

	return Result{Succeeded: true, MessageID: messageID}
}

// sanitizeRegex matches characters that are unsafe in filenames.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")
	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
