package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content string is empty or only whitespace.
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrGenerationFailed is returned when PNG encoding or decoding fails.
	ErrGenerationFailed = errors.New("qrcode: generation failed")
)

// defaultSize is the image size in pixels used when no size is given.
const defaultSize = 256

// dataURLPrefix is the prefix of a base64 PNG data URL as produced by DataURL.
const dataURLPrefix = "data:image/png;base64,"

// Generate encodes content as a QR code and returns the PNG bytes.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerationFailed, err)
	}
	return png, nil
}

// DataURL encodes content as a QR code and returns it as a base64 PNG data
// URL suitable for an <img> src attribute.
func DataURL(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// DecodeDataURL extracts the raw PNG bytes from a base64 PNG data URL. Plain
// base64 without the data URL prefix is accepted too.
func DecodeDataURL(dataURL string) ([]byte, error) {
	raw := strings.TrimPrefix(dataURL, dataURLPrefix)
	png, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, errors.Join(ErrGenerationFailed, err)
	}
	return png, nil
}
