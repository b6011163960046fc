package media

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const defaultMIME = "image/jpeg"

// sniffLen is a multiple of 4 base64 chars covering the 512 bytes
// mimetype needs for images.
const sniffLen = 688

var ErrUnsupportedImage = errors.New("only .jpeg, .jpg, .png files are allowed")

// DataURI wraps a bare base64 payload in a data URI envelope. The MIME type
// is sniffed from the payload and falls back to image/jpeg.
func DataURI(encoded string) string {
	if strings.HasPrefix(encoded, "data:") {
		return encoded
	}
	return "data:" + sniff(encoded) + ";base64," + encoded
}

func sniff(encoded string) string {
	head := encoded
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	head = head[:len(head)-len(head)%4]
	raw, err := base64.StdEncoding.DecodeString(head)
	if err != nil || len(raw) == 0 {
		return defaultMIME
	}
	if m := mimetype.Detect(raw); strings.HasPrefix(m.String(), "image/") {
		return m.String()
	}
	return defaultMIME
}

// DetectImage checks that data is a jpeg or png and returns its MIME type.
func DetectImage(data []byte) (string, error) {
	m := mimetype.Detect(data)
	if m.Is("image/jpeg") || m.Is("image/png") {
		return m.String(), nil
	}
	return "", ErrUnsupportedImage
}
