package utils

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/h2non/filetype"
)

// DecodeMediaFile decodes a media payload that is either a raw base64 string
// or a data URI ("data:<mime>;base64,<payload>"). It returns the raw bytes
// and the media's MIME type, taken from the data-URI header when present and
// sniffed from the bytes otherwise.
func DecodeMediaFile(encoded string) ([]byte, string, error) {
	payload := encoded
	mime := ""

	if strings.HasPrefix(encoded, "data:") {
		idx := strings.Index(encoded, ",")
		if idx < 0 {
			return nil, "", fmt.Errorf("malformed data URI: missing comma separator")
		}
		header := encoded[:idx]
		payload = encoded[idx+1:]

		header = strings.TrimPrefix(header, "data:")
		if semi := strings.Index(header, ";"); semi >= 0 {
			mime = header[:semi]
		} else {
			mime = header
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
	}

	if mime == "" {
		if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
			mime = kind.MIME.Value
		}
	}

	return data, mime, nil
}

// MediaExtension returns a file extension for the given bytes, preferring the
// sniffed type and falling back to "bin".
func MediaExtension(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "bin"
	}
	return kind.Extension
}
