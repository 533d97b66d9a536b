package signature

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// attachmentMarker precedes the base64 signature body in an S/MIME envelope.
	attachmentMarker = `filename="smime.p7s"`
	// boundaryMarker is the run of dashes opening the next MIME boundary line.
	boundaryMarker = "----"
)

var (
	// errNoAttachment is returned when the envelope lacks the smime.p7s part.
	errNoAttachment = errors.New("no smime.p7s attachment in envelope")
	// errNoBoundary is returned when the attachment body is not terminated.
	errNoBoundary = errors.New("unterminated smime.p7s attachment body")
	// errEmptyBody is returned when the attachment body contains no data.
	errEmptyBody = errors.New("empty smime.p7s attachment body")
)

// IsEnvelope reports whether the data looks like a multipart S/MIME
// envelope rather than a raw DER blob.
func IsEnvelope(data []byte) bool {
	return bytes.Contains(data, []byte(attachmentMarker))
}

// ExtractDER re-encodes a MIME-wrapped detached signature into the raw
// binary form the bundle requires: it locates the body segment following
// the smime.p7s attachment marker, cuts it at the next MIME boundary,
// trims surrounding whitespace and decodes it from base64.
func ExtractDER(envelope []byte) ([]byte, error) {
	start := bytes.Index(envelope, []byte(attachmentMarker))
	if start < 0 {
		return nil, errNoAttachment
	}

	body := envelope[start+len(attachmentMarker):]

	// The body is pure base64, so the first run of dashes is the boundary.
	end := bytes.Index(body, []byte(boundaryMarker))
	if end < 0 {
		return nil, errNoBoundary
	}

	body = stripWhitespace(body[:end])
	if len(body) == 0 {
		return nil, errEmptyBody
	}

	der := make([]byte, base64.StdEncoding.DecodedLen(len(body)))

	n, err := base64.StdEncoding.Decode(der, body)
	if err != nil {
		return nil, fmt.Errorf("decode signature body: %w", err)
	}

	return der[:n], nil
}

// stripWhitespace removes line breaks, tabs and spaces from the base64 body.
func stripWhitespace(data []byte) []byte {
	result := make([]byte, 0, len(data))

	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			result = append(result, b)
		}
	}

	return result
}
