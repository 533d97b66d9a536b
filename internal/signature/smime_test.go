package signature

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// envelope builds a minimal S/MIME multipart wrapper around a base64 body.
func envelope(body string) []byte {
	return []byte("MIME-Version: 1.0\n" +
		"Content-Type: multipart/signed; protocol=\"application/x-pkcs7-signature\"; micalg=\"sha1\"; boundary=\"----ABCD\"\n" +
		"\n" +
		"This is an S/MIME signed message\n" +
		"\n" +
		"------ABCD\n" +
		"fake content\n" +
		"------ABCD\n" +
		"Content-Type: application/x-pkcs7-signature; name=\"smime.p7s\"\n" +
		"Content-Transfer-Encoding: base64\n" +
		"Content-Disposition: attachment; filename=\"smime.p7s\"\n" +
		"\n" +
		body + "\n" +
		"\n" +
		"------ABCD--\n")
}

// TestExtractDER verifies the body between the attachment marker and the
// next boundary is base64-decoded into the original bytes.
func TestExtractDER(t *testing.T) {
	t.Parallel()

	payload := []byte{0x30, 0x82, 0x01, 0x0a, 0xde, 0xad, 0xbe, 0xef}
	encoded := base64.StdEncoding.EncodeToString(payload)

	got, err := ExtractDER(envelope(encoded))
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

// TestExtractDERWrappedLines verifies bodies split across multiple lines decode.
func TestExtractDERWrappedLines(t *testing.T) {
	t.Parallel()

	payload := make([]byte, 120)
	for i := range payload {
		payload[i] = byte(i)
	}

	encoded := base64.StdEncoding.EncodeToString(payload)
	wrapped := encoded[:64] + "\r\n" + encoded[64:]

	got, err := ExtractDER(envelope(wrapped))
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

// TestExtractDERErrors covers malformed envelopes.
func TestExtractDERErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input []byte
		want  error
	}{
		{name: "no attachment", input: []byte("plain text"), want: errNoAttachment},
		{name: "no boundary", input: []byte(`filename="smime.p7s"` + "\n\nQUJD\n"), want: errNoBoundary},
		{name: "empty body", input: []byte(`filename="smime.p7s"` + "\n\n\n----X--"), want: errEmptyBody},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ExtractDER(tc.input)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// Invalid base64 in the body.
	_, err := ExtractDER(envelope("!!not-base64!!"))
	require.Error(t, err)
}

// TestIsEnvelope distinguishes MIME envelopes from raw DER.
func TestIsEnvelope(t *testing.T) {
	t.Parallel()

	require.True(t, IsEnvelope(envelope("QUJD")))
	require.False(t, IsEnvelope([]byte{0x30, 0x82, 0x01, 0x0a}))
}

// FuzzExtractDER ensures arbitrary input never panics and that successful
// extractions round-trip through base64.
func FuzzExtractDER(f *testing.F) {
	f.Add([]byte("plain"))
	f.Add(envelope("QUJDRA=="))
	f.Add([]byte(`filename="smime.p7s"----`))
	f.Add([]byte(`filename="smime.p7s"` + "\n\nQQ==\n----X--"))

	f.Fuzz(func(t *testing.T, data []byte) {
		der, err := ExtractDER(data)
		if err != nil {
			return
		}

		if len(der) == 0 {
			t.Errorf("successful extraction returned empty DER")
		}
	})
}
