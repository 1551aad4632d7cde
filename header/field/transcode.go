package field

import (
	"mime"
	"strings"
)

// Encode transforms a single header field body into its wire form by wrapping
// it in MIME encoded words as needed. It always produces b-type (Base-64)
// words using UTF-8 as the character set. A body that is plain printable
// ASCII comes back unchanged.
func Encode(body string) string {
	return mime.BEncoding.Encode("utf-8", body)
}

// EncodeIn is Encode for callers that need the encoded words labeled with a
// character set other than UTF-8. The body is first transcoded into the named
// character set with CharsetEncoder and the resulting octets are wrapped in
// b-type encoded words carrying that label.
func EncodeIn(charset, body string) (string, error) {
	eb, err := CharsetEncoder(charset, body)
	if err != nil {
		return "", err
	}
	return mime.BEncoding.Encode(charset, string(eb)), nil
}

// Decode transforms a single header field body from its wire form, replacing
// any MIME encoded words found with their decoded native unicode text. A body
// carrying no encoded words is returned unchanged.
func Decode(body string) (string, error) {
	if !strings.Contains(body, "=?") {
		return body, nil
	}

	dec := &mime.WordDecoder{
		CharsetReader: CharsetDecoderToCharsetReader(CharsetDecoder),
	}
	return dec.DecodeHeader(body)
}
