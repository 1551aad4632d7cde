package field

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Encoder is the character encoding function used to transform a native
// unicode string into octets in the character encoding named by charset. If
// charset is empty, us-ascii is assumed.
//
// An encoder should only output octets that are valid in the target encoding.
// If the target charset is not supported, it should return nil octets and an
// error.
type Encoder func(charset, s string) ([]byte, error)

// Decoder is the character decoding function used to transform octets in the
// character encoding named by charset into a native unicode string. Any byte
// that is invalid for the source encoding should come through as
// unicode.ReplacementChar.
//
// If the source charset is not supported, a decoder should return an error.
type Decoder func(charset string, b []byte) (string, error)

var (
	// CharsetEncoder is the Encoder used when writing field bodies out in a
	// non-UTF-8 character set. Replace it with a custom encoder if you like,
	// or import the header/encoding package to swap in one that handles
	// pretty much any character set:
	//  import _ "github.com/styleflasher/laminas-mail/header/encoding"
	CharsetEncoder Encoder = DefaultCharsetEncoder

	// CharsetDecoder is the Decoder used when reading encoded words found in
	// parsed field bodies. Replace it with a custom decoder if you like, or
	// import the header/encoding package to swap in one that handles pretty
	// much any character set:
	//  import _ "github.com/styleflasher/laminas-mail/header/encoding"
	CharsetDecoder Decoder = DefaultCharsetDecoder
)

// DefaultCharsetEncoder is the default encoder. It handles us-ascii,
// iso-8859-1 (a.k.a. latin1), and utf-8 only. Anything else results in an
// error.
//
// When outputting us-ascii, any character that does not fit is replaced with
// "\x1a", the ASCII SUB character.
func DefaultCharsetEncoder(charset, s string) ([]byte, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "":
		var buf bytes.Buffer
		for _, c := range s {
			if c > unicode.MaxASCII {
				buf.WriteRune('\x1a') // ASCII substitution char
			} else {
				buf.WriteRune(c)
			}
		}
		return buf.Bytes(), nil
	case "iso-8859-1", "latin1", "utf-8":
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("unsupported byte encoding %q", charset)
	}
}

// DefaultCharsetDecoder is the default decoder. It handles us-ascii,
// iso-8859-1 (a.k.a. latin1), and utf-8 only. Anything else results in an
// error.
//
// When us-ascii is input, any 8-bit byte is translated into
// unicode.ReplacementChar. When utf-8 is input, invalid sequences likewise
// come through as unicode.ReplacementChar.
func DefaultCharsetDecoder(charset string, b []byte) (string, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "":
		var s strings.Builder
		for _, c := range b {
			if c > unicode.MaxASCII {
				s.WriteRune(unicode.ReplacementChar)
			} else {
				s.WriteByte(c)
			}
		}
		return s.String(), nil
	case "iso-8859-1", "latin1":
		return string(b), nil
	case "utf-8":
		var s strings.Builder
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			s.WriteRune(r)
			b = b[size:]
		}
		return s.String(), nil
	default:
		return "", fmt.Errorf("unsupported byte encoding %q", charset)
	}
}

// CharsetDecoderToCharsetReader transforms a Decoder into the CharsetReader
// interface used by mime.WordDecoder.
func CharsetDecoderToCharsetReader(decode Decoder) func(string, io.Reader) (io.Reader, error) {
	return func(charset string, r io.Reader) (io.Reader, error) {
		bs, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		s, err := decode(charset, bs)
		if err != nil {
			return nil, err
		}

		return strings.NewReader(s), nil
	}
}
