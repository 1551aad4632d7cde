package field

import (
	"strings"
	"unicode/utf8"
)

// ValidName reports whether name may be used as a header field name. A valid
// name is non-empty and contains only printable 7-bit characters, excluding
// the colon that separates the name from the body on the wire.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= ' ' || c >= 0x7f || c == ':' {
			return false
		}
	}
	return true
}

// ValidBody reports whether body may appear as the body text of a header
// field line. A valid body is empty or made up of printable 7-bit characters
// and tabs, with line breaks permitted only as part of a fold: a CR, LF, or
// CRLF immediately followed by a space or tab.
func ValidBody(body string) bool {
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\t' || (c >= ' ' && c < 0x7f):
		case c == '\r' || c == '\n':
			if c == '\r' && i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
			if i+1 >= len(body) || (body[i+1] != ' ' && body[i+1] != '\t') {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsPrintable reports whether every character of s falls within the minimal
// printable set that may be written to the wire without encoding: printable
// 7-bit characters plus the tab.
func IsPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\t' && (c < ' ' || c >= 0x7f) {
			return false
		}
	}
	return true
}

// CanEncode reports whether body can be carried as header text at all,
// directly or after MIME word encoding. Word encoding labels its output
// utf-8, so a body that is not valid UTF-8 has no wire representation.
// NUL bytes are rejected outright.
func CanEncode(body string) bool {
	return utf8.ValidString(body) && !strings.ContainsRune(body, 0)
}
