package field

import (
	"bytes"
	"fmt"
	"strings"
)

// BadStartError is returned when a header block begins with junk text that
// does not appear to be a header field. The skipped text is preserved in the
// error object so the caller can decide what to do with it.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of the header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header field"
}

// Line represents the unparsed content for a complete header field line,
// including any folded continuation lines.
type Line []byte

// Lines represents the unparsed content for zero or more header field lines.
type Lines []Line

// ParseLines splits a header block into the raw lines that make up its
// fields, ready to feed into Parse. The input is expected to contain only
// header text; all of it will be consumed as such.
//
// A new field starts on any line that does not begin with a space or tab and
// contains a colon. Every other line is folded onto the field before it. This
// is more liberal than the grammar strictly allows, on the theory that it is
// better to accept sloppy input and be strict about what we write back out.
//
// When the input opens with continuation or colon-free lines there is no
// field to fold them onto. Those lines are skipped and reported via a
// *BadStartError alongside the lines that did parse.
func ParseLines(m, lb []byte) (Lines, error) {
	h := make(Lines, 0, len(m)/80)
	var badStart *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 {
			break
		}
		if line[0] == ' ' || line[0] == '\t' || !bytes.ContainsRune(line, ':') {
			if len(h) == 0 {
				if badStart != nil {
					badStart.BadStart = append(badStart.BadStart, line...)
				} else {
					badStart = &BadStartError{line}
				}
				continue
			}

			h[len(h)-1] = append(h[len(h)-1], line...)
		} else {
			h = append(h, line)
		}
	}

	if badStart != nil {
		return h, badStart
	}
	return h, nil
}

// SplitLine splits a raw header field line at the first colon into its name
// and body parts. Neither part is validated or trimmed. Fails with
// ErrMalformedLine when the line contains no colon.
func SplitLine(line []byte) (name, body string, err error) {
	ix := bytes.IndexByte(line, ':')
	if ix < 0 {
		return "", "", ErrMalformedLine
	}
	return string(line[:ix]), string(line[ix+1:]), nil
}

// Parse constructs a Field from a single raw header field line, which may
// include folded continuation lines and a trailing line break.
//
// The line is split at the first colon. The name must pass ValidName and the
// body text must pass ValidBody, or parsing fails. The body is then unfolded,
// stripped of the single run of whitespace that conventionally follows the
// colon, and decoded. A body that arrived in encoded form marks the field
// Extended, even when the decoded text is itself printable. A body whose
// encoded words fail to decode, because they name an unknown character set or
// carry broken octets, is kept in its wire form with the tag left Minimal,
// so the field still renders back to the line it came from.
//
// The name is kept exactly as it appears on the wire, so a parsed field
// renders back to the line it came from. Pass the name through SetName if
// normalization is wanted.
func Parse(line []byte) (*Field, error) {
	raw := bytes.TrimRight(line, "\r\n")

	name, body, err := SplitLine(raw)
	if err != nil {
		return nil, err
	}

	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !ValidBody(body) {
		return nil, fmt.Errorf("%w: body of %q contains illegal characters", ErrInvalidBody, name)
	}

	// unfold is not affected by choices made when folding, so the default
	// fold encoding is always safe here
	body = string(DefaultFoldEncoding.Unfold([]byte(body)))
	body = strings.TrimLeft(body, " \t")

	f := &Field{name: name, body: body}
	if dec, err := Decode(body); err == nil && dec != body {
		f.body = dec
		f.enc = Extended
	}

	return f, nil
}
