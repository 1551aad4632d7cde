package field

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/styleflasher/laminas-mail/header"
)

// Errors returned when constructing or rendering a header field.
var (
	// ErrMalformedLine is returned by Parse and SplitLine when the raw text
	// contains no colon separating the field name from the field body.
	ErrMalformedLine = errors.New("header line must match the format \"Name: Value\"")

	// ErrInvalidName is returned by SetName and Parse when a field name is
	// empty or contains characters that may not appear in a field name, even
	// after normalization.
	ErrInvalidName = errors.New("header field name is invalid")

	// ErrInvalidBody is returned by SetBody and Parse when a field body
	// cannot be represented as header text, even after encoding.
	ErrInvalidBody = errors.New("header field body is invalid")

	// ErrMissingName is returned by Render when the field has no name.
	ErrMissingName = errors.New("header field has no name")

	// ErrMissingBody is returned by Render when the field has no body.
	ErrMissingBody = errors.New("header field has no body")
)

// Encoding describes how a field body must be written on the wire.
type Encoding int

const (
	// Minimal marks a body made up entirely of printable 7-bit characters.
	// Such a body is written to the wire as-is.
	Minimal Encoding = iota

	// Extended marks a body that contains, or once contained, characters
	// outside the printable 7-bit range. Such a body is passed through MIME
	// word encoding on the way to the wire.
	Extended
)

// String returns the name of the encoding.
func (e Encoding) String() string {
	if e == Extended {
		return "Extended"
	}
	return "Minimal"
}

// Field is a single header field: a name, a body, and the encoding the body
// requires on the wire. The zero value is an empty field ready for SetName
// and SetBody.
//
// The body is stored fully decoded. The encoding starts out Minimal and is
// upgraded to Extended when a non-printable body is set or when the field is
// parsed from wire text that carried an encoded word. The upgrade is one-way:
// replacing an Extended body with a printable one does not reset the
// encoding. Call SetEncoding if you really want to force it back down.
type Field struct {
	name string
	body string
	enc  Encoding
}

// New constructs a field from a name and a body, applying the same
// normalization and validation as SetName and SetBody.
func New(name string, body any) (*Field, error) {
	var f Field
	if err := f.SetName(name); err != nil {
		return nil, err
	}
	if err := f.SetBody(body); err != nil {
		return nil, err
	}
	return &f, nil
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Body returns the field body in its decoded, logical form.
func (f *Field) Body() string { return f.body }

// RawBody returns the field body in the encoded form it takes on the wire.
// For a Minimal field this is identical to Body. For an Extended field the
// body is passed through Encode first.
func (f *Field) RawBody() []byte {
	if f.enc == Extended {
		return []byte(Encode(f.body))
	}
	return []byte(f.body)
}

// Encoding returns the encoding the body requires on the wire.
func (f *Field) Encoding() Encoding { return f.enc }

// SetEncoding overrides the encoding. The field does not check that the new
// encoding can represent the current body, so forcing an Extended field down
// to Minimal may render a body the wire cannot carry. Use with care.
func (f *Field) SetEncoding(enc Encoding) {
	f.enc = enc
}

// SetName normalizes and validates the given name and assigns it. The name
// must be non-empty and, after normalization, made up of printable 7-bit
// characters with no colon. On failure the stored name is left untouched and
// ErrInvalidName is returned.
func (f *Field) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}

	name = Normalize(name)
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	f.name = name
	return nil
}

// SetBody converts the given value to a string and assigns it as the field
// body. Strings, byte slices, fmt.Stringers, booleans, and the integer and
// float kinds are accepted; any other value fails with ErrInvalidBody, as
// does a string that cannot be carried as header text even after encoding.
// On failure the stored body is left untouched.
//
// Setting a body with characters outside the printable 7-bit range upgrades
// the encoding to Extended. The upgrade is sticky: a later printable body
// does not downgrade it.
func (f *Field) SetBody(body any) error {
	s, ok := stringify(body)
	if !ok {
		return fmt.Errorf("%w: unsupported body type %T", ErrInvalidBody, body)
	}

	if !CanEncode(s) {
		return fmt.Errorf("%w: body is not encodable as header text", ErrInvalidBody)
	}

	if !IsPrintable(s) {
		f.enc = Extended
	}
	f.body = s
	return nil
}

// Render returns the field as a wire-text line, without a trailing line
// break. The body is written in its encoded form. Rendering a field with an
// unset name or body fails with ErrMissingName or ErrMissingBody.
//
// For a field parsed from a compliant wire line, Render reproduces that line.
func (f *Field) Render() (string, error) {
	if f.name == "" {
		return "", ErrMissingName
	}
	if f.body == "" {
		return "", ErrMissingBody
	}
	return f.name + ": " + string(f.RawBody()), nil
}

// String returns the complete header field as a string. Unlike Render, it
// does not reject a field with an unset name or body; it simply writes what
// is there.
func (f *Field) String() string {
	return f.name + ": " + string(f.RawBody())
}

// Bytes returns the complete header field as a slice of bytes.
func (f *Field) Bytes() []byte {
	return []byte(f.String())
}

// WriteTo writes the rendered field to w, folded with DefaultFoldEncoding
// and broken with CRLF. Long encoded bodies are wrapped across continuation
// lines. Returns the number of bytes written.
func (f *Field) WriteTo(w io.Writer) (int64, error) {
	line, err := f.Render()
	if err != nil {
		return 0, err
	}
	return DefaultFoldEncoding.Fold(w, []byte(line), header.CRLF)
}

// stringify converts a scalar-like value to its string form. It reports
// false for types that have no sensible header text representation.
func stringify(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
