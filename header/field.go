package header

// Field is the capability set shared by every header field variant. A header
// is a list of fields, and while most of them are plain name/body pairs, some
// (address lists, dates, parameterized media types) parse their body into
// richer values. All of them can report a name and a body and write
// themselves back out as header text.
type Field interface {
	// Name returns the header field name.
	Name() string

	// Body returns the header field body in its decoded, logical form.
	Body() string

	// String returns the complete field as a wire-text line, without a
	// trailing line break.
	String() string

	// Bytes returns the complete field as a slice of bytes, without a
	// trailing line break.
	Bytes() []byte
}

// MutableField is a Field whose name and body may be replaced after
// construction. Setters return an error rather than mutating the field when
// the given input cannot be represented as header text.
type MutableField interface {
	Field

	// SetName replaces the field name.
	SetName(name string) error

	// SetBody replaces the field body.
	SetBody(body any) error
}
