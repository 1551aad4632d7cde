package header

// Break represents the line break convention used when reading or writing
// header text.
type Break string

// Constants for use when selecting a line break. If you don't know what to
// pick, choose CRLF.
const (
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix linebreak
	CR   Break = "\x0d"     // \r - old Mac linebreak
	LFCR Break = "\x0a\x0d" // \n\r - for weirdos
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
