// Package field provides the parsing, validation, and output of individual
// header fields: the Name: Value units that make up a message header.
//
// A Field stores its body fully decoded and remembers whether that body needs
// MIME word encoding to travel the wire. Parsing is liberal about what it
// accepts, within the limits of the character rules for names and bodies,
// while output is strict: names are normalized on assignment, bodies are
// checked for encodability, and anything outside the printable 7-bit range is
// wrapped in encoded words on the way out.
package field
