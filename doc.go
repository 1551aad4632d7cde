// Package mail provides tools for working with the header fields of mail
// messages: the Name: Value units found at the top of message source text.
//
// The header/field package is the heart of the module. It parses raw field
// lines into validated name/body pairs, normalizes field names into their
// conventional hyphenated form, tracks whether a body needs MIME word
// encoding to be carried as 7-bit header text, and renders fields back out in
// a form that round-trips cleanly. Folding long field lines across
// continuation lines and unfolding them again is handled there as well.
//
// The header package holds the couple of small types shared by every header
// field variant: the Break line-ending type and the Field capability
// interfaces.
//
// By default only us-ascii, iso-8859-1, and utf-8 field bodies can be
// transcoded. Import the header/encoding package for side effects to enable
// nearly every character set registered with IANA.
package mail
