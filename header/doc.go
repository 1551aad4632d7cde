// Package header holds the small surface shared by all header field variants:
// the Break type naming the line-break conventions found in message text and
// the Field capability interfaces. The concrete name/body field implementation
// lives in the field subpackage.
package header
