package field_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleflasher/laminas-mail/header"
	"github.com/styleflasher/laminas-mail/header/field"
)

var _ header.MutableField = (*field.Field)(nil)

func TestNew(t *testing.T) {
	t.Parallel()

	f, err := field.New("subject", "testing")
	require.NoError(t, err)

	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, "testing", f.Body())
	assert.Equal(t, field.Minimal, f.Encoding())
	assert.Equal(t, "Subject: testing", f.String())
	assert.Equal(t, []byte("Subject: testing"), f.Bytes())

	_, err = field.New("", "testing")
	assert.ErrorIs(t, err, field.ErrInvalidName)

	_, err = field.New("Subject", struct{}{})
	assert.ErrorIs(t, err, field.ErrInvalidBody)
}

func TestFieldSetName(t *testing.T) {
	t.Parallel()

	var f field.Field

	err := f.SetName("content_type")
	assert.NoError(t, err)
	assert.Equal(t, "Content-Type", f.Name())

	err = f.SetName("x-my_custom-header")
	assert.NoError(t, err)
	assert.Equal(t, "X-My-Custom-Header", f.Name())

	err = f.SetName("x_forwarded_for")
	assert.NoError(t, err)
	assert.Equal(t, "X-Forwarded-For", f.Name())

	// normalization is idempotent
	err = f.SetName(f.Name())
	assert.NoError(t, err)
	assert.Equal(t, "X-Forwarded-For", f.Name())

	// spaces are word separators too, so they come out as hyphens
	err = f.SetName("With Space")
	assert.NoError(t, err)
	assert.Equal(t, "With-Space", f.Name())

	err = f.SetName("")
	assert.ErrorIs(t, err, field.ErrInvalidName)
	assert.Equal(t, "With-Space", f.Name())

	err = f.SetName("Subject\x01")
	assert.ErrorIs(t, err, field.ErrInvalidName)
	assert.Equal(t, "With-Space", f.Name())
}

func TestFieldSetBody(t *testing.T) {
	t.Parallel()

	var f field.Field

	err := f.SetBody("Hello")
	assert.NoError(t, err)
	assert.Equal(t, "Hello", f.Body())
	assert.Equal(t, field.Minimal, f.Encoding())

	err = f.SetBody([]byte("from bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "from bytes", f.Body())

	err = f.SetBody(42)
	assert.NoError(t, err)
	assert.Equal(t, "42", f.Body())

	err = f.SetBody(4.5)
	assert.NoError(t, err)
	assert.Equal(t, "4.5", f.Body())

	err = f.SetBody(true)
	assert.NoError(t, err)
	assert.Equal(t, "true", f.Body())

	err = f.SetBody(header.CRLF) // a fmt.Stringer
	assert.NoError(t, err)
	assert.Equal(t, "\r\n", f.Body())

	err = f.SetBody(struct{ A int }{1})
	assert.ErrorIs(t, err, field.ErrInvalidBody)
	assert.Equal(t, "\r\n", f.Body())
}

func TestFieldStickyEncoding(t *testing.T) {
	t.Parallel()

	var f field.Field

	err := f.SetBody("snowman ☃")
	assert.NoError(t, err)
	assert.Equal(t, field.Extended, f.Encoding())

	// the upgrade does not revert when a printable body is set
	err = f.SetBody("plain ascii")
	assert.NoError(t, err)
	assert.Equal(t, field.Extended, f.Encoding())
	assert.Equal(t, "plain ascii", f.Body())

	// a plain ascii body needs no encoded words even when Extended
	assert.Equal(t, []byte("plain ascii"), f.RawBody())

	// the explicit override is the only way back down
	f.SetEncoding(field.Minimal)
	assert.Equal(t, field.Minimal, f.Encoding())
}

func TestFieldSetBodyUnencodable(t *testing.T) {
	t.Parallel()

	var f field.Field

	err := f.SetBody("good body")
	require.NoError(t, err)

	err = f.SetBody("broken \xc3\x28 utf8")
	assert.ErrorIs(t, err, field.ErrInvalidBody)
	assert.Equal(t, "good body", f.Body())
	assert.Equal(t, field.Minimal, f.Encoding())

	err = f.SetBody("nul \x00 byte")
	assert.ErrorIs(t, err, field.ErrInvalidBody)
	assert.Equal(t, "good body", f.Body())
}

func TestFieldRender(t *testing.T) {
	t.Parallel()

	var f field.Field

	_, err := f.Render()
	assert.ErrorIs(t, err, field.ErrMissingName)

	require.NoError(t, f.SetName("Subject"))
	_, err = f.Render()
	assert.ErrorIs(t, err, field.ErrMissingBody)

	require.NoError(t, f.SetBody("Hello"))
	line, err := f.Render()
	assert.NoError(t, err)
	assert.Equal(t, "Subject: Hello", line)

	var g field.Field
	require.NoError(t, g.SetBody("Hello"))
	_, err = g.Render()
	assert.ErrorIs(t, err, field.ErrMissingName)
}

func TestFieldRenderEncoded(t *testing.T) {
	t.Parallel()

	f, err := field.New("Subject", "♠♣♥♦")
	require.NoError(t, err)

	assert.Equal(t, field.Extended, f.Encoding())
	assert.Equal(t, "♠♣♥♦", f.Body())
	assert.Equal(t, []byte("=?utf-8?b?4pmg4pmj4pml4pmm?="), f.RawBody())

	line, err := f.Render()
	assert.NoError(t, err)
	assert.Equal(t, "Subject: =?utf-8?b?4pmg4pmj4pml4pmm?=", line)
}

func TestFieldWriteTo(t *testing.T) {
	t.Parallel()

	f, err := field.New("Subject", "a short one")
	require.NoError(t, err)

	var buf strings.Builder
	n, err := f.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "Subject: a short one\r\n", buf.String())

	var g field.Field
	_, err = g.WriteTo(&buf)
	assert.ErrorIs(t, err, field.ErrMissingName)
}

func TestEncodingString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Minimal", field.Minimal.String())
	assert.Equal(t, "Extended", field.Extended.String())
}
