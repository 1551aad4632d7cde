package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleflasher/laminas-mail/header/field"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	s := field.Encode("⚀⚁⚂⚃⚄⚅")
	assert.Equal(t, "=?utf-8?b?4pqA4pqB4pqC4pqD4pqE4pqF?=", s)

	// printable ASCII needs no encoded words
	s = field.Encode("plain ascii")
	assert.Equal(t, "plain ascii", s)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	s, err := field.Decode("=?utf-8?b?4pqA4pqB4pqC4pqD4pqE4pqF?=")
	assert.NoError(t, err)
	assert.Equal(t, "⚀⚁⚂⚃⚄⚅", s)

	// no encoded words, no change
	s, err = field.Decode("plain ascii")
	assert.NoError(t, err)
	assert.Equal(t, "plain ascii", s)
}

func TestEncodeIn(t *testing.T) {
	t.Parallel()

	// relies on the header/encoding import to transcode into greek and back
	const kalimera = "καλημέρα"

	enc, err := field.EncodeIn("greek", kalimera)
	require.NoError(t, err)
	assert.Contains(t, enc, "=?greek?b?")

	dec, err := field.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, kalimera, dec)

	_, err = field.EncodeIn("martian", kalimera)
	assert.Error(t, err)
}
