package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/styleflasher/laminas-mail/header"
)

func TestBreak(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\r\n", header.CRLF.String())
	assert.Equal(t, []byte("\n"), header.LF.Bytes())
	assert.Equal(t, "\r", header.CR.String())
	assert.Equal(t, "\n\r", header.LFCR.String())
}
