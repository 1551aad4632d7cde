package field

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/styleflasher/laminas-mail/header"
)

const (
	DefaultFoldIndent          = " "  // indent placed before folded lines
	DefaultPreferredFoldLength = 80   // we prefer header lines shorter than this
	DefaultForcedFoldLength    = 1000 // we forceably break header lines longer than this

	DoNotFold = -1 // we prefer not to fold at all
)

var (
	// DefaultFoldEncoding is a FoldEncoding with the default settings. This
	// is the recommended way to fold header fields.
	DefaultFoldEncoding = &FoldEncoding{
		DefaultFoldIndent,
		DefaultPreferredFoldLength,
		DefaultForcedFoldLength,
	}

	// DoNotFoldEncoding is a FoldEncoding that performs no folding.
	DoNotFoldEncoding = &FoldEncoding{
		DefaultFoldIndent,
		DoNotFold,
		DoNotFold,
	}
)

var (
	// ErrFoldIndentSpace is returned by NewFoldEncoding when the fold indent
	// contains something other than spaces and tabs.
	ErrFoldIndentSpace = errors.New("fold indent may only contain spaces and tabs")

	// ErrFoldIndentTooShort is returned by NewFoldEncoding when the fold
	// indent is empty.
	ErrFoldIndentTooShort = errors.New("fold indent must contain at least one space or tab")

	// ErrFoldIndentTooLong is returned by NewFoldEncoding when the fold
	// indent is as long as the preferred fold length or longer.
	ErrFoldIndentTooLong = errors.New("fold indent must be shorter than the preferred fold length")

	// ErrFoldLengthTooLong is returned by NewFoldEncoding when the preferred
	// fold length is longer than the forced fold length.
	ErrFoldLengthTooLong = errors.New("preferred fold length must be no longer than the forced fold length")

	// ErrFoldLengthTooShort is returned by NewFoldEncoding when either fold
	// length is shorter than 3 bytes.
	ErrFoldLengthTooShort = errors.New("preferred fold length and forced fold length cannot be too short")

	// ErrDoNotFold is returned by NewFoldEncoding when only one of the two
	// fold lengths is set to DoNotFold. Set both to DoNotFold to prevent
	// folding, or neither.
	ErrDoNotFold = errors.New("preferred fold length and forced fold length must both be -1 if either are -1")
)

// FoldEncoding provides the tooling for folding and unfolding header field
// lines.
type FoldEncoding struct {
	foldIndent          string
	preferredFoldLength int
	forcedFoldLength    int
}

// NewFoldEncoding creates a FoldEncoding with the given settings. The
// foldIndent must be one or more space or tab characters and shorter than
// preferredFoldLength. The preferredFoldLength must be no longer than
// forcedFoldLength.
//
// Nothing here prevents a fold from landing before the colon. The assumption
// is that the chosen fold lengths are wider than the longest field name,
// which is enough to guarantee names never get folded.
func NewFoldEncoding(
	foldIndent string,
	preferredFoldLength,
	forcedFoldLength int,
) (*FoldEncoding, error) {
	if strings.IndexFunc(foldIndent, isNonSpace) >= 0 {
		return nil, ErrFoldIndentSpace
	}

	if len(foldIndent) < 1 {
		return nil, ErrFoldIndentTooShort
	}

	if (preferredFoldLength == DoNotFold) != (forcedFoldLength == DoNotFold) {
		return nil, ErrDoNotFold
	}

	if preferredFoldLength != DoNotFold {
		if len(foldIndent) >= preferredFoldLength {
			return nil, ErrFoldIndentTooLong
		}

		if preferredFoldLength > forcedFoldLength {
			return nil, ErrFoldLengthTooLong
		}

		if preferredFoldLength < 3 || forcedFoldLength < 3 {
			return nil, ErrFoldLengthTooShort
		}
	}

	return &FoldEncoding{foldIndent, preferredFoldLength, forcedFoldLength}, nil
}

// Unfold removes the line breaks from a folded header field line, leaving the
// whitespace that started each continuation line in place. This recovers the
// body text as a single line.
func (vf *FoldEncoding) Unfold(f []byte) []byte {
	uf := make([]byte, 0, len(f))
	for _, b := range f {
		if b != '\r' && b != '\n' {
			uf = append(uf, b)
		}
	}
	return uf
}

func isSpace(c rune) bool    { return c == ' ' || c == '\t' }
func isNonSpace(c rune) bool { return !isSpace(c) }

// Fold takes an unfolded, or perhaps partially folded, header field line and
// folds it. Every fold line is indented, breaks are placed on whitespace
// where possible, and lines longer than the forced fold length are broken
// regardless.
//
// The folded output is written to the given io.Writer using the given line
// break. Returns the number of bytes written.
func (vf *FoldEncoding) Fold(out io.Writer, f []byte, lb header.Break) (int64, error) {
	total := int64(0)
	continuing := false
	writeFold := func(f []byte, end int) ([]byte, error) {
		// only indent if the break did not land on whitespace already there
		if continuing && !isSpace(rune(f[0])) {
			n, err := out.Write([]byte(vf.foldIndent))
			total += int64(n)
			if err != nil {
				return nil, err
			}
		}
		n, err := out.Write(f[:end])
		total += int64(n)
		if err != nil {
			return nil, err
		}

		n, err = out.Write(lb.Bytes())
		total += int64(n)
		if err != nil {
			return nil, err
		}

		continuing = true

		return bytes.TrimLeft(f[end:], " \t"), nil
	}

	if vf.preferredFoldLength == DoNotFold || len(f) < vf.preferredFoldLength {
		_, err := writeFold(f, len(f))
		return total, err
	}

	// NOTE: We just assume the lb will be 2 chars.

	lines := bytes.Split(f, lb.Bytes())
	for _, line := range lines {
		for len(line) > 0 {
			var err error

			// no fold needed, write the rest as-is
			if len(line) <= vf.preferredFoldLength-2 {
				line, err = writeFold(line, len(line))
				if err != nil {
					return total, err
				}
				continue
			}

			// locate the first breakable character: breaking before it would
			// orphan the indent or split the name from the colon
			var firstChar int
			if continuing {
				firstChar = bytes.IndexFunc(line, isNonSpace)
			} else {
				colon := bytes.IndexRune(line, ':')
				firstChar = bytes.IndexFunc(line[colon+1:], isNonSpace)
				if firstChar >= 0 {
					firstChar += colon + 1
				}
			}
			if firstChar < 0 {
				firstChar = 0
			}

			// best case, break on a space inside the preferred length; when
			// the first breakable character already sits past that window
			// (a very long name, say), there is nowhere preferred to break,
			// so fall through to the searches below
			if firstChar < vf.preferredFoldLength-2 {
				if ix := bytes.LastIndexFunc(line[firstChar:vf.preferredFoldLength-2], isSpace); ix >= 0 {
					line, err = writeFold(line, ix+firstChar)
					if err != nil {
						return total, err
					}
					continue
				}
			}

			// barring that, take the first space past the preferred length,
			// as long as it lands inside the forced length
			if ix := bytes.IndexFunc(line[firstChar:], isSpace); ix >= 0 && ix < vf.forcedFoldLength-2 {
				line, err = writeFold(line, ix+firstChar)
				if err != nil {
					return total, err
				}
				continue
			}

			// a really long line with no space gets a hard break
			if len(line) > vf.forcedFoldLength-2 {
				line, err = writeFold(line, vf.preferredFoldLength-2)
				if err != nil {
					return total, err
				}
				continue
			}

			// not forced to fold, so allow the line to run long
			line, err = writeFold(line, len(line))
			if err != nil {
				return total, err
			}
		}
	}

	return total, nil
}
