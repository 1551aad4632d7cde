package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/styleflasher/laminas-mail/header"
	"github.com/styleflasher/laminas-mail/header/field"
)

var headerCmd = &cobra.Command{
	Use:   "header file",
	Short: "Shows the diff of a single header block round-trip",
	Args:  cobra.ExactArgs(1),
	Run:   RunHeader,
}

func init() {
	rootCmd.AddCommand(headerCmd)
}

// sniffBreak returns the line break convention used by the given header text.
// Text with no line break at all is assumed to use the network convention.
func sniffBreak(m []byte) header.Break {
	for i, b := range m {
		switch b {
		case '\r':
			if i+1 < len(m) && m[i+1] == '\n' {
				return header.CRLF
			}
			return header.CR
		case '\n':
			if i+1 < len(m) && m[i+1] == '\r' {
				return header.LFCR
			}
			return header.LF
		}
	}
	return header.CRLF
}

func RunHeader(cmd *cobra.Command, args []string) {
	orig, err := os.ReadFile(args[0])
	if err != nil {
		panic(err)
	}

	lb := sniffBreak(orig)
	lines, err := field.ParseLines(orig, lb.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	var rt strings.Builder
	for _, line := range lines {
		f, err := field.Parse(line)
		if err != nil {
			panic(err)
		}

		out, err := f.Render()
		if err != nil {
			panic(err)
		}

		rt.WriteString(out)
		rt.WriteString(lb.String())
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(orig), rt.String(), false)
	fmt.Print(dmp.DiffPrettyText(diffs))
}
