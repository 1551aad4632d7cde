package main

import (
	"github.com/spf13/cobra"

	"github.com/styleflasher/laminas-mail/test/roundtrip/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
