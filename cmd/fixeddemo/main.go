// Command fixeddemo builds fixed-size vectors and matrices from literal data
// and prints them. See `fixeddemo --help`.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fixedgrid/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitStatus(err))
	}
}
