// Command smlfmt formats Standard ML source files.
package main

import (
	"fmt"
	"os"

	"github.com/go-smlfmt/smlfmt/cmd/smlfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
