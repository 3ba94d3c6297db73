package main

import (
	"os"

	"github.com/stylesift/stylesift/cmd/siftctl/cmd"
	"github.com/stylesift/stylesift/internal/version"
)

func main() {
	cmd.SetVersion(version.String())
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
