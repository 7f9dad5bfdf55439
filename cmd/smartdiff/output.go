package main

import (
	"io"
	"os"
)

// coloredOut is the writer every subcommand renders tables to; split out so
// tests can redirect it.
func coloredOut() io.Writer {
	return os.Stdout
}
