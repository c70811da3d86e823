package main

import (
	"os"

	"github.com/arthur-debert/bookfmt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
