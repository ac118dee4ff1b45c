package main

import (
	"os"

	"github.com/cliware/cliware/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
