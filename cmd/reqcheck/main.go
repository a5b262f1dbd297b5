package main

import (
	"os"

	"github.com/ariel-frischer/reqcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
