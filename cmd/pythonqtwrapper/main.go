package main

import (
	"os"

	"github.com/example/pythonqtwrapper/internal/cli"
)

func main() {
	os.Exit(cli.HandleError(os.Stderr, cli.RootCmd().Execute()))
}
