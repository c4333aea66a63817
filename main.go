package main

import (
	"os"

	"github.com/indiepages/indiepages/cli"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
