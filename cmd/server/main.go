package main

import (
	"os"

	"github.com/jvs-dev/memory-game-guadalupe/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
