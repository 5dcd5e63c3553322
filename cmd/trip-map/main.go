package main

import (
	"os"

	"github.com/jdamcd/trip-map/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
