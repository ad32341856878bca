package main

import (
	"fmt"
	"os"
)

// Version is the cardsim version
var Version = "v0.0.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
