package main

import (
	"log/slog"
	"os"

	"github.com/gordian-engine/talon/cmd/talon/internal/cmd"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := cmd.NewRootCommand(log, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
