// Package main is the entry point for the vswhere CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/thoreinstein/vssetup/cmd/vswhere/commands"
	"github.com/thoreinstein/vssetup/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.Execute(ctx)
	stop()

	if err != nil {
		os.Exit(errors.Fprint(os.Stderr, err))
	}
}
