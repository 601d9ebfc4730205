package main

import (
	"context"
	"fmt"
	"os"

	"go.llib.dev/chronokit/internal/chronocli"
	"go.llib.dev/frameless/pkg/cli"
)

func main() {
	logger, err := chronocli.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(cli.ExitCodeBadRequest)
	}
	cli.Main(context.Background(), chronocli.Mux(logger))
}
