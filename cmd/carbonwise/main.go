// Command carbonwise estimates lifecycle emissions of Indian passenger
// vehicles.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/carbonwise/internal/analysis"
	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/cli"
	"github.com/rshade/carbonwise/internal/lca"
	"github.com/rshade/carbonwise/pkg/version"
)

// Process exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitBadInput  = 2
	exitNotFound  = 3
	exitInterrupt = 130
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.FormatVersion())
	return root.ExecuteContext(ctx)
}

// exitCode maps an error from run to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupt
	case errors.Is(err, catalog.ErrVehicleNotFound), errors.Is(err, catalog.ErrStateNotFound):
		return exitNotFound
	case errors.Is(err, analysis.ErrInvalidRequest), errors.Is(err, lca.ErrInvalidInput):
		return exitBadInput
	default:
		return exitFailure
	}
}
