// Command geoplace finds population-optimal facility locations among US
// county centroids.
//
//	geoplace find --data public/data/county_centroids.json --k 1,2
//	geoplace tally --anchors 47185,32023 --anchors 39155,32023,22087
//
// Every flag can also be set through a GEOPLACE_* environment variable
// (for example GEOPLACE_DATA or GEOPLACE_MEMORY_LIMIT) or a .env file in the
// working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/geoplace"
	"github.com/joho/godotenv"
)

const (
	exitError        = 1
	exitPrecondition = 2
)

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, geoplace.ErrPrecondition) {
		return exitPrecondition
	}
	return exitError
}
