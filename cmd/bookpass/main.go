// Command bookpass runs the textbook exchange backend and its maintenance
// tasks.
//
// Commands:
//
//	serve            run the HTTP API until SIGINT/SIGTERM
//	migrate up       apply pending schema migrations
//	migrate down     roll back the latest migration
//	migrate status   list migrations and their state
//	seed             load a demo school (see internal/app/seeder)
//	token            print an access token for a user id (development)
//	version          print build information
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
