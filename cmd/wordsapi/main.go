// Command wordsapi looks words up in the WordsAPI dictionary and, when a
// database is configured, keeps a journal of every lookup.
//
// Exit codes are listed in internal/transport/cli.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordsapi/internal/transport/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "wordsapi:", cli.Describe(err))
		os.Exit(cli.ExitCode(err))
	}
}
