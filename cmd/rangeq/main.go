// Command rangeq runs query scripts against segment trees, Fenwick trees and union-find
// forests. See package internal/script for the script language.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(nil).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
