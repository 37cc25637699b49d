// SPDX-License-Identifier: MIT

// Command reactnet analyses biorefinery reaction networks.
//
// Usage:
//
//	reactnet run <kind> [--plot option] [--input f] [--merge f] [--compare f]
//	                    [--reference-dir d] [--output-dir d] [--format json|yaml]
//	reactnet kinds
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/katalvlaran/reactnet/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(viper.New(), logging.New).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
