// main is the entry point for the synthcast CLI.
package main

import (
	"github.com/synthcast/synthcast/cmd"
	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/internal/iocache"
)

func main() {
	// Wire the global run store manager into the command layer.
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	// Shutdown order matters: close stores and flush profiles before exiting.
	iocache.CloseStores()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("profiling shutdown failed", perr)
	}

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
