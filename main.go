// Package main is the entry point for the radiosan application.
package main

import (
	"github.com/radiosan-cli/radiosan/cache"
	"github.com/radiosan-cli/radiosan/cmd"
	"github.com/radiosan-cli/radiosan/config"
	"github.com/radiosan-cli/radiosan/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Prune expired response cache entries in the background.
	go cache.CollectGarbage()

	cmd.Execute()
}
