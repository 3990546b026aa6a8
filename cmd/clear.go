// Package cmd implements the command-line interface for radiosan.
package cmd

import (
	"fmt"

	"github.com/radiosan-cli/radiosan/icon"
	"github.com/radiosan-cli/radiosan/util"
	"github.com/radiosan-cli/radiosan/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"response cache", "responses", mo.Some("r"), where.Responses},
	{"logs directory", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached responses and other application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if doClear(target.argLong) {
				anyCleared = true
				e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
				_ = util.Delete(target.location())
				e()
				fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
