// Package cmd implements the command-line interface for radiosan.
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/radiosan-cli/radiosan/color"
	"github.com/radiosan-cli/radiosan/icon"
	"github.com/radiosan-cli/radiosan/source"
	"github.com/radiosan-cli/radiosan/style"
	"github.com/radiosan-cli/radiosan/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(radiosCmd)
	radiosCmd.Flags().StringP("filter", "f", "", "Fuzzy-filter stations by name")
	radiosCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

// radiosCmd lists the user's preset radio stations.
var radiosCmd = &cobra.Command{
	Use:   "radios",
	Short: "List the preset radio stations saved in your TuneIn account",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filter = lo.Must(cmd.Flags().GetString("filter"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		src := createSource(cmd)

		radios, err := src.Radios()
		handleErr(err)

		if filter != "" {
			radios = lo.Filter(radios, func(radio *source.Radio, _ int) bool {
				return fuzzy.MatchNormalizedFold(filter, radio.Name)
			})
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(radios))
			return
		}

		fmt.Println(style.Bold(util.Quantify(len(radios), "station", "stations")))
		fmt.Println()

		for _, radio := range radios {
			printRadio(radio)
		}
	},
}

// printRadio renders one station line with its stream qualities.
func printRadio(radio *source.Radio) {
	marker := icon.Get(icon.Radio)
	if !radio.Playable() {
		marker = icon.Get(icon.Mute)
	}

	qualities := lo.Map(radio.Variants, func(v source.StreamVariant, _ int) string {
		return v.Quality.String()
	})

	line := fmt.Sprintf(
		"%s %s %s %s",
		marker,
		style.Bold(radio.Name),
		style.Faint(radio.ID),
		style.Fg(color.Cyan)(strings.Join(qualities, " ")),
	)

	if width, _, err := util.TerminalSize(); err == nil {
		line = style.Truncate(width)(line)
	}

	fmt.Println(line)
}
