// Package cmd implements the command-line interface for radiosan.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/radiosan-cli/radiosan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

// searchCmd queries the provider. TuneIn exposes no usable search endpoint,
// so every category always comes back empty; the command exists so scripts
// can rely on a uniform capability surface.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the provider (TuneIn offers no search; results are always empty)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		src := createSource(cmd)

		results, err := src.Search(args[0])
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(results))
			return
		}

		fmt.Printf("%d artists, %d albums, %d tracks, %d playlists, %d radios\n",
			len(results.Artists),
			len(results.Albums),
			len(results.Tracks),
			len(results.Playlists),
			len(results.Radios),
		)
		fmt.Println(style.Faint("TuneIn has no search endpoint; use \"radiosan radios --filter\" instead"))
	},
}
