// Package cmd implements the command-line interface for radiosan.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/radiosan-cli/radiosan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	resolveCmd.Flags().BoolP("url-only", "u", false, "Print only the playable URL")
}

// resolveCmd resolves a stream variant id into playable stream details.
var resolveCmd = &cobra.Command{
	Use:   "resolve [stream-id]",
	Short: "Resolve a stream id (e.g. 12345--aac) into its playable URL and format",
	Long: `Resolve a stream id into playable stream details.

A stream id is a station id optionally suffixed with an encoding
discriminator, e.g. "12345--aac". Without a discriminator the first
listed stream is returned.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson  = lo.Must(cmd.Flags().GetBool("json"))
			urlOnly = lo.Must(cmd.Flags().GetBool("url-only"))
		)

		src := createSource(cmd)

		result, err := src.StreamDetails(args[0])
		handleErr(err)

		details, ok := result.Get()
		if !ok {
			handleErr(errors.New("no matching stream for " + args[0]))
		}

		if urlOnly {
			fmt.Println(details.Path)
			return
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(details))
			return
		}

		fmt.Printf("%s %s\n", style.Faint("URL:"), details.Path)
		fmt.Printf("%s %s\n", style.Faint("Content type:"), details.ContentType)
		fmt.Printf("%s %d Hz / %d bit\n", style.Faint("Audio:"), details.SampleRate, details.BitDepth)
	},
}
