// Package cmd implements the command-line interface for radiosan.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/radiosan-cli/radiosan/color"
	"github.com/radiosan-cli/radiosan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(radioCmd)
	radioCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

// radioCmd displays the details of a single station.
var radioCmd = &cobra.Command{
	Use:   "radio [station-id]",
	Short: "Display the details and stream variants of one station",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		src := createSource(cmd)

		result, err := src.Radio(args[0])
		handleErr(err)

		radio, ok := result.Get()
		if !ok {
			handleErr(errors.New("station not found: " + args[0]))
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(radio))
			return
		}

		fmt.Printf("%s %s\n", style.Bold(radio.Name), style.Faint(radio.ID))
		if image, ok := radio.Image().Get(); ok {
			fmt.Printf("%s %s\n", style.Faint("Image:"), image)
		}

		if !radio.Playable() {
			fmt.Println(style.Fg(color.Yellow)("No playable streams listed for this station"))
			return
		}

		fmt.Println()
		for _, variant := range radio.Variants {
			fmt.Printf(
				"  %s %s\n    %s\n",
				style.Fg(color.Cyan)(variant.Quality.String()),
				style.Faint(variant.ID),
				variant.URL,
			)
		}
	},
}
