// Package cmd implements the command-line interface for radiosan.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/radiosan-cli/radiosan/constant"
	"github.com/radiosan-cli/radiosan/icon"
	"github.com/radiosan-cli/radiosan/key"
	"github.com/radiosan-cli/radiosan/log"
	"github.com/radiosan-cli/radiosan/provider"
	"github.com/radiosan-cli/radiosan/source"
	"github.com/radiosan-cli/radiosan/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the radiosan application.
var rootCmd = &cobra.Command{
	Use:   constant.Radiosan,
	Short: "A minimalist command-line client for TuneIn internet radio",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createSource builds and starts the TuneIn source, or exits with guidance
// when the provider is not configured.
func createSource(cmd *cobra.Command) source.Source {
	p, ok := provider.Get("tunein")
	if !ok {
		handleErr(errors.New("tunein provider is not registered"))
	}

	if !p.Available() {
		handleErr(errors.New(`tunein provider is not configured; run "radiosan login" or set the tunein.* config keys`))
	}

	src, err := p.CreateSource(cmd.Context())
	handleErr(err)
	return src
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
