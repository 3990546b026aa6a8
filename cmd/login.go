// Package cmd implements the command-line interface for radiosan.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/radiosan-cli/radiosan/auth"
	"github.com/radiosan-cli/radiosan/constant"
	"github.com/radiosan-cli/radiosan/icon"
	"github.com/radiosan-cli/radiosan/key"
	"github.com/radiosan-cli/radiosan/log"
	"github.com/radiosan-cli/radiosan/style"
	"github.com/radiosan-cli/radiosan/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

// loginCmd interactively stores the TuneIn account credentials.
// The password goes to the system keyring; only the username and the enabled
// flag are written to the config file.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store your TuneIn account credentials and enable the provider",
	Run: func(cmd *cobra.Command, args []string) {
		var username string
		handleErr(survey.AskOne(&survey.Input{
			Message: "TuneIn username:",
			Default: viper.GetString(key.TuneInUsername),
		}, &username, survey.WithValidator(survey.Required)))

		var password string
		handleErr(survey.AskOne(&survey.Password{
			Message: "TuneIn password:",
		}, &password, survey.WithValidator(survey.Required)))

		viper.Set(key.TuneInEnabled, true)
		viper.Set(key.TuneInUsername, username)

		if err := auth.SetPassword(password); err != nil {
			// No usable keyring (typically headless hosts): fall back to
			// the plain config value.
			log.Warnf("keyring unavailable, storing password in config: %v", err)
			viper.Set(key.TuneInPassword, password)
			fmt.Printf("%s No system keyring available, password stored in the config file\n", icon.Get(icon.Lock))
		}

		handleErr(writeConfig())
		fmt.Printf("%s Logged in as %s\n", icon.Get(icon.Success), style.Bold(username))
	},
}

// logoutCmd removes stored credentials and disables the provider.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored TuneIn credentials and disable the provider",
	Run: func(cmd *cobra.Command, args []string) {
		_ = auth.DeletePassword()

		viper.Set(key.TuneInEnabled, false)
		viper.Set(key.TuneInUsername, "")
		viper.Set(key.TuneInPassword, "")

		handleErr(writeConfig())
		fmt.Printf("%s Logged out\n", icon.Get(icon.Success))
	},
}

// writeConfig persists the current viper state to the localized config file.
func writeConfig() error {
	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.WriteConfigAs(filepath.Join(where.Config(), constant.Radiosan+".toml"))
		}
		return err
	}
	return nil
}
