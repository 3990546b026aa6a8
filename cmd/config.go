// Package cmd implements the command-line interface for radiosan.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/radiosan-cli/radiosan/color"
	"github.com/radiosan-cli/radiosan/config"
	"github.com/radiosan-cli/radiosan/constant"
	"github.com/radiosan-cli/radiosan/filesystem"
	"github.com/radiosan-cli/radiosan/icon"
	"github.com/radiosan-cli/radiosan/style"
	"github.com/radiosan-cli/radiosan/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	msg := fmt.Sprintf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)

	return errors.New(msg)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd serves as the parent command for managing application configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration settings and defaults",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Specify the configuration keys to retrieve information for")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

// configInfoCmd displays metadata and descriptions for configuration fields.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display detailed information and descriptions for specified configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))

			for _, key := range keys {
				if _, ok := config.Default[key]; !ok {
					handleErr(errUnknownKey(key))
				}

				fields = append(fields, config.Default[key])
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(fields))
			return
		}

		for i, field := range fields {
			fmt.Print(field.Pretty())

			if i < len(fields)-1 {
				fmt.Println()
				fmt.Println()
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

// configSetCmd updates the value of a specific configuration key.
var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Update the value of a specified configuration key",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, value := args[0], args[1]

		if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		}

		var v any
		switch config.Default[key].Value.(type) {
		case string:
			v = value
		case int:
			parsedInt, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				handleErr(fmt.Errorf("invalid integer value: %s", value))
			}

			v = int(parsedInt)
		case bool:
			parsedBool, err := strconv.ParseBool(value)
			if err != nil {
				handleErr(fmt.Errorf("invalid boolean value: %s", value))
			}

			v = parsedBool
		}

		viper.Set(key, v)
		handleErr(writeConfig())

		fmt.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", v)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

// configGetCmd retrieves the current value of a configuration key.
var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Retrieve the current value of a specified configuration key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		}

		fmt.Println(viper.Get(key))
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

// configDeleteCmd removes the configuration file from the localized storage.
var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the localized configuration file, reverting all settings to defaults",
	Run: func(cmd *cobra.Command, args []string) {
		configFilePath := filepath.Join(
			where.Config(),
			fmt.Sprintf("%s.%s", constant.Radiosan, "toml"),
		)

		handleErr(filesystem.API().Remove(configFilePath))
		fmt.Printf(
			"%s deleted config at %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			configFilePath,
		)
	},
}
