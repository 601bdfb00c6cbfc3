// Package cmd implements the command-line interface for darray.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/darray-cli/darray/color"
	"github.com/darray-cli/darray/config"
	"github.com/darray-cli/darray/filesystem"
	"github.com/darray-cli/darray/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
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
}

// configInfoCmd displays metadata and descriptions for configuration fields.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display detailed information and descriptions for specified configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := selectFields(lo.Must(cmd.Flags().GetStringSlice("key")))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		pretty := lo.Map(fields, func(field config.Field, _ int) string {
			return field.Pretty()
		})
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pretty, "\n\n"))
		handleErr(err)
	},
}

// selectFields returns the named fields sorted by key, or every field when keys is empty.
func selectFields(keys []string) ([]config.Field, error) {
	fields := lo.Values(config.Default)

	if len(keys) > 0 {
		fields = make([]config.Field, 0, len(keys))
		for _, key := range keys {
			field, ok := config.Default[key]
			if !ok {
				return nil, errUnknownKey(key)
			}
			fields = append(fields, field)
		}
	}

	slices.SortFunc(fields, func(a, b config.Field) int {
		return strings.Compare(a.Key, b.Key)
	})

	return fields, nil
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

// configSetCmd updates the value of a specific configuration key.
var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>...",
	Short:             "Update the value of a specified configuration key",
	Example:           "  darray config set demo.initial 1,2,3\n  darray config set array.growth_factor 1.5",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		field, ok := config.Default[key]
		if !ok {
			handleErr(errUnknownKey(key))
		}

		value, err := parseValue(field, args[1:])
		handleErr(err)

		viper.Set(key, value)
		handleErr(saveConfig())

		printSuccess("set %s to %s", style.Fg(color.Purple)(key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

// configGetCmd retrieves the current value of a configuration key.
var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Retrieve the current value of a specified configuration key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		if _, ok := config.Default[args[0]]; !ok {
			handleErr(errUnknownKey(args[0]))
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), viper.Get(args[0]))
		handleErr(err)
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Forcefully overwrite the existing configuration file")
}

// configWriteCmd serializes the current in-memory configuration to disk.
var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Persist the current in-memory configuration to the localized config file",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(removeConfig())
		}

		handleErr(viper.SafeWriteConfig())
		printSuccess("wrote config to %s", config.Path())
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

// configDeleteCmd removes the configuration file from the localized storage.
var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Permanently remove the localized configuration file from the system",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(removeConfig())
		printSuccess("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The configuration key to restore to its default value")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore all configuration settings to their factory defaults")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configResetCmd restores configuration keys to their factory default values.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore a specified configuration key to its default value",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			key = lo.Must(cmd.Flags().GetString("key"))
			all = lo.Must(cmd.Flags().GetBool("all"))
		)

		if all {
			key = ""
		}

		handleErr(resetConfig(key))
		handleErr(saveConfig())

		if all {
			printSuccess("reset all config values")
			return
		}

		printSuccess(
			"reset %s to default value %s",
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprint(config.Default[key].Value)),
		)
	},
}

// resetConfig restores key to its default, or every key when key is empty.
func resetConfig(key string) error {
	if key == "" {
		for name, field := range config.Default {
			viper.Set(name, field.Value)
		}
		return nil
	}

	field, ok := config.Default[key]
	if !ok {
		return errUnknownKey(key)
	}

	viper.Set(key, field.Value)
	return nil
}

// saveConfig writes the in-memory configuration, creating the file when it does not exist yet.
func saveConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}

	return err
}

// removeConfig deletes the configuration file if there is one.
func removeConfig() error {
	exists, err := filesystem.API().Exists(config.Path())
	if err != nil || !exists {
		return err
	}

	return filesystem.API().Remove(config.Path())
}

// parseValue converts command-line text into the type of the field's default value.
func parseValue(field config.Field, value []string) (any, error) {
	switch field.Value.(type) {
	case string:
		return value[0], nil
	case int:
		parsed, err := strconv.Atoi(value[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", value[0])
		}
		return parsed, nil
	case float64:
		parsed, err := strconv.ParseFloat(value[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float value: %s", value[0])
		}
		return parsed, nil
	case bool:
		parsed, err := strconv.ParseBool(value[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", value[0])
		}
		return parsed, nil
	case []string:
		return value, nil
	case []int:
		return config.ParseInts(strings.Join(value, " "))
	default:
		return nil, fmt.Errorf("unsupported type %s", field.TypeName())
	}
}
