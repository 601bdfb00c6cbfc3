// Package cmd implements the command-line interface for darray.
package cmd

import (
	"os"
	"strings"

	"github.com/darray-cli/darray/color"
	"github.com/darray-cli/darray/config"
	"github.com/darray-cli/darray/constant"
	"github.com/darray-cli/darray/style"
	"github.com/darray-cli/darray/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVariables returns every supported environment variable name, sorted.
func envVariables() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		return strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(k))
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range envVariables() {
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
