// Package cmd implements the command-line interface for darray.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/darray-cli/darray/color"
	"github.com/darray-cli/darray/constant"
	"github.com/darray-cli/darray/demo"
	"github.com/darray-cli/darray/icon"
	"github.com/darray-cli/darray/key"
	"github.com/darray-cli/darray/log"
	"github.com/darray-cli/darray/style"
	"github.com/darray-cli/darray/util"
	cc "github.com/ivanpirog/coloredcobra"
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

	rootCmd.PersistentFlags().String("separator", ", ", "Separator placed between listed elements")
	lo.Must0(viper.BindPFlag(key.RenderSeparator, rootCmd.PersistentFlags().Lookup("separator")))

	rootCmd.Flags().IntSlice("initial", nil, "Initial contents of the demonstration array")
	lo.Must0(viper.BindPFlag(key.DemoInitial, rootCmd.Flags().Lookup("initial")))

	rootCmd.Flags().Int("append", 0, "Value appended by the demonstration")
	lo.Must0(viper.BindPFlag(key.DemoAppend, rootCmd.Flags().Lookup("append")))

	rootCmd.Flags().Int("prepend", 0, "Value prepended by the demonstration")
	lo.Must0(viper.BindPFlag(key.DemoPrepend, rootCmd.Flags().Lookup("prepend")))

	rootCmd.Flags().Int("remove", 0, "Value removed by the demonstration")
	lo.Must0(viper.BindPFlag(key.DemoRemove, rootCmd.Flags().Lookup("remove")))
}

// rootCmd runs the demonstration scenario when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A resizable array playground",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A resizable array playground"),
	Example: "  darray --initial 80,30,50,40 --append 11 --prepend 99 --remove 30",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(demo.Run(cmd.OutOrStdout(), demo.OptionsFromConfig()))
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

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), util.Capitalize(strings.Trim(err.Error(), " \n")))
		os.Exit(1)
	}
}

func printSuccess(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}
