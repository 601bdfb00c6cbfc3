// Package cmd implements the command-line interface for darray.
package cmd

import (
	"encoding/json"
	"errors"

	"github.com/darray-cli/darray/filesystem"
	"github.com/darray-cli/darray/inline"
	"github.com/darray-cli/darray/key"
	"github.com/darray-cli/darray/render"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("ops", "e", "", "Operations to execute, separated by ';' or newlines")
	inlineCmd.Flags().StringP("file", "f", "", "Read operations from a file")
	inlineCmd.MarkFlagsMutuallyExclusive("ops", "file")
	lo.Must0(inlineCmd.MarkFlagFilename("file"))

	inlineCmd.Flags().IntSliceP("initial", "i", nil, "Initial contents of the array")
	inlineCmd.Flags().IntP("capacity", "c", 0, "Initial capacity of the array")
	lo.Must0(viper.BindPFlag(key.ArrayCapacity, inlineCmd.Flags().Lookup("capacity")))
	inlineCmd.Flags().Float64P("growth", "g", 0, "Growth factor of the array, clamped to [1.1, 2.0]")
	lo.Must0(viper.BindPFlag(key.ArrayGrowthFactor, inlineCmd.Flags().Lookup("growth")))

	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("ops", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return inline.Names(), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd executes an operation script against a single array.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute array operations non-interactively",
	Long: `Run a script of array operations, one after another, against a single array.

Operations:
  add|append x    prepend x     insert i x    set i x
  get i           remove x      removeat i    drop
  clear           indexof x     contains x    len
  capacity [n]    growth [f]    print         undo

Execution stops at the first failing operation.`,
	Example: `  darray inline -i 80,30,50,40 -e "add 11; prepend 99; drop; remove 30"
  darray inline -f ops.txt --json`,
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("ops") && !cmd.Flags().Changed("file") {
			handleErr(errors.New("either --ops or --file must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		script := lo.Must(cmd.Flags().GetString("ops"))
		if path := lo.Must(cmd.Flags().GetString("file")); path != "" {
			var err error
			script, err = filesystem.ReadString(path)
			handleErr(err)
		}

		ops, err := inline.Parse(script)
		handleErr(err)

		options := &inline.Options{
			Out:          cmd.OutOrStdout(),
			Ops:          ops,
			Initial:      lo.Must(cmd.Flags().GetIntSlice("initial")),
			Capacity:     mo.Some(viper.GetInt(key.ArrayCapacity)),
			GrowthFactor: mo.Some(viper.GetFloat64(key.ArrayGrowthFactor)),
			Json:         lo.Must(cmd.Flags().GetBool("json")),
			Render:       render.FromConfig(),
		}

		// without an explicit capacity an initial array keeps its exact size
		if len(options.Initial) > 0 && !cmd.Flags().Changed("capacity") {
			options.Capacity = mo.None[int]()
		}

		handleErr(runTo(options, lo.Must(cmd.Flags().GetString("output"))))
	},
}

// runTo executes the script, writing the report to the file at path when it is set.
// The file is closed before the script error is returned.
func runTo(options *inline.Options, path string) (err error) {
	if path == "" {
		return inline.Run(options)
	}

	file, err := filesystem.API().Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	options.Out = file
	return inline.Run(options)
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of the inline json output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline mode json output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&inline.Output{})))
	},
}
