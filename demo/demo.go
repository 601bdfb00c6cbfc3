// Package demo runs the sample scenario printed by the root command: build an array,
// append and prepend an element, then drop the last element and remove a value.
package demo

import (
	"fmt"
	"io"

	"github.com/darray-cli/darray/array"
	"github.com/darray-cli/darray/key"
	"github.com/darray-cli/darray/log"
	"github.com/darray-cli/darray/render"
	"github.com/darray-cli/darray/util"
	"github.com/spf13/viper"
)

// Options parametrize the scenario.
type Options struct {
	Initial []int
	Append  int
	Prepend int
	Remove  int
	Render  render.Options
}

// OptionsFromConfig reads the scenario from the global configuration.
func OptionsFromConfig() Options {
	return Options{
		Initial: viper.GetIntSlice(key.DemoInitial),
		Append:  viper.GetInt(key.DemoAppend),
		Prepend: viper.GetInt(key.DemoPrepend),
		Remove:  viper.GetInt(key.DemoRemove),
		Render:  render.FromConfig(),
	}
}

// Run executes the scenario and writes three listings to out.
func Run(out io.Writer, opts Options) error {
	arr := array.From(opts.Initial...)
	log.Infof("demo: initial %s, capacity %d", util.Quantify(arr.Len(), "element", "elements"), arr.Cap())

	if err := show(out, "Initial array", arr, opts); err != nil {
		return err
	}

	arr.Append(opts.Append).Prepend(opts.Prepend)

	if err := show(out, "After additions", arr, opts); err != nil {
		return err
	}

	if _, err := arr.DropLast(); err != nil {
		return fmt.Errorf("drop last: %w", err)
	}
	if !arr.Contains(opts.Remove) {
		log.Warnf("demo: %d is not in the array, nothing to remove", opts.Remove)
	}
	arr.RemoveValue(opts.Remove)

	log.Infof("demo: final %s, capacity %d", util.Quantify(arr.Len(), "element", "elements"), arr.Cap())
	return show(out, "After removals", arr, opts)
}

func show(out io.Writer, title string, arr *array.Array[int], opts Options) error {
	_, err := fmt.Fprintln(out, render.Listing(title, arr.Values(), opts.Render))
	return err
}
