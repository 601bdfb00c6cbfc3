// Package render turns container contents into delimited text listings for the terminal.
package render

import (
	"fmt"
	"iter"
	"strings"

	"github.com/darray-cli/darray/color"
	"github.com/darray-cli/darray/key"
	"github.com/darray-cli/darray/style"
	"github.com/darray-cli/darray/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
)

// minWidth keeps narrow terminals from wrapping after every element.
const minWidth = 20

// Options controls the rendering of a listing.
type Options struct {
	// Separator is placed between elements.
	Separator string
	// Colored enables lipgloss styling of the title.
	Colored bool
	// Width wraps the listing at word boundaries; 0 disables wrapping.
	Width int
}

// FromConfig builds Options from the global configuration.
// Wrapping is only enabled when stdout is a terminal.
func FromConfig() Options {
	opts := Options{
		Separator: viper.GetString(key.RenderSeparator),
		Colored:   viper.GetBool(key.CliColored),
	}

	if viper.GetBool(key.RenderWrap) {
		if width, _, err := util.TerminalSize(); err == nil {
			opts.Width = util.Max(width, minWidth)
		}
	}

	return opts
}

// Join formats every element with fmt.Sprint and joins them with sep.
func Join[T any](seq iter.Seq[T], sep string) string {
	var b strings.Builder
	first := true
	for v := range seq {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(fmt.Sprint(v))
	}
	return b.String()
}

// Listing renders "title: e1<sep>e2..." according to opts. An empty title renders the elements only.
func Listing[T any](title string, seq iter.Seq[T], opts Options) string {
	body := Join(seq, opts.Separator)

	line := body
	if title != "" {
		head := title + ":"
		if opts.Colored {
			head = style.Fg(color.HiPurple)(head)
		}
		line = head + " " + body
	}

	if opts.Width > 0 {
		line = wordwrap.String(line, opts.Width)
	}

	return line
}
