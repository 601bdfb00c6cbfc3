package cmd

import (
	"bytes"
	"testing"

	"github.com/darray-cli/darray/array"
	"github.com/darray-cli/darray/filesystem"
	"github.com/darray-cli/darray/inline"
	"github.com/darray-cli/darray/render"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRunTo(t *testing.T) {
	Convey("runTo", t, func() {
		options := func(script string) *inline.Options {
			return &inline.Options{
				Ops:    lo.Must(inline.Parse(script)),
				Render: render.Options{Separator: ","},
			}
		}

		Convey("Should write to the given writer without a path", func() {
			var buf bytes.Buffer
			opts := options("add 1")
			opts.Out = &buf

			So(runTo(opts, ""), ShouldBeNil)
			So(buf.String(), ShouldStartWith, "add 1 -> [1]")
		})

		Convey("Should write the report to a file and close it", func() {
			So(runTo(options("add 1; add 2"), "report.txt"), ShouldBeNil)

			contents := lo.Must(filesystem.ReadString("report.txt"))
			So(contents, ShouldContainSubstring, "add 2 -> [1,2]")
		})

		Convey("Should keep the steps run before a failure in the file", func() {
			err := runTo(options("add 1; drop; drop"), "failed.txt")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "op 3")

			contents := lo.Must(filesystem.ReadString("failed.txt"))
			So(contents, ShouldContainSubstring, "add 1 -> [1]")
			So(contents, ShouldContainSubstring, "drop ! "+array.ErrOutOfRange.Error())
		})
	})
}
