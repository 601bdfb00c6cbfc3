package where

import (
	"path/filepath"
	"testing"

	"github.com/darray-cli/darray/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() should honor the override", func() {
			t.Setenv(EnvConfigPath, "/custom/darray")
			So(Config(), ShouldEqual, "/custom/darray")
			So(lo.Must(filesystem.API().IsDir("/custom/darray")), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(filepath.Base(path), ShouldEqual, "logs")
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}
