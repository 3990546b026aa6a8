package util

import (
	"testing"

	"github.com/radiosan-cli/radiosan/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "station", "stations"), ShouldEqual, "1 station")
		So(Quantify(2, "station", "stations"), ShouldEqual, "2 stations")
		So(Quantify(0, "station", "stations"), ShouldEqual, "0 stations")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		Convey("Removes a file", func() {
			So(filesystem.API().WriteFile("/file", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/file"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("/file")
			So(exists, ShouldBeFalse)
		})

		Convey("Removes a directory recursively", func() {
			So(filesystem.API().WriteFile("/dir/sub/file", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/dir"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("/dir")
			So(exists, ShouldBeFalse)
		})

		Convey("Errors on a missing path", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}
