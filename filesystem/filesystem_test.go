package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriter(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()

		Convey("Writing to a path stores the content", func() {
			w, err := Writer("/out/palette.json")
			So(err, ShouldBeNil)
			_, err = w.Write([]byte("first"))
			So(err, ShouldBeNil)
			So(w.Close(), ShouldBeNil)

			So(string(lo.Must(API().ReadFile("/out/palette.json"))), ShouldEqual, "first")

			Convey("And writing again truncates it", func() {
				w, err := Writer("/out/palette.json")
				So(err, ShouldBeNil)
				_, _ = w.Write([]byte("2"))
				So(w.Close(), ShouldBeNil)

				So(string(lo.Must(API().ReadFile("/out/palette.json"))), ShouldEqual, "2")
			})
		})

		Convey("An empty path falls back to stdout", func() {
			w, err := Writer("")
			So(err, ShouldBeNil)
			So(w.Close(), ShouldBeNil)
		})
	})
}
