package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/palette"
)

func TestParseGesture(t *testing.T) {
	Convey("ParseGesture", t, func() {
		Convey("Should accept every verb", func() {
			cases := map[string]Gesture{
				"add":       {Verb: Add},
				"select:2":  {Verb: Select, Index: 2},
				"remove:0":  {Verb: Remove, Index: 0},
				" SELECT:1": {Verb: Select, Index: 1},
				"remove:-1": {Verb: Remove, Index: -1},
			}
			for description, want := range cases {
				g, err := ParseGesture(description)
				So(err, ShouldBeNil)
				So(g, ShouldResemble, want)
			}
		})

		Convey("Should reject malformed gestures", func() {
			for _, description := range []string{"", "paint", "add:1", "select", "remove:", "select:x", "select:1:2"} {
				_, err := ParseGesture(description)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Should stop a batch at the first bad gesture", func() {
			_, err := ParseGestures([]string{"add", "nope", "add"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "nope")
		})

		Convey("String round-trips the description", func() {
			So(Gesture{Verb: Add}.String(), ShouldEqual, "add")
			So(Gesture{Verb: Remove, Index: 3}.String(), ShouldEqual, "remove:3")
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given inline options", t, func() {
		var buf bytes.Buffer
		opts := &Options{Out: &buf, Title: constant.DefaultTitle}

		Convey("With no gestures the stock palette is printed", func() {
			So(Run(opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Color Palette Manager\n  0 #ff5733\n  1 #33ff57\n  2 #5733ff\n")
		})

		Convey("Select then remove before it keeps the selection on the same color", func() {
			opts.Gestures = []Gesture{{Verb: Select, Index: 2}, {Verb: Remove, Index: 0}}
			So(Run(opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Selected Color: #5733ff\n  0 #33ff57\n* 1 #5733ff\n")
		})

		Convey("An out of range remove is ignored", func() {
			opts.Gestures = []Gesture{{Verb: Remove, Index: 99}}
			So(Run(opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Color Palette Manager\n  0 #ff5733\n  1 #33ff57\n  2 #5733ff\n")
		})

		Convey("An out of range select fails the run", func() {
			opts.Gestures = []Gesture{{Verb: Add}, {Verb: Select, Index: 7}}
			err := Run(opts)
			So(errors.Is(err, palette.ErrIndexOutOfRange), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "gesture 2 (select:7)")
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("Initial colors replace the stock palette", func() {
			opts.Initial = []palette.Color{"#000000"}
			opts.Gestures = []Gesture{{Verb: Select, Index: 0}}
			So(Run(opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Selected Color: #000000\n* 0 #000000\n")
		})

		Convey("Json output carries gestures and the final palette", func() {
			opts.Json = true
			opts.Gestures = []Gesture{{Verb: Add}, {Verb: Select, Index: 3}}
			So(Run(opts), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Gestures, ShouldResemble, opts.Gestures)
			So(output.Palette.Colors, ShouldHaveLength, 4)
			So(*output.Palette.Selected, ShouldEqual, 3)
			So(output.Palette.Header, ShouldEqual, "Selected Color: "+output.Palette.Colors[3])
		})

		Convey("Json output without a selection has a null index", func() {
			opts.Json = true
			So(Run(opts), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"selected":null`)
			So(buf.String(), ShouldContainSubstring, `"gestures":[]`)
		})
	})
}
