package palette

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRandom(t *testing.T) {
	Convey("Random", t, func() {
		Convey("Maps each draw onto a hex digit", func() {
			draws := []int{0, 9, 10, 15, 1, 12}
			next := func(n int) int {
				So(n, ShouldEqual, 16)
				d := draws[0]
				draws = draws[1:]
				return d
			}
			So(Random(next), ShouldEqual, Color("#09AF1C"))
		})

		Convey("Always yields a generated-looking color", func() {
			for i := 0; i < 16; i++ {
				d := i
				c := Random(func(int) int { return d })
				So(generated.MatchString(c.String()), ShouldBeTrue)
			}
		})
	})
}

func TestParseColors(t *testing.T) {
	Convey("ParseColors", t, func() {
		Convey("Accepts both cases and trims whitespace", func() {
			colors, err := ParseColors([]string{"#ff5733", " #ABCDEF "})
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []Color{"#ff5733", "#ABCDEF"})
		})

		Convey("Rejects malformed entries", func() {
			for _, raw := range []string{"ff5733", "#ff573", "#ff57333", "#gg5733", ""} {
				_, err := ParseColors([]string{"#000000", raw})
				So(errors.Is(err, ErrInvalidColor), ShouldBeTrue)
			}
		})

		Convey("Accepts an empty list", func() {
			colors, err := ParseColors(nil)
			So(err, ShouldBeNil)
			So(colors, ShouldBeEmpty)
		})
	})
}

func TestColor(t *testing.T) {
	Convey("Color helpers", t, func() {
		Convey("Hex uppercases", func() {
			So(Color("#ff5733").Hex(), ShouldEqual, "#FF5733")
		})

		Convey("Contrast picks black on light colors", func() {
			So(Color("#FFFFFF").Contrast(), ShouldEqual, Color("#000000"))
			So(Color("#33ff57").Contrast(), ShouldEqual, Color("#000000"))
		})

		Convey("Contrast picks white on dark colors", func() {
			So(Color("#000000").Contrast(), ShouldEqual, Color("#FFFFFF"))
			So(Color("#5733ff").Contrast(), ShouldEqual, Color("#FFFFFF"))
		})

		Convey("Contrast falls back to white on garbage", func() {
			So(Color("nope").Contrast(), ShouldEqual, Color("#FFFFFF"))
		})
	})
}
