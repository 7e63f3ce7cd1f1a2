package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should start from the stock palette", func() {
			_ = Setup()
			So(viper.GetStringSlice(key.PaletteInitial), ShouldResemble, constant.DefaultColors)
			So(viper.GetString(key.TUITitle), ShouldEqual, constant.DefaultTitle)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("tui.swatch_width")
			So(result, ShouldEqual, "tui_swatch_width")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.TUISwatchWidth]

		Convey("Env derives the prefixed variable name", func() {
			So(field.Env(), ShouldEqual, "SWATCH_TUI_SWATCH_WIDTH")
		})

		Convey("typeName reports the default's type", func() {
			So(field.typeName(), ShouldEqual, "int")
			initial := Default[key.PaletteInitial]
			So(initial.typeName(), ShouldEqual, "[]string")
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given registered fields", t, func() {
		Convey("Integers are parsed and range checked", func() {
			field := Default[key.TUISwatchWidth]
			v, err := field.Parse([]string{"30"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 30)

			_, err = field.Parse([]string{"-1"})
			So(err, ShouldNotBeNil)

			_, err = field.Parse([]string{"wide"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are parsed", func() {
			field := Default[key.TUIShowHex]
			v, err := field.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("Color lists accept words and commas", func() {
			field := Default[key.PaletteInitial]
			v, err := field.Parse([]string{"#000000,#FFFFFF", "#ff5733"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"#000000", "#FFFFFF", "#ff5733"})
		})

		Convey("Color lists reject malformed colors", func() {
			field := Default[key.PaletteInitial]
			_, err := field.Parse([]string{"#000000", "red"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.PaletteInitial)
		})

		Convey("Options are checked against the known set", func() {
			icons, level := Default[key.IconsVariant], Default[key.LogsLevel]

			_, err := icons.Parse([]string{"nerd"})
			So(err, ShouldBeNil)

			_, err = level.Parse([]string{"loud"})
			So(err, ShouldNotBeNil)
		})

		Convey("A value is required", func() {
			title := Default[key.TUITitle]
			_, err := title.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPretty(t *testing.T) {
	Convey("Pretty lists the key, env name and default", t, func() {
		_ = Setup()
		field := Default[key.PaletteInitial]
		pretty := field.Pretty()

		So(pretty, ShouldContainSubstring, key.PaletteInitial)
		So(pretty, ShouldContainSubstring, "SWATCH_PALETTE_INITIAL")
		So(pretty, ShouldContainSubstring, "#ff5733")
		So(pretty, ShouldContainSubstring, "[]string")
	})
}
