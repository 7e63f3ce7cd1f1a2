package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/where"
)

func TestExposedEnv(t *testing.T) {
	Convey("exposedEnv", t, func() {
		names := exposedEnv()

		Convey("Lists prefixed variables for config keys", func() {
			So(names, ShouldContain, "SWATCH_PALETTE_INITIAL")
			So(names, ShouldContain, "SWATCH_TUI_TITLE")
		})

		Convey("Includes the config path override", func() {
			So(names, ShouldContain, where.EnvConfigPath)
		})

		Convey("Is stable across calls", func() {
			So(exposedEnv(), ShouldResemble, names)
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("errUnknownKey suggests the closest key", t, func() {
		err := errUnknownKey("tui.titel")
		So(err.Error(), ShouldContainSubstring, "tui.title")
	})
}
