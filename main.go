// Package main is the entry point for the swatch application.
package main

import (
	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/cmd"
	"github.com/swatch-cli/swatch/config"
	"github.com/swatch-cli/swatch/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
