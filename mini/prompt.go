// Package mini implements a lightweight, prompt-driven interface over a palette.
package mini

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/style"
)

type action string

const (
	actionSelect action = "Select a color"
	actionRemove action = "Remove a color"
	actionAdd    action = "Add a random color"
	actionQuit   action = "Quit"
)

// back is the extra option that leaves a color prompt without acting.
const back = "Back"

// prompter asks the user for the next gesture.
type prompter interface {
	// next asks what to do next. Select and remove are offered only when the palette is not empty.
	next(hasColors bool) (action, error)
	// pick asks for one of colors. ok is false when the user backs out.
	pick(message string, colors []palette.Color) (index int, ok bool, err error)
}

type surveyPrompter struct{}

func (surveyPrompter) next(hasColors bool) (action, error) {
	options := []action{actionAdd, actionQuit}
	if hasColors {
		options = []action{actionSelect, actionRemove, actionAdd, actionQuit}
	}

	var answer string
	err := survey.AskOne(&survey.Select{
		Message: "What now?",
		Options: lo.Map(options, func(a action, _ int) string { return string(a) }),
	}, &answer)

	return action(answer), err
}

func (surveyPrompter) pick(message string, colors []palette.Color) (int, bool, error) {
	options := append(lo.Map(colors, func(c palette.Color, i int) string {
		return optionLabel(i, c)
	}), back)

	var index int
	err := survey.AskOne(&survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 10,
	}, &index, survey.WithFilter(matchOption))
	if err != nil {
		return 0, false, err
	}

	if index == len(colors) {
		return 0, false, nil
	}

	return index, true, nil
}

func optionLabel(index int, c palette.Color) string {
	return fmt.Sprintf("%d %s %s", index, swatch(c), c)
}

// matchOption filters prompt options by index or by a fuzzy hex match.
func matchOption(filter, value string, _ int) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}

	if _, err := strconv.Atoi(filter); err == nil {
		return strings.HasPrefix(value, filter+" ")
	}

	return fuzzy.MatchFold(strings.TrimPrefix(filter, "#"), value)
}

func swatch(c palette.Color) string {
	return style.Bg(color.New(c.String()))("   ")
}

func fit(line string) string {
	return truncate.String(line, uint(truncateAt))
}
