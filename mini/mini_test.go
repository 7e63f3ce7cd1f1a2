package mini

import (
	"bytes"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/palette"
)

type pickStep struct {
	index int
	ok    bool
}

// scriptedPrompter replays a fixed list of answers.
type scriptedPrompter struct {
	actions []action
	picks   []pickStep
	offered []bool
	err     error
}

func (p *scriptedPrompter) next(hasColors bool) (action, error) {
	p.offered = append(p.offered, hasColors)
	if len(p.actions) == 0 {
		if p.err != nil {
			return "", p.err
		}
		return actionQuit, nil
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	return a, nil
}

func (p *scriptedPrompter) pick(_ string, _ []palette.Color) (int, bool, error) {
	s := p.picks[0]
	p.picks = p.picks[1:]
	return s.index, s.ok, nil
}

func session(p *scriptedPrompter) (*mini, *palette.Store, *bytes.Buffer) {
	var out bytes.Buffer
	store := palette.New()
	return newMini(store, p, &Options{Title: constant.DefaultTitle, Out: &out}), store, &out
}

func TestLoop(t *testing.T) {
	Convey("Given a scripted session", t, func() {
		Convey("Select then remove the same color clears the selection", func() {
			m, store, out := session(&scriptedPrompter{
				actions: []action{actionSelect, actionRemove},
				picks:   []pickStep{{1, true}, {1, true}},
			})

			So(m.loop(), ShouldBeNil)
			So(store.Selected().IsAbsent(), ShouldBeTrue)
			So(store.Colors(), ShouldResemble, []palette.Color{"#ff5733", "#5733ff"})
			So(out.String(), ShouldContainSubstring, "Selected Color: #33ff57")
			So(out.String(), ShouldContainSubstring, "removed #33ff57")
		})

		Convey("Add appends a color and reports it", func() {
			m, store, out := session(&scriptedPrompter{actions: []action{actionAdd}})

			So(m.loop(), ShouldBeNil)
			So(store.Len(), ShouldEqual, 4)
			So(out.String(), ShouldContainSubstring, "added "+store.At(3).MustGet().String())
			So(out.String(), ShouldContainSubstring, "4 colors")
		})

		Convey("Backing out of a pick changes nothing", func() {
			m, store, _ := session(&scriptedPrompter{
				actions: []action{actionSelect, actionRemove},
				picks:   []pickStep{{0, false}, {0, false}},
			})

			So(m.loop(), ShouldBeNil)
			So(store.Selected().IsAbsent(), ShouldBeTrue)
			So(store.Len(), ShouldEqual, 3)
		})

		Convey("Select and remove are not offered on an empty palette", func() {
			p := &scriptedPrompter{
				actions: []action{actionRemove, actionRemove, actionRemove},
				picks:   []pickStep{{0, true}, {0, true}, {0, true}},
			}
			m, store, out := session(p)

			So(m.loop(), ShouldBeNil)
			So(store.Len(), ShouldEqual, 0)
			So(p.offered, ShouldResemble, []bool{true, true, true, false})
			So(out.String(), ShouldContainSubstring, "0 colors")
		})

		Convey("An interrupt ends the session cleanly", func() {
			m, _, _ := session(&scriptedPrompter{err: terminal.InterruptErr})
			So(m.loop(), ShouldBeNil)
		})

		Convey("Other prompt errors are returned", func() {
			boom := errors.New("boom")
			m, _, _ := session(&scriptedPrompter{err: boom})
			So(m.loop(), ShouldEqual, boom)
		})
	})
}

func TestMatchOption(t *testing.T) {
	Convey("matchOption", t, func() {
		label := optionLabel(12, "#5733ff")

		Convey("An empty filter matches everything", func() {
			So(matchOption("", label, 0), ShouldBeTrue)
		})

		Convey("A number matches the index only", func() {
			So(matchOption("12", label, 0), ShouldBeTrue)
			So(matchOption("1", label, 0), ShouldBeFalse)
		})

		Convey("Hex digits match fuzzily and ignore case", func() {
			So(matchOption("#5733FF", label, 0), ShouldBeTrue)
			So(matchOption("57ff", label, 0), ShouldBeTrue)
			So(matchOption("zz", label, 0), ShouldBeFalse)
		})
	})
}
