package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/uno/consts"
)

// Color of a card. Unset is the color of a wild card until one is chosen.
type Color int

const (
	Unset Color = iota
	Blue
	Green
	Red
	Yellow
)

// All lists the colors a player may choose, in display order.
var All = []Color{Blue, Green, Red, Yellow}

var names = map[Color]string{
	Blue:   "blue",
	Green:  "green",
	Red:    "red",
	Yellow: "yellow",
}

var colorFunctions = map[Color]func(string, ...interface{}) string{
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
}

var Stdout io.Writer = color.Output

func (c Color) Valid() bool {
	_, ok := names[c]
	return ok
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unset"
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	colorFunction, ok := colorFunctions[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName resolves a color from user input, ignoring case and surrounding space.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range names {
		if n == name {
			return c, nil
		}
	}
	return Unset, fmt.Errorf("%w'%s'", consts.ErrorsInvalidColor, name)
}

// DisableColors turns off terminal escape codes for every painted string.
func DisableColors() {
	color.NoColor = true
}
