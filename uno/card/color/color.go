package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is one value of the fixed card palette. Colors are singletons, so two
// colors are the same color iff they compare equal with ==.
type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

var Stdout io.Writer = color.Output

var byName = map[string]Color{}

var (
	Red    = define("red", color.FgHiRed)
	Yellow = define("yellow", color.FgHiYellow)
	Green  = define("green", color.FgHiGreen)
	Blue   = define("blue", color.FgHiCyan)

	// All is the playable palette, in deck-building order.
	All = []Color{Red, Yellow, Green, Blue}

	// Wild is carried by cards that are not tied to one of the four colors.
	// It paints text in the playable colors, one rune at a time.
	Wild Color = register(&rainbow{name: "wild", bands: All})
)

type solid struct {
	name   string
	sprint func(string, ...interface{}) string
}

func define(name string, attributes ...color.Attribute) Color {
	return register(&solid{
		name:   name,
		sprint: color.New(attributes...).SprintfFunc(),
	})
}

func register(c Color) Color {
	byName[c.Name()] = c
	return c
}

func (c *solid) Name() string {
	return c.name
}

func (c *solid) Paint(text string) string {
	return c.sprint("%s", text)
}

func (c *solid) Paintf(format string, args ...interface{}) string {
	return c.sprint(format, args...)
}

func (c *solid) String() string {
	return c.Paint(c.name)
}

type rainbow struct {
	name  string
	bands []Color
}

func (c *rainbow) Name() string {
	return c.name
}

func (c *rainbow) Paint(text string) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		b.WriteString(c.bands[i%len(c.bands)].Paint(string(r)))
	}
	return b.String()
}

func (c *rainbow) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

func (c *rainbow) String() string {
	return c.Paint(c.name)
}

func ByName(name string) (Color, error) {
	c, found := byName[name]
	if !found {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}
