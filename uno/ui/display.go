package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/unoplusplus/uno/uno/card/color"
)

var (
	Stdout io.Writer = color.Stdout
	Stdin  io.Reader = os.Stdin

	// Delay paces output so a table of computer players can be followed.
	Delay = 1 * time.Second
)

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(Stdout, args...)
	time.Sleep(Delay)
}
