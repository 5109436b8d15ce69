// Package console renders the interactive surface: the welcome banner,
// box-drawn status lines, and the prompt-until-valid filename loop.
// Purely decorative; the pipeline core never touches it.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ANSI color codes.
type Color string

const (
	Red     Color = "\x1b[31m"
	Green   Color = "\x1b[32m"
	Yellow  Color = "\x1b[33m"
	Blue    Color = "\x1b[34m"
	Magenta Color = "\x1b[35m"
	Cyan    Color = "\x1b[36m"
	reset         = "\x1b[0m"
)

// Width of the box interior, message column included.
const innerWidth = 75

// Console writes the decorative UI to out and reads prompt answers from
// in, one whitespace-delimited token at a time.
type Console struct {
	out   io.Writer
	in    *bufio.Scanner
	color bool
}

// New creates a console. Disable color for dumb terminals or tests.
func New(in io.Reader, out io.Writer, color bool) *Console {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Console{out: out, in: sc, color: color}
}

// Welcome prints the program banner.
func (c *Console) Welcome() {
	c.paint(Yellow)
	fmt.Fprint(c.out, `
   _____ __  ______  __________     ____  _________    ____  __________
  / ___// / / / __ \/ ____/ __ \   / __ \/ ____/   |  / __ \/ ____/ __ \
  \__ \/ / / / /_/ / __/ / /_/ /  / /_/ / __/ / /| | / / / / __/ / /_/ /
 ___/ / /_/ / ____/ /___/ _, _/  / _, _/ /___/ ___ |/ /_/ / /___/ _, _/
/____/\____/_/   /_____/_/ |_|  /_/ |_/_____/_/  |_/_____/_____/_/ |_|

          Read from files, write to files, multithreaded.

`)
	c.paint(reset)
}

// Header prints the top border of a status box.
func (c *Console) Header() {
	fmt.Fprintln(c.out, "╔"+strings.Repeat("═", innerWidth+2)+"╗")
}

// Divider prints a dividing line inside a status box.
func (c *Console) Divider() {
	fmt.Fprintln(c.out, "╠"+strings.Repeat("═", innerWidth+2)+"╣")
}

// Footer prints the bottom border of a status box.
func (c *Console) Footer() {
	fmt.Fprintln(c.out, "╚"+strings.Repeat("═", innerWidth+2)+"╝")
}

// Line prints one colored message row inside a status box.
func (c *Console) Line(msg string, color Color) {
	fmt.Fprint(c.out, "║ ")
	c.paint(color)
	fmt.Fprint(c.out, msg)
	c.paint(reset)
	c.pad(len(msg))
	fmt.Fprintln(c.out, " ║")
}

// Varf prints a message row with a variable value appended. Line
// terminators in the value are stripped so the box stays rectangular.
func (c *Console) Varf(msg string, color Color, value string) {
	clean := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, value)

	fmt.Fprint(c.out, "║ ")
	c.paint(color)
	fmt.Fprint(c.out, msg, clean)
	c.paint(reset)
	c.pad(len(msg) + len(clean))
	fmt.Fprintln(c.out, " ║")
}

// PromptFilename asks for a filename until open accepts one, and
// returns the accepted name. purpose is shown to the operator
// ("import", "output"). Returns an error only when input runs out.
func (c *Console) PromptFilename(purpose string, open func(name string) error) (string, error) {
	fmt.Fprintf(c.out, "\n\n"+
		"╔════════════════════════════════════════╗\n"+
		"║ Please enter the filename of the file  ║\n"+
		"║ you would like to %-20s ║\n"+
		"║                                        ║\n"+
		"║ eg. %s.txt%*s ║\n"+
		"╠════════════════════════════════════════╝\n"+
		"╚ ► ", purpose, purpose, 30-len(purpose), "")

	for {
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		name := c.in.Text()

		if err := open(name); err == nil {
			return name, nil
		}

		fmt.Fprint(c.out, ""+
			"╔════════════════════════════════════════╗\n"+
			"║ ")
		c.paint(Red)
		fmt.Fprint(c.out, "Error: File not found                 ")
		c.paint(reset)
		fmt.Fprint(c.out, " ║\n"+
			"╠════════════════════════════════════════╣\n"+
			"║ Please select a valid filename         ║\n"+
			"╠════════════════════════════════════════╝\n"+
			"╚ ► ")
	}
}

func (c *Console) paint(color Color) {
	if c.color {
		fmt.Fprint(c.out, string(color))
	}
}

func (c *Console) pad(used int) {
	if used < innerWidth {
		fmt.Fprint(c.out, strings.Repeat(" ", innerWidth-used))
	}
}
