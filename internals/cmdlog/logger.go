package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
)

// Logger loggs pretty stuff to the console. Everything goes to the diagnostic
// stream (stderr), stdout is reserved for command results
type Logger struct {
	out       io.Writer
	emojis    bool
	spin      bool
	verbose   bool
	indention int
	chalk     *gchalk.Builder
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Fprintln(l.out, strings.Repeat(" ", l.indention)+a)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// Headline prints a cyan bold line
func (l *Logger) Headline(s string) {
	l.println(l.chalk.WithCyan().Bold(s))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Debug prints a gray line if verbose logging is enabled
func (l *Logger) Debug(s string) {
	if l.verbose {
		l.println(l.chalk.Gray(s))
	}
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	l.println(l.sprintEmoji("⚠️") + l.chalk.WithYellow().Bold(s))
}

// Error prints the given error as one line
func (l *Logger) Error(err error) {
	fmt.Fprintln(l.out, l.sprintEmoji("💣")+l.chalk.WithRed().Bold("Error: ")+err.Error())
}

// Step prints a "name: value" progress line
func (l *Logger) Step(name string, value string) {
	l.println(l.chalk.Cyan(name+":") + " " + value)
}

// Spinner starts a spinner with the given text if the output is an interactive terminal.
// The returned function stops it
func (l *Logger) Spinner(text string) (stop func()) {
	if !l.spin {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(l.out))
	s.Prefix = " "
	s.Suffix = " " + text
	s.Start()
	return s.Stop
}

// SetVerbose toggles Debug output
func (l *Logger) SetVerbose(v bool) {
	l.verbose = v
}

// DisableColor removes all colors (and the spinner)
func (l *Logger) DisableColor() {
	l.chalk.SetLevel(gchalk.LevelNone)
	l.spin = false
}

// Indent returns a logger that indents every line by two more spaces
func (l *Logger) Indent() *Logger {
	indented := *l
	indented.indention += 2
	return &indented
}

// New returns a new Logger writing to stderr
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a Logger writing to w. Colors and spinners are only
// enabled if w is a terminal
func NewWithWriter(w io.Writer) *Logger {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	l := &Logger{
		out:    w,
		emojis: runtime.GOOS != "windows" && tty,
		spin:   tty,
		chalk:  gchalk.New(),
	}

	// disable color for CI and pipes
	if os.Getenv("CI") != "" || !tty {
		l.emojis = false
		l.DisableColor()
	}
	return l
}

// Discard returns a logger that prints nothing
func Discard() *Logger {
	return NewWithWriter(io.Discard)
}
