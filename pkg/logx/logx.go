package logx

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	reset  = "\x1b[0m"
	bold   = "\x1b[1m"
	gray   = "\x1b[90m"
	cyan   = "\x1b[36m"
	blue   = "\x1b[34m"
	yellow = "\x1b[33m"
	green  = "\x1b[32m"
	red    = "\x1b[31m"
)

// Logger writes timestamped, optionally coloured lines to w.
type Logger struct {
	w     io.Writer
	color bool
	now   func() time.Time
}

// New returns a logger for w. Colour is used only when w is a terminal
// and NO_COLOR is unset.
func New(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{w: w, color: colorable(w), now: time.Now}
}

func colorable(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// C returns s wrapped in color, or s unchanged when colour is off.
func (l *Logger) C(color, s string) string {
	if !l.color {
		return s
	}
	return color + s + reset
}

// Channel returns a padded tag such as "[GEN ]".
// Pass 4-char names: "RUN ", "GEN ", "DB  ".
func (l *Logger) Channel(ch string) string {
	color := map[string]string{
		"RUN ": cyan,
		"GEN ": blue,
		"DB  ": yellow,
	}[ch]
	return l.C(color, fmt.Sprintf("[%-4s]", ch))
}

func (l *Logger) ts() string {
	return l.C(gray, l.now().UTC().Format("15:04:05Z"))
}

// Logf writes one line on channel ch.
func (l *Logger) Logf(ch, format string, args ...any) {
	fmt.Fprintf(l.w, "%s  %s  %s\n", l.ts(), l.Channel(ch), fmt.Sprintf(format, args...))
}

// Progress writes a generation progress line.
func (l *Logger) Progress(gen int, best, topAvg float64) {
	l.Logf("GEN ", "Gen %3d | Best: %s | Top 10 avg: %.1fs",
		gen, l.C(bold+green, fmt.Sprintf("%.1fs", best)), topAvg)
}

// Success returns a green string.
func (l *Logger) Success(s string) string { return l.C(green, s) }

// Warn returns a yellow string.
func (l *Logger) Warn(s string) string { return l.C(yellow, s) }

// Error returns a red string.
func (l *Logger) Error(s string) string { return l.C(red, s) }
