// Package log writes leveled, colored diagnostic messages to stderr.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Level selects which messages are written.
type Level int

const (
	LevelNone Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = map[string]Level{
	"none":  LevelNone,
	"warn":  LevelWarn,
	"info":  LevelInfo,
	"debug": LevelDebug,
}

// ParseLevel converts a level name ("none", "warn", "info", "debug") to a
// Level.
func ParseLevel(name string) (Level, error) {
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return LevelNone, errors.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// String returns the level name.
func (level Level) String() string {
	for name, l := range levelNames {
		if l == level {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(level))
}

// Current is the active level.
var Current = LevelInfo

// Output is where messages are written.
var Output io.Writer = os.Stderr

var cyan = color.New(color.FgCyan)
var yellow = color.New(color.FgYellow)

// Warnf writes a yellow warning line.
func Warnf(f string, args ...interface{}) {
	if LevelWarn <= Current {
		yellow.Fprintf(Output, "[WARNING] "+f+"\n", args...)
	}
}

// Infof writes a plain progress line.
func Infof(f string, args ...interface{}) {
	if LevelInfo <= Current {
		fmt.Fprintf(Output, f+"\n", args...)
	}
}

var indent = 0

// Debugf writes a cyan line, indented by the current Enter depth.
func Debugf(f string, args ...interface{}) {
	if LevelDebug <= Current {
		cyan.Fprintf(Output, strings.Repeat("  ", indent)+f+"\n", args...)
	}
}

// Enter increases the indentation of debug messages.
func Enter() {
	indent++
}

// Leave undoes one Enter.
func Leave() {
	if indent > 0 {
		indent--
	}
}
