package opt

import (
	"github.com/fatih/color"
)

// Logf receives the message for a failed parse.
type Logf func(format string, args ...interface{})

var stderrColor = color.New(color.FgRed)

// LogStderr writes the message to stderr as a single line. It's colored when
// stderr is a terminal.
func LogStderr(format string, args ...interface{}) {
	stderrColor.Fprintf(color.Error, format+"\n", args...)
}
