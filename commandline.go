package opt

import "os"

// CommandLine is the parser used by the package-level functions, for programs
// that only need the one.
var CommandLine = New()

func Register(t Table, desc string) {
	CommandLine.Register(t, desc)
}

func RegisterHidden(t Table) {
	CommandLine.RegisterHidden(t)
}

func Add(e Entry) {
	CommandLine.Add(e)
}

// Parse parses os.Args with CommandLine, and returns the positional arguments.
// If there's an error it's printed to stderr and the program exits with status
// 2.
func Parse() []string {
	pos, ok := CommandLine.Parse(os.Args, LogStderr)
	if !ok {
		os.Exit(2)
	}
	return pos
}

// ParseErr parses args, which excludes the program name, with CommandLine.
func ParseErr(args []string) ([]string, error) {
	return CommandLine.ParseErr(args)
}

// Usage returns the usage of CommandLine, named after the running program.
func Usage(extra string) string {
	return CommandLine.Usage(CommandLine.programName(), extra)
}
