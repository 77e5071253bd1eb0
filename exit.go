package opt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
)

// The program name shown by UsageAndExit.
func (p *Parser) programName() string {
	if p.program != "" {
		return p.program
	}
	return filepath.Base(os.Args[0])
}

// UsageAndExit prints the usage to stdout, and exits with status 0. extra is
// passed to Usage. It's meant as the callback of a help option:
//
//	p.Add(opt.WithoutArg("help", 'h', p.UsageAndExit, "<file>...", "Print this message."))
//
// The exit goes through exitwithstatus, so main must defer
// exitwithstatus.Handler().
func (p *Parser) UsageAndExit(extra string) error {
	p.WriteUsage(os.Stdout, p.programName(), extra)
	exitwithstatus.Exit(0)
	return nil
}

// VersionAndExit prints version to stdout and exits with status 0, like
// UsageAndExit.
func VersionAndExit(version string) error {
	fmt.Println(version)
	exitwithstatus.Exit(0)
	return nil
}
