// Package opt parses command-line options declared in tables.
//
// Each Entry in a Table names an option, says whether it takes an argument,
// and binds a callback to a context value:
//
//	var verbose int
//	var output string
//	p := opt.New()
//	p.Register(opt.Table{
//		opt.WithoutArg("verbose", 'v', opt.IncInt, &verbose,
//			"Verbose mode (can be specified more than once)"),
//		opt.WithArg("output", 'o', opt.SetString, &output, "Write to this file"),
//		opt.WithoutArg("usage", 0, p.UsageAndExit, "<file>...", "Print this message."),
//	}, "")
//	args, ok := p.Parse(os.Args, opt.LogStderr)
//	if !ok {
//		fmt.Print(p.Usage(os.Args[0], "<file>..."))
//		os.Exit(1)
//	}
//
// The command line syntax is:
//
//	-v -o file      short options
//	-vofile         short options may be combined. One taking an argument
//	                takes the rest of the token, or the next argument
//	--output=file   long option with an argument
//	--output file   same
//	--out file      long options may be abbreviated, if that's unambiguous
//	--              all following arguments are positional
//
// Everything else is a positional argument. Positional arguments are returned
// in order when parsing succeeds. Parsing stops at the first unknown or
// ambiguous option, missing argument, or callback error.
//
// Tables can include other tables with Subtable, which groups their options
// under a heading in the usage. TableFromStruct derives a table from a tagged
// struct.
package opt
