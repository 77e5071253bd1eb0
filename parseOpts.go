package opt

type parseOpt func(p *Parser)

// Sets the program name used in error messages. Parse otherwise takes it from
// argv[0], and ParseErr omits it.
func Program(program string) parseOpt {
	return func(p *Parser) {
		p.program = program
	}
}

// Writes a program description between the usage line and the options.
func Description(desc string) parseOpt {
	return func(p *Parser) {
		p.description = desc
	}
}
