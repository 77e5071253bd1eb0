package opt

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"
)

// Parser holds registered options, and parses command lines against them.
// Registration must be complete before parsing, and a Parser isn't safe for
// concurrent use.
type Parser struct {
	program     string
	description string

	opts  []*option
	long  map[string]*option
	short map[rune]*option
	top   *group
}

// New returns a Parser with no options registered.
func New(opts ...parseOpt) *Parser {
	p := &Parser{
		top: &group{},
	}
	for _, po := range opts {
		po(p)
	}
	return p
}

// Parse parses argv, which includes the program name, calling the callbacks of
// the options found. On success the positional arguments are returned in their
// original order. Otherwise errlog is called once with a message describing
// the first error, and ok is false. A nil errlog means LogStderr.
func (p *Parser) Parse(argv []string, errlog Logf) (positional []string, ok bool) {
	program := p.program
	if len(argv) != 0 {
		if program == "" {
			program = filepath.Base(argv[0])
		}
		argv = argv[1:]
	}
	positional, err := p.parse(program, argv)
	if err != nil {
		if errlog == nil {
			errlog = LogStderr
		}
		errlog("%s", err)
		return nil, false
	}
	return positional, true
}

// ParseErr parses args, which excludes the program name, and returns the
// positional arguments or a *ParseError.
func (p *Parser) ParseErr(args []string) (positional []string, err error) {
	return p.parse(p.program, args)
}

func (p *Parser) parse(program string, args []string) ([]string, error) {
	s := parseState{
		p:       p,
		program: program,
		args:    args,
		pos:     make([]string, 0, len(args)),
	}
	if err := s.parse(); err != nil {
		return nil, err
	}
	return s.pos, nil
}

type parseState struct {
	p       *Parser
	program string
	// Unconsumed arguments.
	args []string
	// Positional arguments seen so far.
	pos []string
}

func (s *parseState) parse() (err error) {
	for len(s.args) != 0 && err == nil {
		a := s.next()
		s.advance()
		t := classify(a)
		switch t.kind {
		case tokEnd:
			s.pos = append(s.pos, s.args...)
			s.args = nil
		case tokLong:
			err = s.parseLong(t)
		case tokShort:
			err = s.parseShorts(t.text)
		default:
			s.pos = append(s.pos, a)
		}
	}
	return
}

func (s *parseState) next() string {
	return s.args[0]
}

func (s *parseState) advance() {
	s.args = s.args[1:]
}

func (s *parseState) newError(kind Kind, option string) *ParseError {
	return &ParseError{
		Kind:    kind,
		Program: s.program,
		Option:  option,
	}
}

// Takes the next argument as the value for an option.
func (s *parseState) nextValue(option string) (string, error) {
	if len(s.args) == 0 {
		return "", s.newError(MissingArgument, option)
	}
	v := s.next()
	s.advance()
	return v, nil
}

func (s *parseState) call(option string, err error) error {
	if err == nil {
		return nil
	}
	pe := s.newError(CallbackFailure, option)
	pe.Err = err
	return pe
}

func (s *parseState) parseLong(t token) error {
	spelled := "--" + t.text
	o, candidates := s.p.lookupLong(t.text)
	if candidates != nil {
		err := s.newError(AmbiguousAbbreviation, spelled)
		err.Candidates = candidates
		return err
	}
	if o == nil {
		return s.newError(UnrecognizedOption, spelled)
	}
	if o.Arity == NoArg {
		if t.hasValue {
			return s.newError(UnexpectedArgument, spelled)
		}
		return s.call(spelled, o.noArg())
	}
	v := t.value
	if !t.hasValue {
		var err error
		v, err = s.nextValue(spelled)
		if err != nil {
			return err
		}
	}
	return s.call(spelled, o.withArg(v))
}

// Options taking no argument are handled left to right, until one that takes
// the rest of the cluster, or the next argument.
func (s *parseState) parseShorts(cluster string) error {
	for i, n := 0, 1; i < len(cluster); n++ {
		c, size := utf8.DecodeRuneInString(cluster[i:])
		i += size
		spelled := fmt.Sprintf("-%c", c)
		o := s.p.lookupShort(c)
		if o == nil {
			err := s.newError(UnrecognizedOption, spelled)
			if utf8.RuneCountInString(cluster) > 1 {
				err.Cluster = "-" + cluster
				err.Position = n
			}
			return err
		}
		if o.Arity == NoArg {
			if err := s.call(spelled, o.noArg()); err != nil {
				return err
			}
			continue
		}
		v := cluster[i:]
		if v == "" {
			var err error
			v, err = s.nextValue(spelled)
			if err != nil {
				return err
			}
		}
		return s.call(spelled, o.withArg(v))
	}
	return nil
}
