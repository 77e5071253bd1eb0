package opt

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// Kind classifies a parse failure.
type Kind int

const (
	// The token names no registered option.
	UnrecognizedOption Kind = iota + 1
	// A long option prefix matches more than one registered name.
	AmbiguousAbbreviation
	// An option that takes an argument had none available.
	MissingArgument
	// A --name=value was given for an option that takes no argument.
	UnexpectedArgument
	// The option's callback returned an error.
	CallbackFailure
)

func (k Kind) String() string {
	switch k {
	case UnrecognizedOption:
		return "unrecognized option"
	case AmbiguousAbbreviation:
		return "ambiguous option"
	case MissingArgument:
		return "requires an argument"
	case UnexpectedArgument:
		return "doesn't allow an argument"
	case CallbackFailure:
		return "callback failed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError is the single error produced by a failed parse. It is caused by
// user input, as opposed to mistakes in the registered tables.
type ParseError struct {
	Kind Kind
	// Name of the program, from argv[0] or the Program option. May be empty.
	Program string
	// The option as it was spelled on the command line, eg. "--foo" or "-x".
	Option string
	// Registered long names a prefix could refer to, for AmbiguousAbbreviation.
	Candidates []string
	// For short options found in a cluster: the cluster and the 1-based
	// position of the option within it.
	Cluster  string
	Position int
	// The callback's error, for CallbackFailure.
	Err error
}

func (me *ParseError) Error() string {
	var b strings.Builder
	if me.Program != "" {
		fmt.Fprintf(&b, "%s: ", me.Program)
	}
	fmt.Fprintf(&b, "%s: ", me.Option)
	switch me.Kind {
	case CallbackFailure:
		if me.Err == nil {
			b.WriteString(me.Kind.String())
			break
		}
		b.WriteString(me.Err.Error())
	case AmbiguousAbbreviation:
		fmt.Fprintf(&b, "%s (could be --%s)", me.Kind, strings.Join(me.Candidates, ", --"))
	default:
		b.WriteString(me.Kind.String())
	}
	if me.Cluster != "" && me.Kind == UnrecognizedOption {
		fmt.Fprintf(&b, " (character %d of %q)", me.Position, me.Cluster)
	}
	return b.String()
}

func (me *ParseError) Unwrap() error {
	return me.Err
}

// IsKind reports whether err is a *ParseError of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *ParseError
	return xerrors.As(err, &pe) && pe.Kind == kind
}

// A programming mistake in the tables given to a Parser. Register panics with
// these, RegisterErr returns them.
type logicError struct {
	err error
}

func (le logicError) Error() string {
	return "opt: " + le.err.Error()
}

func (le logicError) Unwrap() error {
	return le.err
}

func (le logicError) Format(f fmt.State, c rune) {
	xerrors.FormatError(le, f, c)
}

func (le logicError) FormatError(p xerrors.Printer) error {
	p.Print("opt")
	return le.err
}

func newLogicError(format string, args ...interface{}) logicError {
	return logicError{xerrors.Errorf(format, args...)}
}
