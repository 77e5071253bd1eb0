package opt

import "fmt"

// Arity says whether an Entry takes an argument, or is a reference to another
// Table.
type Arity int

const (
	// -f, --foo
	NoArg Arity = iota + 1
	// -f arg, -farg, --foo=arg, --foo arg
	HasArg
	// Not an option: the Entry includes another Table.
	TableRef
)

func (a Arity) String() string {
	switch a {
	case NoArg:
		return "NoArg"
	case HasArg:
		return "HasArg"
	case TableRef:
		return "TableRef"
	}
	return fmt.Sprintf("Arity(%d)", int(a))
}

// Entry describes one option in a Table. Use WithoutArg, WithArg, Subtable and
// HiddenSubtable to create them, so that the callback matches the Arity.
type Entry struct {
	// The name for the --long form, or "" for short-only.
	Long string
	// The character for the -s form, or 0 for long-only.
	Short rune
	Arity Arity
	// Shown by the usage. Entries without one aren't shown. For a TableRef,
	// the heading of the included table.
	Desc string

	noArg   func() error
	withArg func(string) error
	sub     Table
	hidden  bool
}

// A Table is a list of option entries, possibly including other tables.
type Table []Entry

// WithoutArg returns an entry for an option taking no argument. cb is called
// with ctx each time the option is seen. If it returns an error, parsing stops
// and the error is reported.
func WithoutArg[T any](long string, short rune, cb func(ctx T) error, ctx T, desc string) Entry {
	e := Entry{
		Long:  long,
		Short: short,
		Arity: NoArg,
		Desc:  desc,
	}
	if cb != nil {
		e.noArg = func() error { return cb(ctx) }
	}
	return e
}

// WithArg returns an entry for an option that requires an argument. cb is
// called with the argument and ctx each time the option is seen.
func WithArg[T any](long string, short rune, cb func(arg string, ctx T) error, ctx T, desc string) Entry {
	e := Entry{
		Long:  long,
		Short: short,
		Arity: HasArg,
		Desc:  desc,
	}
	if cb != nil {
		e.withArg = func(arg string) error { return cb(arg, ctx) }
	}
	return e
}

// Subtable includes t in another table. desc is shown as a heading for t's
// options in the usage, or nothing is shown if it's empty.
func Subtable(t Table, desc string) Entry {
	return Entry{
		Arity: TableRef,
		Desc:  desc,
		sub:   t,
	}
}

// HiddenSubtable includes t, but none of its options appear in the usage.
func HiddenSubtable(t Table) Entry {
	return Entry{
		Arity:  TableRef,
		sub:    t,
		hidden: true,
	}
}

// The spelling of the entry as shown in usage and errors.
func (e *Entry) names() (ret string) {
	if e.Short != 0 {
		ret = fmt.Sprintf("-%c", e.Short)
		if e.Long != "" {
			ret += ", "
		}
	}
	if e.Long != "" {
		ret += "--" + e.Long
	}
	return
}
