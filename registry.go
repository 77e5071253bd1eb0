package opt

import (
	"strings"
	"unicode"

	"github.com/bradfitz/iter"
)

// Tables nested deeper than this are assumed to include themselves.
const maxTableDepth = 32

// A registered option, flattened out of the tables.
type option struct {
	Entry
	group *group
}

// The table an option was declared in, for usage output.
type group struct {
	parent  *group
	heading string
	hidden  bool
	// Indentation level of the options in the group.
	depth int
}

// Register adds the options in t, and any tables included in it. If desc is
// not empty, it's used as a heading for the options in the usage. Mistakes in
// the table, such as a name that is already registered, cause a panic.
func (p *Parser) Register(t Table, desc string) {
	if err := p.RegisterErr(t, desc); err != nil {
		panic(err)
	}
}

// RegisterHidden adds the options in t, but doesn't show them in the usage.
func (p *Parser) RegisterHidden(t Table) {
	p.Register(Table{HiddenSubtable(t)}, "")
}

// Add registers a single option.
func (p *Parser) Add(e Entry) {
	p.Register(Table{e}, "")
}

// RegisterErr is like Register, but returns mistakes in the table instead of
// panicking. Nothing is registered if an error is returned.
func (p *Parser) RegisterErr(t Table, desc string) error {
	if desc != "" {
		t = Table{Subtable(t, desc)}
	}
	if p.top == nil {
		p.top = &group{}
	}
	var opts []*option
	if err := p.flatten(t, p.top, 0, &opts); err != nil {
		return err
	}
	long := make(map[string]*option, len(opts))
	short := make(map[rune]*option, len(opts))
	for _, o := range opts {
		if o.Long != "" {
			if _, ok := p.long[o.Long]; ok {
				return newLogicError("option --%s registered more than once", o.Long)
			}
			if _, ok := long[o.Long]; ok {
				return newLogicError("option --%s declared more than once", o.Long)
			}
			long[o.Long] = o
		}
		if o.Short != 0 {
			if _, ok := p.short[o.Short]; ok {
				return newLogicError("option -%c registered more than once", o.Short)
			}
			if _, ok := short[o.Short]; ok {
				return newLogicError("option -%c declared more than once", o.Short)
			}
			short[o.Short] = o
		}
	}
	if p.long == nil {
		p.long = make(map[string]*option)
	}
	if p.short == nil {
		p.short = make(map[rune]*option)
	}
	for k, o := range long {
		p.long[k] = o
	}
	for k, o := range short {
		p.short[k] = o
	}
	p.opts = append(p.opts, opts...)
	return nil
}

// Appends the options of t depth first, in declaration order.
func (p *Parser) flatten(t Table, g *group, level int, opts *[]*option) error {
	if level > maxTableDepth {
		return newLogicError("tables nested more than %d deep", maxTableDepth)
	}
	for i := range iter.N(len(t)) {
		e := &t[i]
		switch e.Arity {
		case TableRef:
			if e.Long != "" || e.Short != 0 {
				return newLogicError("table reference can't have option names: %s", e.names())
			}
			sub := &group{
				parent:  g,
				heading: e.Desc,
				hidden:  g.hidden || e.hidden,
				depth:   g.depth,
			}
			if sub.heading != "" {
				sub.depth++
			}
			if err := p.flatten(e.sub, sub, level+1, opts); err != nil {
				return err
			}
		case NoArg, HasArg:
			if err := checkEntry(e); err != nil {
				return err
			}
			*opts = append(*opts, &option{Entry: *e, group: g})
		default:
			return newLogicError("entry %d of table has bad arity: %s", i, e.Arity)
		}
	}
	return nil
}

func checkEntry(e *Entry) error {
	if e.Long == "" && e.Short == 0 {
		return newLogicError("option needs a long or short name")
	}
	if strings.HasPrefix(e.Long, "-") || strings.ContainsRune(e.Long, '=') {
		return newLogicError("bad long option name: %q", e.Long)
	}
	if e.Short == '-' || e.Short == unicode.ReplacementChar || unicode.IsSpace(e.Short) {
		return newLogicError("bad short option name: %q", e.Short)
	}
	if e.Arity == NoArg && e.noArg == nil || e.Arity == HasArg && e.withArg == nil {
		return newLogicError("option %s has no callback", e.names())
	}
	return nil
}
