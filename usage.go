package opt

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo"
)

// Usage returns the usage message: a line with the program name, the short
// options and extra, the rest of extra, then the options with descriptions,
// under the headings of the tables they were registered in.
func (p *Parser) Usage(program, extra string) string {
	var b strings.Builder
	p.WriteUsage(&b, program, extra)
	return b.String()
}

// WriteUsage writes the message returned by Usage to w.
func (p *Parser) WriteUsage(w io.Writer, program, extra string) {
	fmt.Fprintf(w, "Usage: %s", program)
	if s := p.visibleShorts(); s != "" {
		fmt.Fprintf(w, " [-%s]", s)
	}
	if extra != "" {
		fmt.Fprintf(w, " %s", missinggo.Unchomp(extra))
	} else {
		fmt.Fprintf(w, "\n")
	}
	if p.description != "" {
		fmt.Fprintf(w, "\n%s\n", missinggo.Unchomp(p.description))
	}
	var (
		tw     *tabwriter.Writer
		cur    *group
		headed = make(map[*group]bool)
	)
	flush := func() {
		if tw != nil {
			tw.Flush()
			tw = nil
		}
	}
	for _, o := range p.visible() {
		if o.group != cur {
			flush()
			cur = o.group
			writeHeadings(w, cur, headed)
		}
		if tw == nil {
			tw = newUsageTabwriter(w)
		}
		fmt.Fprintf(tw, "%s%s", indent(max(cur.depth, 1)), o.names())
		if o.Arity == HasArg {
			fmt.Fprint(tw, " <arg>")
		}
		fmt.Fprintf(tw, "\t%s\n", o.Desc)
	}
	flush()
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// Writes the headings of g and the tables including it that haven't been
// written yet, outermost first.
func writeHeadings(w io.Writer, g *group, headed map[*group]bool) {
	var pending []*group
	for ; g != nil; g = g.parent {
		if g.heading != "" && !headed[g] {
			pending = append(pending, g)
		}
	}
	for i := len(pending) - 1; i >= 0; i-- {
		g := pending[i]
		headed[g] = true
		fmt.Fprintf(w, "%s%s:\n", indent(g.depth-1), g.heading)
	}
}

// Options shown in the usage, in registration order.
func (p *Parser) visible() (ret []*option) {
	for _, o := range p.opts {
		if !o.group.hidden && o.Desc != "" {
			ret = append(ret, o)
		}
	}
	return
}

func (p *Parser) visibleShorts() string {
	var b strings.Builder
	for _, o := range p.visible() {
		if o.Short != 0 {
			b.WriteRune(o.Short)
		}
	}
	return b.String()
}
