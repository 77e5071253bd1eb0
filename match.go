package opt

import "strings"

// Finds the long option for name. An exact match is preferred, otherwise name
// may be an abbreviation of exactly one option. Returns the candidates if
// there are several.
func (p *Parser) lookupLong(name string) (o *option, candidates []string) {
	if name == "" {
		return
	}
	if o = p.long[name]; o != nil {
		return
	}
	for _, r := range p.opts {
		if r.Long != "" && strings.HasPrefix(r.Long, name) {
			o = r
			candidates = append(candidates, r.Long)
		}
	}
	if len(candidates) > 1 {
		o = nil
		return
	}
	candidates = nil
	return
}

// Short options aren't abbreviated.
func (p *Parser) lookupShort(c rune) *option {
	return p.short[c]
}
