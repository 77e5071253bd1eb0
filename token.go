package opt

import "strings"

type tokenKind int

const (
	tokPositional tokenKind = iota
	// "--": everything after is positional.
	tokEnd
	// "--name" or "--name=value"
	tokLong
	// "-abc"
	tokShort
)

type token struct {
	kind tokenKind
	// Long option name, short option cluster, or the positional argument.
	text string
	// The text after '=' in a long option.
	value    string
	hasValue bool
}

// Classifies a command-line argument by its leading characters alone.
func classify(s string) (t token) {
	switch {
	case s == "--":
		t.kind = tokEnd
	case strings.HasPrefix(s, "--"):
		t.kind = tokLong
		t.text = s[2:]
		if i := strings.IndexByte(t.text, '='); i != -1 {
			t.value = t.text[i+1:]
			t.hasValue = true
			t.text = t.text[:i]
		}
	case strings.HasPrefix(s, "-") && len(s) > 1:
		t.kind = tokShort
		t.text = s[1:]
	default:
		t.text = s
	}
	return
}
