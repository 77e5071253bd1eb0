package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Records callback invocations, in order.
type recorder struct {
	calls []string
}

func (r *recorder) noArg(name string) func(*recorder) error {
	return func(*recorder) error {
		r.calls = append(r.calls, name)
		return nil
	}
}

func (r *recorder) withArg(name string) func(string, *recorder) error {
	return func(arg string, _ *recorder) error {
		r.calls = append(r.calls, name+"="+arg)
		return nil
	}
}

type parseCase struct {
	args []string
	// Expected error kind, or 0 for success.
	kind Kind
	// Expected error message, if any.
	msg        string
	calls      []string
	positional []string
}

func noErrorCase(calls []string, positional []string, args ...string) parseCase {
	return parseCase{args: args, calls: calls, positional: positional}
}

func errorCase(kind Kind, msg string, args ...string) parseCase {
	return parseCase{args: args, kind: kind, msg: msg}
}

func (me parseCase) Run(t *testing.T, newParser func(*recorder) *Parser) {
	r := &recorder{}
	p := newParser(r)
	pos, err := p.ParseErr(me.args)
	if me.kind != 0 {
		assert.True(t, IsKind(err, me.kind), "%v: %v", me.args, err)
		if me.msg != "" {
			assert.EqualError(t, err, me.msg)
		}
		assert.Nil(t, pos)
		return
	}
	if !assert.NoError(t, err, "%v", me.args) {
		return
	}
	positional := me.positional
	if positional == nil {
		positional = []string{}
	}
	assert.EqualValues(t, me.calls, r.calls, "%v", me.args)
	assert.EqualValues(t, positional, pos, "%v", me.args)
}

func RunCases(t *testing.T, cases []parseCase, newParser func(*recorder) *Parser) {
	for _, _case := range cases {
		_case.Run(t, newParser)
	}
}
