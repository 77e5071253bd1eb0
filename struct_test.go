package opt

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Common struct {
	Quiet bool `short:"q" help:"say less"`
}

func TestTableFromStruct(t *testing.T) {
	var cmd struct {
		Verbose    bool   `short:"v" help:"be verbose"`
		DataDir    string `short:"d"`
		ListenAddr string
		Peer       []string
		Count      int
		Ratio      float64
		Size       Bytes
		Timeout    time.Duration
		Addr       *net.TCPAddr
		IP         net.IP `long:"ip"`
		Debug      struct {
			Trace bool `help:"trace"`
		} `help:"Debug options"`
		Common
		Skip    string `long:"-"`
		ignored int
	}
	table, err := TableFromStruct(&cmd)
	require.NoError(t, err)
	p := New()
	p.Register(table, "")
	pos, err := p.ParseErr([]string{
		"-vqd", "/tmp", "--listen-addr=1.2.3.4:80",
		"--peer", "a", "--peer=b",
		"--count", "0x10", "--ratio=0.5", "--size=100g", "--timeout=1s",
		"--trace", "--addr=:443", "--ip=127.0.0.1", "file",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"file"}, pos)
	assert.True(t, cmd.Verbose)
	assert.True(t, cmd.Quiet)
	assert.Equal(t, "/tmp", cmd.DataDir)
	assert.Equal(t, "1.2.3.4:80", cmd.ListenAddr)
	assert.Equal(t, []string{"a", "b"}, cmd.Peer)
	assert.Equal(t, 16, cmd.Count)
	assert.Equal(t, 0.5, cmd.Ratio)
	assert.EqualValues(t, 100e9, cmd.Size)
	assert.Equal(t, time.Second, cmd.Timeout)
	assert.True(t, cmd.Debug.Trace)
	assert.EqualValues(t, ":443", cmd.Addr.String())
	assert.True(t, net.ParseIP("127.0.0.1").Equal(cmd.IP))

	_, err = p.ParseErr([]string{"--skip=x"})
	assert.True(t, IsKind(err, UnrecognizedOption))
	_, err = p.ParseErr([]string{"--count=lots"})
	assert.EqualError(t, err, "--count: 'lots' is not a number")
	_, err = p.ParseErr([]string{"--ip=nowhere"})
	assert.EqualError(t, err, "--ip: 'nowhere' is not an IP address")
}

func TestTableFromStructUsage(t *testing.T) {
	var cmd struct {
		Verbose bool   `short:"v" help:"be verbose"`
		Name    string `help:"who to greet"`
		Debug   struct {
			Trace bool `help:"trace"`
		} `help:"Debug options"`
		Internal struct {
			Magic bool `help:"magic"`
		} `hidden:"true"`
	}
	table, err := TableFromStruct(&cmd)
	require.NoError(t, err)
	p := New()
	p.Register(table, "")
	assertUsage(t, ""+
		"Usage: prog [-v]\n"+
		"  -v, --verbose   be verbose\n"+
		"  --name <arg>    who to greet\n"+
		"Debug options:\n"+
		"  --trace   trace\n",
		p.Usage("prog", ""))
	_, err = p.ParseErr([]string{"--magic"})
	assert.NoError(t, err)
	assert.True(t, cmd.Internal.Magic)
}

func TestTableFromStructErrors(t *testing.T) {
	_, err := TableFromStruct(struct{}{})
	assert.Error(t, err)
	_, err = TableFromStruct(new(int))
	assert.Error(t, err)
	table, err := TableFromStruct(new(struct{}))
	assert.NoError(t, err)
	assert.Empty(t, table)

	var cmd1 struct {
		Wtf *int
	}
	_, err = TableFromStruct(&cmd1)
	assert.Contains(t, err.Error(), "*int")

	var cmd2 struct {
		A bool `short:"ab"`
	}
	_, err = TableFromStruct(&cmd2)
	assert.Contains(t, err.Error(), "bad short tag")

	var cmd3 struct {
		A bool `short:"x"`
		B bool `short:"x"`
	}
	table, err = TableFromStruct(&cmd3)
	require.NoError(t, err)
	assert.Error(t, New().RegisterErr(table, ""))
}

func TestDefaultLongFlagName(t *testing.T) {
	assert.EqualValues(t, "no-upload", fieldLongFlagKey("NoUpload"))
	assert.EqualValues(t, "listen-addr", fieldLongFlagKey("ListenAddr"))
	assert.EqualValues(t, "addr", fieldLongFlagKey("Addr"))
	assert.EqualValues(t, "v", fieldLongFlagKey("V"))
}
