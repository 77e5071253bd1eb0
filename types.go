package opt

import (
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/pkg/errors"
)

var typeMarshalFuncs = map[reflect.Type]func(arg string, settee reflect.Value) error{}

// f must be a func(string) (T, error). Fields of type T are then set with it.
func addMarshalFunc(f interface{}) {
	v := reflect.ValueOf(f)
	t := v.Type()
	setType := t.Out(0)
	typeMarshalFuncs[setType] = func(arg string, settee reflect.Value) error {
		out := v.Call([]reflect.Value{reflect.ValueOf(arg)})
		if i := out[1].Interface(); i != nil {
			return i.(error)
		}
		settee.Set(out[0])
		return nil
	}
}

func init() {
	addMarshalFunc(func(urlStr string) (*url.URL, error) {
		return url.Parse(urlStr)
	})
	addMarshalFunc(func(s string) (*net.TCPAddr, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	addMarshalFunc(func(s string) (time.Duration, error) {
		return time.ParseDuration(s)
	})
	addMarshalFunc(func(s string) (net.IP, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, errors.Errorf("'%s' is not an IP address", s)
		}
		return ip, nil
	})
}
