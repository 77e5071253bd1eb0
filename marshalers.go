package opt

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Marshaler is implemented by types that set themselves from an option's
// argument. TableFromStruct uses it for fields whose address implements it.
type Marshaler interface {
	Marshal(in string) error
}

// Returns the func that sets v from an argument, or nil if v's type isn't
// supported.
func valueMarshaler(v reflect.Value) func(s string, v reflect.Value) error {
	if v.CanAddr() {
		if _, ok := v.Addr().Interface().(Marshaler); ok {
			return marshalMarshaler
		}
	}
	if f, ok := typeMarshalFuncs[v.Type()]; ok {
		return f
	}
	switch v.Kind() {
	case reflect.Slice:
		if valueMarshaler(reflect.New(v.Type().Elem()).Elem()) == nil {
			return nil
		}
		return marshalAppend
	case reflect.Ptr, reflect.Struct, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Array:
		return nil
	}
	return defaultMarshal
}

func marshalMarshaler(s string, v reflect.Value) error {
	return v.Addr().Interface().(Marshaler).Marshal(s)
}

// Each occurrence of the option appends an element.
func marshalAppend(s string, v reflect.Value) error {
	n := reflect.New(v.Type().Elem()).Elem()
	if err := valueMarshaler(n)(s, n); err != nil {
		return err
	}
	v.Set(reflect.Append(v, n))
	return nil
}

// The fallback, for the basic kinds, and then fmt.Sscan.
func defaultMarshal(s string, v reflect.Value) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return InvalidArgument(s)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := parseInt(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := parseUint(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return errors.Errorf("'%s' is not a number", s)
		}
		v.SetFloat(f)
	default:
		if !v.CanAddr() {
			return errors.Errorf("can't set %s", v.Type())
		}
		if _, err := fmt.Sscan(s, v.Addr().Interface()); err != nil {
			return errors.Wrapf(err, "error parsing %q", s)
		}
	}
	return nil
}
