package opt

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// TableFromStruct derives a table of options from the exported fields of the
// struct that cmd points to. The options set the fields when parsed.
//
// For example:
//
//	var opts struct {
//		Verbose bool          `short:"v" help:"log more"`
//		DataDir string        `short:"d" help:"where to keep data"`
//		Peer    []string      `help:"address of a starting peer"`
//		Timeout time.Duration `help:"how long to wait"`
//	}
//	t, err := opt.TableFromStruct(&opts)
//
// Supported tags are:
//
//	long: the name for --long, otherwise derived from the field name, eg.
//	      DataDir is --data-dir. "-" skips the field.
//	short: a single character for -X
//	help: the description in the usage, or the heading for a nested struct
//	hidden: "true" hides a nested struct's options from the usage
//
// Bool fields take no argument and are set to true. Nested structs become
// subtables; embedded ones have no heading.
func TableFromStruct(cmd interface{}) (Table, error) {
	v := reflect.ValueOf(cmd)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf("expected pointer to struct, got %T", cmd)
	}
	return structTable(v.Elem())
}

func structTable(st reflect.Value) (t Table, err error) {
	foreachStructField(st, func(f reflect.Value, sf reflect.StructField) (stop bool) {
		if sf.PkgPath != "" || sf.Tag.Get("long") == "-" {
			return false
		}
		var e Entry
		e, err = fieldEntry(f, sf)
		if err != nil {
			err = errors.Wrapf(err, "field %s.%s", st.Type(), sf.Name)
			return true
		}
		t = append(t, e)
		return false
	})
	return
}

func fieldEntry(f reflect.Value, sf reflect.StructField) (Entry, error) {
	help := sf.Tag.Get("help")
	long := sf.Tag.Get("long")
	if long == "" {
		long = fieldLongFlagKey(sf.Name)
	}
	var short rune
	if s := sf.Tag.Get("short"); s != "" {
		if utf8.RuneCountInString(s) != 1 {
			return Entry{}, errors.Errorf("bad short tag: %q", s)
		}
		short, _ = utf8.DecodeRuneInString(s)
	}
	if f.Kind() == reflect.Bool {
		return WithoutArg(long, short, setTrue, f, help), nil
	}
	if m := valueMarshaler(f); m != nil {
		return WithArg(long, short, m, f, help), nil
	}
	if f.Kind() == reflect.Struct {
		sub, err := structTable(f)
		if err != nil {
			return Entry{}, err
		}
		if sf.Tag.Get("hidden") == "true" {
			return HiddenSubtable(sub), nil
		}
		if sf.Anonymous {
			return Subtable(sub, ""), nil
		}
		if help == "" {
			help = sf.Name
		}
		return Subtable(sub, help), nil
	}
	return Entry{}, errors.Errorf("can't set type %s", f.Type())
}

func setTrue(v reflect.Value) error {
	v.SetBool(true)
	return nil
}

// Turns a struct field name into a long option name, eg. ListenAddr into
// listen-addr.
func fieldLongFlagKey(fieldName string) string {
	return strings.Replace(xstrings.ToSnakeCase(fieldName), "_", "-", -1)
}

func foreachStructField(_struct reflect.Value, f func(fv reflect.Value, sf reflect.StructField) (stop bool)) {
	t := _struct.Type()
	for i := range iter.N(t.NumField()) {
		sf := t.Field(i)
		fv := _struct.Field(i)
		if f(fv, sf) {
			break
		}
	}
}
