package opt

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Standard callbacks, for use with WithoutArg and WithArg. You can write your
// own.

// InvalidArgument returns the error for an argument a callback can't use.
func InvalidArgument(arg string) error {
	return errors.Errorf("Invalid argument '%s'", arg)
}

// Sets *b to true.
func SetBool(b *bool) error {
	*b = true
	return nil
}

// Sets *b to false.
func SetInvBool(b *bool) error {
	*b = false
	return nil
}

func parseBool(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	}
	return false, InvalidArgument(arg)
}

// Sets *b from yes, no, true or false, ignoring case.
func SetBoolArg(arg string, b *bool) error {
	v, err := parseBool(arg)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// The inverse of SetBoolArg.
func SetInvBoolArg(arg string, b *bool) error {
	v, err := parseBool(arg)
	if err != nil {
		return err
	}
	*b = !v
	return nil
}

func SetString(arg string, s *string) error {
	*s = arg
	return nil
}

// Appends arg to *l, for options that may be given more than once.
func AppendString(arg string, l *[]string) error {
	*l = append(*l, arg)
	return nil
}

func numError(arg string, err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
		return errors.Errorf("'%s' is out of range", arg)
	}
	return errors.Errorf("'%s' is not a number", arg)
}

// Integers may be given in decimal, or with a 0x, 0o, 0b or 0 prefix.
func parseInt(arg string, bitSize int) (int64, error) {
	i, err := strconv.ParseInt(arg, 0, bitSize)
	if err != nil {
		return 0, numError(arg, err)
	}
	return i, nil
}

func parseUint(arg string, bitSize int) (uint64, error) {
	u, err := strconv.ParseUint(arg, 0, bitSize)
	if err != nil {
		return 0, numError(arg, err)
	}
	return u, nil
}

func SetInt(arg string, i *int) error {
	v, err := parseInt(arg, strconv.IntSize)
	if err != nil {
		return err
	}
	*i = int(v)
	return nil
}

func SetUint(arg string, u *uint) error {
	v, err := parseUint(arg, strconv.IntSize)
	if err != nil {
		return err
	}
	*u = uint(v)
	return nil
}

func SetInt64(arg string, i *int64) error {
	v, err := parseInt(arg, 64)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func SetUint64(arg string, u *uint64) error {
	v, err := parseUint(arg, 64)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Increments *i, eg. for each -v.
func IncInt(i *int) error {
	*i++
	return nil
}

func SetDuration(arg string, d *time.Duration) error {
	v, err := time.ParseDuration(arg)
	if err != nil {
		return errors.Wrapf(err, "'%s' is not a duration", arg)
	}
	*d = v
	return nil
}

// Sets *b from a human readable size, such as 100MB or 4KiB.
func SetBytes(arg string, b *Bytes) error {
	return errors.Wrapf(b.Marshal(arg), "'%s' is not a size", arg)
}
