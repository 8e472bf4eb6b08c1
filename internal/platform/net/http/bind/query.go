package bind

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "biblia/internal/platform/errors"
)

// ParseQuery binds URL query values into the exported fields of struct T
// using the `query` tag, then validates. Supported kinds: string, bool, ints.
// Only the first value of a repeated parameter is used.
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return dst, perr.Internalf("bind: query target %T is not a struct", dst)
	}
	q := r.URL.Query()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := tagName(sf, "query")
		if name == "" || !sf.IsExported() {
			continue
		}
		raw, ok := q[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := setField(rv.Field(i), strings.TrimSpace(raw[0])); err != nil {
			return dst, perr.WithField(perr.InvalidArgf("invalid value for %s", name), name)
		}
	}
	if err := Validate(dst); err != nil {
		return dst, err
	}
	return dst, nil
}

func setField(f reflect.Value, s string) error {
	switch f.Kind() {
	case reflect.String:
		f.SetString(s)
	case reflect.Bool:
		if s == "" {
			return nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s == "" {
			return nil
		}
		n, err := strconv.ParseInt(s, 10, f.Type().Bits())
		if err != nil {
			return err
		}
		f.SetInt(n)
	default:
		return perr.Internalf("unsupported kind %s", f.Kind())
	}
	return nil
}
