package binder

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// bindToStruct fills the fields of the struct behind v from lookup. Fields are
// matched by the tagName tag, or by the lowercased field name when untagged;
// a "-" tag skips the field. Every error wraps bindErr.
func bindToStruct(v any, tagName string, lookup func(name string) []string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", bindErr)
	}
	rv = rv.Elem()

	for i := range rv.NumField() {
		sf := rv.Type().Field(i)
		if !sf.IsExported() {
			continue
		}
		name := paramName(sf, tagName)
		if name == "" {
			continue
		}

		values := lookup(name)
		if len(values) == 0 || (len(values) == 1 && values[0] == "") {
			continue
		}
		if err := assign(rv.Field(i), values); err != nil {
			return fmt.Errorf("%w: %s: %v", bindErr, name, err)
		}
	}
	return nil
}

func paramName(sf reflect.StructField, tagName string) string {
	tag, ok := sf.Tag.Lookup(tagName)
	if !ok || tag == "" {
		return strings.ToLower(sf.Name)
	}
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// assign stores values into field. Slices take every value, split on commas;
// scalars take the first one.
func assign(field reflect.Value, values []string) error {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), values)
	}

	if field.Kind() == reflect.Slice && !field.Addr().Type().Implements(textUnmarshalerType) {
		var parts []string
		for _, v := range values {
			for p := range strings.SplitSeq(v, ",") {
				parts = append(parts, strings.TrimSpace(p))
			}
		}
		out := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := assign(out.Index(i), []string{p}); err != nil {
				return err
			}
		}
		field.Set(out)
		return nil
	}

	return parseScalar(field, values[0])
}

func parseScalar(field reflect.Value, s string) error {
	if u, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(s))
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid bool %q", s)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", s)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}
