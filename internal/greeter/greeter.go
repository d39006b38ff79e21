// Package greeter builds greeting messages from loosely typed input.
//
// Callers on the far side of a transport boundary (JSON, CBOR, query strings)
// can hand over values of any type, so Greet accepts any and checks the type
// at runtime. Internal callers that already hold a string use Hello.
package greeter

import (
	"errors"
	"fmt"
	"reflect"
)

// DefaultName is greeted when no input is supplied.
const DefaultName = "napi-rs"

// ErrInvalidArgumentType is returned when the supplied input is not a string.
var ErrInvalidArgumentType = errors.New("invalid argument type")

// Hello formats the greeting for name. The name is used verbatim.
func Hello(name string) string {
	return "Hello, " + name + "!"
}

// Default returns the greeting used when no input is supplied.
func Default() string {
	return Hello(DefaultName)
}

// Greet returns the greeting for input.
//
// A nil input (untyped nil or a nil *string) greets DefaultName. A string or
// non-nil *string is greeted verbatim, including the empty string. Any other
// value yields an error wrapping ErrInvalidArgumentType and an empty result.
func Greet(input any) (string, error) {
	switch v := input.(type) {
	case nil:
		return Default(), nil
	case string:
		return Hello(v), nil
	case *string:
		if v == nil {
			return Default(), nil
		}
		return Hello(*v), nil
	default:
		return "", fmt.Errorf("%w: expected string, got %s", ErrInvalidArgumentType, KindOf(input))
	}
}

// KindOf names the JSON-style kind of v for error messages.
func KindOf(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "null"
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return "bytes"
		}
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Func:
		return "function"
	default:
		return rv.Kind().String()
	}
}
