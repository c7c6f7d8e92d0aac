package aassert

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// SameJSONFields asserts that the structs expected and actual serialise to the same set of json keys.
// Use it for structs that are mapped onto each other, e.g. a request payload onto a domain input,
// so that adding a field to one of them without the other fails a test.
func SameJSONFields(t *testing.T, expected any, actual any, msgAndArgs ...any) bool {
	t.Helper()

	if !isStruct(expected) || !isStruct(actual) {
		return assert.Fail(t, "invalid argument, it has to be a struct", msgAndArgs...)
	}

	exp := JSONFields(expected)
	act := JSONFields(actual)

	if !slices.Equal(exp, act) {
		return assert.Fail(t, fmt.Sprintf("json fields differ:\nexpected: %v\nactual  : %v\n"+
			"ensure all functions mapping %T and %T are correct",
			exp, act, expected, actual,
		), msgAndArgs...)
	}

	return true
}

// JSONFields returns the sorted json keys of the exported fields of the struct object, without the keys in except.
// Fields tagged with `json:"-"` are skipped, untagged fields use their Go name.
// Fields of embedded structs are promoted like encoding/json does.
// For everything that is not a struct or a pointer to a struct it returns nil.
func JSONFields(object any, except ...string) []string {
	if !isStruct(object) {
		return nil
	}

	typ := reflect.TypeOf(object)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	fields := []string{}

	for _, name := range jsonFields(typ) {
		if !slices.Contains(except, name) {
			fields = append(fields, name)
		}
	}

	slices.Sort(fields)

	return fields
}

func jsonFields(typ reflect.Type) []string {
	var fields []string

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}

		if field.Anonymous && name == "" {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}

			if embedded.Kind() == reflect.Struct {
				fields = append(fields, jsonFields(embedded)...)

				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		fields = append(fields, name)
	}

	return fields
}

func isStruct(object any) bool {
	if object == nil {
		return false
	}

	typ := reflect.TypeOf(object)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct
}
