package dimgo

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// isPlain reports whether values of t are copied bit for bit: only floats,
// arrays and structs of them, nothing that points elsewhere.
func isPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	case reflect.Array:
		return isPlain(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func assertPlainData[T any](t *testing.T, k int, elemSize uintptr) {
	t.Helper()

	typ := reflect.TypeFor[T]()
	assert.Equal(t, reflect.Struct, typ.Kind())
	assert.True(t, isPlain(typ), "%v is not plain data", typ)
	assert.Equal(t, uintptr(k)*elemSize, typ.Size(), "%v carries extra storage", typ)
	assert.True(t, typ.Comparable())
}
