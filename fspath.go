package fspath

import (
	"reflect"
)

// PathLike is implemented by values that can report their file system path
// representation. Declaring the interface is a typing convenience: the
// conversion functions detect the FSPath method structurally, so any value
// with a zero-argument FSPath method is accepted whether or not it satisfies
// this interface.
type PathLike interface {
	FSPath() string
}

// Representation constrains the concrete types a path representation may
// take. Defined types whose underlying type is string or []byte satisfy it.
type Representation interface {
	~string | ~[]byte
}

// FSPath returns the string representation of the given path-like value.
//
// If a string is passed in, it is returned unchanged. Otherwise, the FSPath
// method of path is invoked and its result is required to be a string.
// An error is returned if path has neither form.
func FSPath(path any) (string, error) {
	return As[string](path)
}

// Bytes returns the byte string representation of the given path-like value.
// It behaves as FSPath does, with []byte as the required representation type.
func Bytes(path any) ([]byte, error) {
	return As[[]byte](path)
}

// As returns the representation of the given path-like value as type T.
//
// If path already satisfies T, it is returned unchanged. A value whose type
// has the same kind as T and is convertible to T is also accepted and
// converted, so defined string and byte slice types interchange with their
// underlying types. Otherwise the FSPath method of path is invoked and its
// result is required to satisfy T under the same rule.
//
// The returned error wraps ErrNotPathLike if path has neither the required
// type nor an FSPath method, and ErrRepresentation if FSPath produced a value
// that does not satisfy T.
func As[T Representation](path any) (T, error) {
	var zero T
	if t, ok := path.(T); ok {
		return t, nil
	}
	want := reflect.TypeOf((*T)(nil)).Elem()
	rv := reflect.ValueOf(path)
	if rv.IsValid() && satisfies(rv.Type(), want) {
		return rv.Convert(want).Interface().(T), nil
	}
	result, ok := callFSPath(rv)
	if !ok {
		return zero, newNotPathLikeError("path must implement FSPath or be an instance of the type constraint")
	}
	if !result.IsValid() || !satisfies(result.Type(), want) {
		return zero, newRepresentationError("FSPath must return a string or []byte, not " + typeName(result))
	}
	return result.Convert(want).Interface().(T), nil
}

// satisfies reports whether a value of type t counts as an instance of the
// constraint type want. Requiring equal kinds keeps string and []byte apart,
// which ConvertibleTo alone would not.
func satisfies(t, want reflect.Type) bool {
	return t.Kind() == want.Kind() && t.ConvertibleTo(want)
}

// callFSPath invokes the zero-argument FSPath method of rv, if rv has one.
// A method named FSPath that takes arguments or does not return exactly one
// value does not count as the capability.
func callFSPath(rv reflect.Value) (result reflect.Value, ok bool) {
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	m := rv.MethodByName("FSPath")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return reflect.Value{}, false
	}
	out := m.Call(nil)[0]
	if out.Kind() == reflect.Interface {
		out = out.Elem()
	}
	return out, true
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
