// Package fspathmust wraps the fspath package with panic-based error handling.
//
// It provides the same conversions as the root-level fspath package, but
// instead of returning errors, all exported functions panic on failure.
package fspathmust

import (
	fspath "github.com/Jumpaku/go-fspath"
)

// FSPath returns the string representation of the given path-like value.
//
// It panics if path has neither the string type nor an FSPath method, or if
// its FSPath method produced a value that is not a string.
func FSPath(path any) string {
	return must1(fspath.FSPath(path))
}

// Bytes returns the byte string representation of the given path-like value.
//
// It panics under the same conditions as FSPath, with []byte as the required
// representation type.
func Bytes(path any) []byte {
	return must1(fspath.Bytes(path))
}

// As returns the representation of the given path-like value as type T.
//
// It panics if the value cannot be represented as T.
func As[T fspath.Representation](path any) T {
	return must1(fspath.As[T](path))
}
