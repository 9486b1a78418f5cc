package fspath

// This file is part of the package tests (package fspath) and provides
// helpers that allow tests in the external package to access internal
// package constructs. Helpers are exported so `fspath_test` can call them
// via the module import path.

// NewNotPathLikeError constructs a not-path-like error using the package-internal constructor.
func NewNotPathLikeError(msg string) error {
	return newNotPathLikeError(msg)
}

// NewRepresentationError constructs a representation error using the package-internal constructor.
func NewRepresentationError(msg string) error {
	return newRepresentationError(msg)
}
