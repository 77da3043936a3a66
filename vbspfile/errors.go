package vbspfile

import "fmt"

// LoadErrorKind classifies why a map file failed to load. Every failure
// path in this package reports exactly one of these.
type LoadErrorKind string

const (
	IoError            LoadErrorKind = "io_error"
	InvalidMagic       LoadErrorKind = "invalid_magic"
	UnsupportedVersion LoadErrorKind = "unsupported_version"
	InvalidLumpSize    LoadErrorKind = "invalid_lump_size"
	LeafTableEmpty     LoadErrorKind = "leaf_table_empty"
	LeafTableOverflow  LoadErrorKind = "leaf_table_overflow"
)

// LoadError wraps an underlying cause with the LoadErrorKind a caller
// should branch on, following the same shape as
// newbthenewbd-btrfs-rec/lib/binstruct's typed error wrappers: a struct
// carrying an Err, with Error()/Unwrap() so errors.Is/errors.As still see
// through to the cause.
type LoadError struct {
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func newLoadError(kind LoadErrorKind, err error) *LoadError {
	return &LoadError{Kind: kind, Err: err}
}
