package persistence

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel causes carried by LoadError
var (
	ErrMissing = errors.New("missing field")
	ErrInvalid = errors.New("invalid value")
)

// LoadError reports a save record that could not be read or reconstructed
// Field names the offending record key, empty when the whole record failed
type LoadError struct {
	Path  string
	Field string
	Err   error
}

func (e *LoadError) Error() string {
	switch {
	case e.Field != "" && e.Path != "":
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("load: %s: %v", e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
func (e *LoadError) Cause() error  { return e.Err }

// SaveError reports a record that could not be written; simulation state is untouched
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
func (e *SaveError) Cause() error  { return e.Err }

func missing(field string) *LoadError {
	return &LoadError{Field: field, Err: ErrMissing}
}

func invalid(field string, v any) *LoadError {
	return &LoadError{Field: field, Err: errors.Wrapf(ErrInvalid, "%v", v)}
}
