package salesmetrics

import (
	"errors"
	"fmt"
)

// ErrNoTable indicates an analysis was requested before any table was loaded.
var ErrNoTable = errors.New("no data loaded")

// Load stages reported by LoadError.
const (
	StageRead  = "read"
	StageClean = "clean"
)

// LoadError represents an error while loading a file into a session.
type LoadError struct {
	Path  string
	Stage string // "read" or "clean"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
