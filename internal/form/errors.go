package form

import (
	"errors"

	"github.com/mohamedlefliti/projetennaciria/internal/grid"
	"github.com/mohamedlefliti/projetennaciria/internal/repository"
)

var (
	ErrMissingFields = errors.New("please fill in all fields")
	ErrInvalidAmount = errors.New("please enter a valid number in the amount field")
	ErrNoSelection   = errors.New("please select a transaction first")
	ErrCancelled     = errors.New("deletion cancelled")
)

// StorageError reports a failure of the store. Error returns the store's
// message verbatim, prefixed with the action that failed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// ExportError reports a failure while reading or writing the export file.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string { return "export failed: " + e.Err.Error() }
func (e *ExportError) Unwrap() error { return e.Err }

type Severity int

const (
	Info Severity = iota
	Warning
	Critical
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return "critical"
	}
}

// Classify maps an action result to the severity it is reported with.
// Validation, precondition and not-found results are warnings; store and
// export failures are critical.
func Classify(err error) Severity {
	switch {
	case err == nil:
		return Info
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNoSelection),
		errors.Is(err, ErrCancelled),
		errors.Is(err, grid.ErrOutOfRange),
		errors.Is(err, repository.ErrNotFound):
		return Warning
	default:
		return Critical
	}
}
