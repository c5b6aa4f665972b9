package apprep

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrFileNotFound indicates the dataset file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidDataset indicates the dataset is not valid JSON or has the wrong shape.
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrMissingKey indicates a required top-level key is absent or null.
	ErrMissingKey = errors.New("missing required key")
	// ErrOutputExists indicates the output exists and overwriting is disabled.
	ErrOutputExists = errors.New("output already exists")
	// ErrOutputMissing indicates the save returned but no file was produced.
	ErrOutputMissing = errors.New("output file was not created")
	// ErrOutputEmpty indicates the saved file has zero length.
	ErrOutputEmpty = errors.New("output file is empty")
	// ErrVerification indicates the saved workbook does not have the expected structure.
	ErrVerification = errors.New("output verification failed")
)

// Stage names the step of a build that failed.
type Stage string

const (
	StageLoad   Stage = "load"
	StageLayout Stage = "layout"
	StageSave   Stage = "save"
	StageVerify Stage = "verify"
)

// BuildError represents an error during a report build.
type BuildError struct {
	Stage Stage
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Format prints the wrapped error's stack trace for %+v.
func (e *BuildError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.Stage, e.Err)
		return
	}
	fmt.Fprint(s, e.Error())
}

// NewBuildError creates a new BuildError.
func NewBuildError(stage Stage, err error) *BuildError {
	return &BuildError{
		Stage: stage,
		Err:   err,
	}
}
