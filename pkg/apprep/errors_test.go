package apprep

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBuildError(t *testing.T) {
	err := NewBuildError(StageSave, errors.Wrap(ErrOutputEmpty, "report.xlsx"))

	require.Equal(t, "save: report.xlsx: output file is empty", err.Error())
	require.True(t, errors.Is(err, ErrOutputEmpty))
	require.Equal(t, err.Error(), fmt.Sprintf("%v", err))

	// %+v carries the stack trace of the wrapped error.
	detailed := fmt.Sprintf("%+v", err)
	require.Contains(t, detailed, "save: ")
	require.Contains(t, detailed, "TestBuildError")
}
