// Package apprep builds the appraisal summary workbook from an appraisal dataset.
package apprep

import (
	"io"

	"github.com/sirupsen/logrus"
)

// VerifyMode controls how a saved report is checked.
type VerifyMode string

const (
	// VerifyBasic checks that the output exists and is non-empty.
	VerifyBasic VerifyMode = "basic"
	// VerifyFull also reopens the workbook and checks sheet, header row and row count.
	VerifyFull VerifyMode = "full"
)

// Options configures build behavior.
type Options struct {
	// Verify selects the post-save check. Empty means VerifyFull.
	Verify VerifyMode
	// Overwrite allows replacing an existing output file.
	Overwrite bool
	// Logger receives progress and diagnostics. Nil discards them.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		Verify:    VerifyFull,
		Overwrite: true,
	}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ShouldVerifyStructure returns whether the saved workbook is reopened and inspected.
func (o Options) ShouldVerifyStructure() bool {
	return o.Verify != VerifyBasic
}
