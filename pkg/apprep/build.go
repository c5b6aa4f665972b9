package apprep

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/apprep-go/pkg/apprep/layout"
	"github.com/ukaji3/apprep-go/pkg/apprep/models"
	"github.com/xuri/excelize/v2"
)

// Result is the outcome of one build.
type Result struct {
	// OK is true only when the report was saved and verified.
	OK bool
	// Message is a human-readable outcome.
	Message string
	// Err is the failure, nil on success.
	Err error
	// OutputPath is where the report was written (resolved when a directory was given).
	OutputPath string
	// Size is the size of the verified output in bytes.
	Size int64
	// Employee is the employee name from the dataset.
	Employee string
	// Rows are the evaluated summaries of the data rows.
	Rows []models.RowSummary
	// Duration is the wall time of the build.
	Duration time.Duration
}

// Build converts the dataset at datasetPath into a report at outputPath.
// Every failure is reported through the Result; Build does not return errors.
func Build(datasetPath, outputPath string, opts Options) Result {
	start := time.Now()
	log := opts.logger()

	res := Result{OutputPath: outputPath}
	if err := build(datasetPath, &res, opts, log); err != nil {
		res.Err = err
		res.Message = err.Error()
		log.WithError(err).Error("report generation failed")
	} else {
		res.OK = true
		res.Message = "report generated"
	}
	res.Duration = time.Since(start)
	return res
}

func build(datasetPath string, res *Result, opts Options, log logrus.FieldLogger) error {
	ds, err := Load(datasetPath)
	if err != nil {
		return NewBuildError(StageLoad, err)
	}
	res.Employee = ds.Employee.DisplayName()
	log.WithFields(logrus.Fields{
		"employee":   res.Employee,
		"appraisals": len(ds.Appraisals),
	}).Info("processing report")
	if len(ds.Appraisals) == 0 {
		log.Warn("dataset has no appraisals; writing headers only")
	}

	res.OutputPath = ResolveOutputPath(res.OutputPath, ds)
	if !opts.Overwrite {
		if _, err := os.Stat(res.OutputPath); err == nil {
			return NewBuildError(StageSave, errors.Wrapf(ErrOutputExists, "%s", res.OutputPath))
		}
	}

	report := layout.Layout(ds)
	for _, row := range report.Rows {
		s := row.Summary
		log.WithFields(logrus.Fields{
			"row":             row.R,
			"form":            s.Form,
			"period":          s.Period,
			"employee_score":  s.Employee.Score.String(),
			"employee_rating": s.Employee.Rating,
			"manager_score":   s.Manager.Score.String(),
			"final_rating":    s.Manager.Rating,
		}).Debug("row laid out")
		res.Rows = append(res.Rows, s)
	}

	if err := save(report, res.OutputPath); err != nil {
		return err
	}
	log.WithField("output", res.OutputPath).Info("excel report generated")

	size, err := verifyArtifact(res.OutputPath)
	if err != nil {
		return NewBuildError(StageVerify, err)
	}
	res.Size = size
	if opts.ShouldVerifyStructure() {
		if err := verifyStructure(res.OutputPath, report); err != nil {
			return NewBuildError(StageVerify, err)
		}
	}
	log.WithField("bytes", size).Info("output verified")
	return nil
}

func save(report *layout.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := report.Write(f); err != nil {
		return NewBuildError(StageLayout, errors.WithStack(err))
	}
	if err := f.SaveAs(path); err != nil {
		return NewBuildError(StageSave, errors.Wrapf(err, "save %s", path))
	}
	return nil
}
