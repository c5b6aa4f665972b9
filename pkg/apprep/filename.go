package apprep

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/ukaji3/apprep-go/pkg/apprep/models"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SuggestedFileName returns "Appraisal_Report_<name>_<year>.xlsx" with every character
// outside [a-zA-Z0-9_-] in name and year replaced by "_".
func SuggestedFileName(ds *models.Dataset) string {
	name := unsafeFileChars.ReplaceAllString(ds.Employee.DisplayName(), "_")
	year := unsafeFileChars.ReplaceAllString(ds.YearLabel(), "_")
	return "Appraisal_Report_" + name + "_" + year + ".xlsx"
}

// ResolveOutputPath returns outputPath, or the suggested file name inside it when
// outputPath is an existing directory.
func ResolveOutputPath(outputPath string, ds *models.Dataset) string {
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		return filepath.Join(outputPath, SuggestedFileName(ds))
	}
	return outputPath
}
