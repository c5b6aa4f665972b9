package apprep

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/apprep-go/pkg/apprep/models"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// datasetDocument detects absent top-level keys; a null value counts as absent.
type datasetDocument struct {
	Year       *models.Text        `json:"year"`
	Employee   *models.Employee    `json:"employee"`
	Appraisals *[]models.Appraisal `json:"appraisals"`
}

// Load reads and decodes the dataset at path.
func Load(path string) (*models.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return Decode(data)
}

// Decode decodes a dataset document.
func Decode(data []byte) (*models.Dataset, error) {
	var doc datasetDocument
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &doc); err != nil {
		return nil, errors.WithStack(fmt.Errorf("%w: %w", ErrInvalidDataset, err))
	}

	var missing []string
	if doc.Employee == nil {
		missing = append(missing, "employee")
	}
	if doc.Appraisals == nil {
		missing = append(missing, "appraisals")
	}
	if doc.Year == nil {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingKey, "%s", strings.Join(missing, ", "))
	}

	return &models.Dataset{
		Year:       *doc.Year,
		Employee:   *doc.Employee,
		Appraisals: *doc.Appraisals,
	}, nil
}
