package models

import (
	"github.com/shopspring/decimal"
)

// Section holds the aggregated scores of one form section.
type Section struct {
	// Title is the section heading, when exported.
	Title Text `json:"title"`
	// EmployeeScore is the employee's self-assessment score.
	EmployeeScore decimal.NullDecimal `json:"employee_score"`
	// ManagerScore is the manager's score.
	ManagerScore decimal.NullDecimal `json:"manager_score"`
}

// Employee returns the employee score, zero when absent.
func (s Section) Employee() decimal.Decimal {
	if !s.EmployeeScore.Valid {
		return decimal.Zero
	}
	return s.EmployeeScore.Decimal
}

// Manager returns the manager score, zero when absent.
func (s Section) Manager() decimal.Decimal {
	if !s.ManagerScore.Valid {
		return decimal.Zero
	}
	return s.ManagerScore.Decimal
}

// Appraisal is one completed review for one period.
type Appraisal struct {
	// ID is the source record id, when exported.
	ID Text `json:"id"`
	// FormTitle is the title of the appraisal form.
	FormTitle Text `json:"form_title"`
	// PeriodFrom is the first day of the review period.
	PeriodFrom Text `json:"period_from"`
	// PeriodTo is the last day of the review period.
	PeriodTo Text `json:"period_to"`
	// TotalScore is the stored total, carried but not laid out.
	TotalScore Text `json:"total_score"`
	// Grade is the stored grade, carried but not laid out.
	Grade Text `json:"grade"`
	// SubmittedAt is when the employee submitted.
	SubmittedAt Text `json:"submitted_at"`
	// ReviewedAt is when the manager completed the review.
	ReviewedAt Text `json:"reviewed_at"`
	// Sections is ordered by section order; the index is the report slot.
	Sections []Section `json:"sections"`
}

// Form returns the form title or "".
func (a Appraisal) Form() string { return a.FormTitle.String() }

// Period formats the review period as "<from> to <to>".
func (a Appraisal) Period() string {
	return a.PeriodFrom.String() + " to " + a.PeriodTo.String()
}

// Slots returns at most n sections; the rest of the sequence is dropped.
func (a Appraisal) Slots(n int) []Section {
	if len(a.Sections) > n {
		return a.Sections[:n]
	}
	return a.Sections
}
