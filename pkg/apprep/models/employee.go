package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCompanyName is shown in the report title when the company is unknown.
const DefaultCompanyName = "N/A"

// Employee is the person the report is about.
type Employee struct {
	// CompanyName is the employing company.
	CompanyName Text `json:"company_name"`
	// Department is the employee's department.
	Department Text `json:"department"`
	// Name is the employee's display name.
	Name Text `json:"name"`
	// EmpNumber is the staff number.
	EmpNumber Text `json:"emp_number"`
	// Role is the system role (e.g. "manager", "worker"). It selects the score divisor.
	Role Text `json:"role"`
	// Position is the job position.
	Position Text `json:"position"`
	// DateJoined is the joining date as provided.
	DateJoined Text `json:"date_joined"`
	// SupervisorName is the direct superior, when exported.
	SupervisorName Text `json:"supervisor_name"`
}

// Company returns the company name or "".
func (e Employee) Company() string { return e.CompanyName.String() }

// CompanyOrDefault returns the company name, or DefaultCompanyName when absent.
func (e Employee) CompanyOrDefault() string { return e.CompanyName.Or(DefaultCompanyName) }

// DisplayName returns the employee name or "".
func (e Employee) DisplayName() string { return e.Name.String() }

// RoleName returns the raw role, trimmed. An absent role resolves to "".
// Both the displayed role and the divisor derive from this value.
func (e Employee) RoleName() string {
	return strings.TrimSpace(e.Role.String())
}

// RoleTitle returns the role in title case ("team lead" -> "Team Lead").
func (e Employee) RoleTitle() string {
	return cases.Title(language.Und).String(e.RoleName())
}
