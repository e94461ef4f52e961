package domain

import (
	"regexp"
	"strings"
)

// Employee is one record as known to the REST backend.
// ID is assigned by the server; a non-zero ID means the record is persisted.
type Employee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Draft returns the mutable fields of e.
func (e Employee) Draft() EmployeeDraft {
	return EmployeeDraft{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Role:      e.Role,
	}
}

// FullName is used in confirmation prompts and the PDF roster.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// EmployeeDraft is the payload of a create or update: every mutable field, no id.
type EmployeeDraft struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (d EmployeeDraft) Trimmed() EmployeeDraft {
	return EmployeeDraft{
		FirstName: strings.TrimSpace(d.FirstName),
		LastName:  strings.TrimSpace(d.LastName),
		Email:     strings.TrimSpace(d.Email),
		Role:      strings.TrimSpace(d.Role),
	}
}

// IsZero reports whether every field is empty.
func (d EmployeeDraft) IsZero() bool {
	return d == EmployeeDraft{}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks the trimmed draft. A missing field is reported before a
// malformed email.
func (d EmployeeDraft) Validate() error {
	t := d.Trimmed()
	var missing []string
	if t.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if t.LastName == "" {
		missing = append(missing, "lastName")
	}
	if t.Email == "" {
		missing = append(missing, "email")
	}
	if t.Role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return &ValidationError{Reason: ReasonMissingFields, Fields: missing}
	}
	if !ValidEmail(t.Email) {
		return &ValidationError{Reason: ReasonInvalidEmail, Fields: []string{"email"}}
	}
	return nil
}
