package domain

import (
	"strings"
	"time"
)

// Employee represents one onboarded individual. Records are immutable once
// created; the only lifecycle transitions are creation and deletion.
type Employee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Project      string    `json:"project"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Projects an employee can be assigned to.
var Projects = []string{
	"Project Nova",
	"The Aurora Design System",
	"Customer 360",
}

// Roles an employee can be hired into.
var Roles = []string{
	"Design System Intern",
	"Frontend Engineer Intern",
	"UX Designer Intern",
}

// EmployeeInput carries the admin form fields for creating an employee.
// Password is the temporary credential handed to the new hire; it is hashed
// before it reaches storage and never echoed back.
type EmployeeInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Project  string `json:"project"`
	Role     string `json:"role"`
}

// Validate checks the input before any storage call is attempted.
func (in EmployeeInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return NewError(ErrCodeInvalid, "name is required")
	case strings.TrimSpace(in.Email) == "":
		return NewError(ErrCodeInvalid, "email is required")
	case !strings.Contains(in.Email, "@"):
		return NewError(ErrCodeInvalid, "email must contain @")
	case strings.TrimSpace(in.Password) == "":
		return NewError(ErrCodeInvalid, "temporary password is required")
	case !ValidProject(in.Project):
		return NewError(ErrCodeInvalid, "unknown project")
	case !ValidRole(in.Role):
		return NewError(ErrCodeInvalid, "unknown role")
	}
	return nil
}

// ValidProject reports whether the value is one of the known projects.
func ValidProject(project string) bool {
	return contains(Projects, project)
}

// ValidRole reports whether the value is one of the known roles.
func ValidRole(role string) bool {
	return contains(Roles, role)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
