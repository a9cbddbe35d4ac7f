package transport

import (
	"time"

	"github.com/raspberrycoffee/onboarding-backend/domain"
)

// EmployeeView is the roster row shown to the admin. AddedAt is the locale
// date string derived from the stored creation timestamp; the timestamp
// itself is never stored pre-formatted.
type EmployeeView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Project string `json:"project"`
	Role    string `json:"role"`
	AddedAt string `json:"addedAt"`
}

// ProfileView is the employee-facing profile card.
type ProfileView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Project    string `json:"project"`
	Role       string `json:"role"`
	JoinedDate string `json:"joinedDate"`
}

// FormatAddedAt renders a creation timestamp the way the dashboard shows it
// (M/D/YYYY). A missing timestamp falls back to the current date.
func FormatAddedAt(createdAt time.Time) string {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return createdAt.Format("1/2/2006")
}

// NewEmployeeView maps a domain employee onto its roster row.
func NewEmployeeView(employee domain.Employee) EmployeeView {
	return EmployeeView{
		ID:      employee.ID,
		Name:    employee.Name,
		Email:   employee.Email,
		Project: employee.Project,
		Role:    employee.Role,
		AddedAt: FormatAddedAt(employee.CreatedAt),
	}
}

// NewEmployeeViews maps a roster, preserving order.
func NewEmployeeViews(employees []domain.Employee) []EmployeeView {
	views := make([]EmployeeView, 0, len(employees))
	for _, employee := range employees {
		views = append(views, NewEmployeeView(employee))
	}
	return views
}

// NewProfileView maps a domain employee onto the portal profile card.
func NewProfileView(employee *domain.Employee) ProfileView {
	return ProfileView{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		Project:    employee.Project,
		Role:       employee.Role,
		JoinedDate: FormatAddedAt(employee.CreatedAt),
	}
}
