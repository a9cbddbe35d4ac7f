package transport

import (
	"testing"
	"time"

	"github.com/raspberrycoffee/onboarding-backend/domain"
)

func TestFormatAddedAt(t *testing.T) {
	t.Parallel()

	// single-digit month and day stay unpadded
	got := FormatAddedAt(time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC))
	if got != "6/2/2025" {
		t.Fatalf("FormatAddedAt = %q, want 6/2/2025", got)
	}

	got = FormatAddedAt(time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC))
	if got != "11/28/2025" {
		t.Fatalf("FormatAddedAt = %q, want 11/28/2025", got)
	}
}

func TestFormatAddedAt_ZeroFallsBackToToday(t *testing.T) {
	t.Parallel()

	want := time.Now().Format("1/2/2006")
	if got := FormatAddedAt(time.Time{}); got != want {
		t.Fatalf("zero timestamp should render today (%s), got %q", want, got)
	}
}

func TestNewEmployeeView(t *testing.T) {
	t.Parallel()

	view := NewEmployeeView(domain.Employee{
		ID:           "emp-1",
		Name:         "Jane Roe",
		Email:        "jane@company.com",
		Project:      "The Aurora Design System",
		Role:         "Design System Intern",
		PasswordHash: "never-shown",
		CreatedAt:    time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC),
	})

	want := EmployeeView{
		ID:      "emp-1",
		Name:    "Jane Roe",
		Email:   "jane@company.com",
		Project: "The Aurora Design System",
		Role:    "Design System Intern",
		AddedAt: "3/7/2025",
	}
	if view != want {
		t.Fatalf("view = %+v, want %+v", view, want)
	}
}

func TestNewEmployeeViews_PreservesOrder(t *testing.T) {
	t.Parallel()

	views := NewEmployeeViews([]domain.Employee{
		{ID: "emp-3", Name: "C"},
		{ID: "emp-2", Name: "B"},
		{ID: "emp-1", Name: "A"},
	})

	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
	for i, id := range []string{"emp-3", "emp-2", "emp-1"} {
		if views[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, views[i].ID, id)
		}
	}

	if empty := NewEmployeeViews(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("nil roster must map to an empty slice, got %v", empty)
	}
}
