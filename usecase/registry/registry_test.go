package registry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/raspberrycoffee/onboarding-backend/domain"
)

type fakeEmployeeRepo struct {
	employees map[string]*domain.Employee
	hashes    map[string]string
	sequence  int
	now       time.Time
	failList  error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]*domain.Employee),
		hashes:    make(map[string]string),
		now:       time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, input domain.EmployeeInput, passwordHash string) (*domain.Employee, error) {
	r.sequence++
	r.now = r.now.Add(time.Minute)
	employee := &domain.Employee{
		ID:        fmt.Sprintf("emp-%d", r.sequence),
		Name:      input.Name,
		Email:     input.Email,
		Project:   input.Project,
		Role:      input.Role,
		CreatedAt: r.now,
	}
	r.employees[employee.ID] = employee
	r.hashes[employee.ID] = passwordHash
	return employee, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	if r.failList != nil {
		return nil, r.failList
	}
	out := make([]domain.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		out = append(out, *employee)
	}
	// created_at descending, matching the store contract
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return employee, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, employee := range r.employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

type recordingJournal struct {
	created []string
	deleted []string
	fail    error
}

func (j *recordingJournal) RecordEmployeeCreated(_ context.Context, employee *domain.Employee) error {
	if j.fail != nil {
		return j.fail
	}
	j.created = append(j.created, employee.ID)
	return nil
}

func (j *recordingJournal) RecordEmployeeDeleted(_ context.Context, id string) error {
	if j.fail != nil {
		return j.fail
	}
	j.deleted = append(j.deleted, id)
	return nil
}

func input(name, email string) domain.EmployeeInput {
	return domain.EmployeeInput{
		Name:     name,
		Email:    email,
		Password: "temp-pass",
		Project:  "Project Nova",
		Role:     "UX Designer Intern",
	}
}

func TestCreate_ThenListContainsEmployee(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	journal := &recordingJournal{}
	uc := New(repo, journal, nil)

	created, fresh, err := uc.Create(context.Background(), input("Jane", "jane@company.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a server-assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected a server-assigned creation timestamp")
	}
	if len(fresh) != 1 || fresh[0].ID != created.ID {
		t.Fatalf("fresh list should contain exactly the created employee, got %+v", fresh)
	}

	listed, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(listed))
	}
	if listed[0].Email != "jane@company.com" || listed[0].Name != "Jane" {
		t.Fatalf("listed entry does not match input: %+v", listed[0])
	}
	if len(journal.created) != 1 || journal.created[0] != created.ID {
		t.Fatalf("journal should record the creation, got %v", journal.created)
	}
}

func TestCreate_AssignsUnseenIDs(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	uc := New(repo, nil, nil)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		created, _, err := uc.Create(context.Background(), input(fmt.Sprintf("E%d", i), fmt.Sprintf("e%d@company.com", i)))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[created.ID] {
			t.Fatalf("id %q reused", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestCreate_HashesPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	uc := New(repo, nil, nil)

	created, _, err := uc.Create(context.Background(), input("Jane", "jane@company.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	hash := repo.hashes[created.ID]
	if hash == "" || hash == "temp-pass" {
		t.Fatal("password must reach the store hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("temp-pass")) != nil {
		t.Fatal("stored hash does not verify against the input password")
	}
}

func TestCreate_ValidationRejections(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	uc := New(repo, nil, nil)

	tests := []struct {
		name string
		in   domain.EmployeeInput
	}{
		{"empty name", domain.EmployeeInput{Name: "", Email: "a@b.com", Project: "Project Nova", Role: "UX Designer Intern", Password: "x"}},
		{"missing @", domain.EmployeeInput{Name: "Jane", Email: "janeexample.com", Project: "Project Nova", Role: "UX Designer Intern", Password: "x"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Create(context.Background(), tc.in)
			if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if len(repo.employees) != 0 {
		t.Fatal("rejected input must never reach the store")
	}
}

func TestList_OrderedByCreationDescending(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	uc := New(repo, nil, nil)

	names := []string{"A", "B", "C"}
	for _, name := range names {
		if _, _, err := uc.Create(context.Background(), input(name, name+"@company.com")); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	listed, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"C", "B", "A"}
	if len(listed) != len(want) {
		t.Fatalf("expected %d employees, got %d", len(want), len(listed))
	}
	for i, name := range want {
		if listed[i].Name != name {
			t.Fatalf("position %d: got %s, want %s", i, listed[i].Name, name)
		}
	}
}

func TestDelete_RemovesAndSecondCallReportsNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	journal := &recordingJournal{}
	uc := New(repo, journal, nil)

	created, _, err := uc.Create(context.Background(), input("Jane", "jane@company.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fresh, err := uc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, employee := range fresh {
		if employee.ID == created.ID {
			t.Fatal("deleted employee still present in fresh list")
		}
	}
	if len(journal.deleted) != 1 || journal.deleted[0] != created.ID {
		t.Fatalf("journal should record the deletion, got %v", journal.deleted)
	}

	_, err = uc.Delete(context.Background(), created.ID)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("second delete should report not-found, got %v", err)
	}
}

func TestCreate_JournalFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	journal := &recordingJournal{fail: errors.New("disk full")}
	uc := New(repo, journal, nil)

	created, _, err := uc.Create(context.Background(), input("Jane", "jane@company.com"))
	if err != nil {
		t.Fatalf("create should succeed despite journal failure: %v", err)
	}
	if created == nil || created.ID == "" {
		t.Fatal("expected a created employee")
	}
}

func TestCreate_ListRefreshFailureFallsBack(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	uc := New(repo, nil, nil)

	repo.failList = domain.ErrStoreUnavailable
	created, fresh, err := uc.Create(context.Background(), input("Jane", "jane@company.com"))
	if err != nil {
		t.Fatalf("create should not fail when only the refresh fails: %v", err)
	}
	if len(fresh) != 1 || fresh[0].ID != created.ID {
		t.Fatalf("expected fallback list with the created record, got %+v", fresh)
	}
}
