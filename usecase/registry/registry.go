package registry

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/repository"
	"github.com/raspberrycoffee/onboarding-backend/usecase"
)

// UseCase owns the employee record lifecycle: create, list, delete. Every
// mutation returns the fresh canonical list so callers never render a stale
// roster.
type UseCase struct {
	employees repository.EmployeeRepository
	journal   usecase.ActivityJournal
	logger    *zap.Logger
}

func New(employees repository.EmployeeRepository, journal usecase.ActivityJournal, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		employees: employees,
		journal:   journal,
		logger:    logger,
	}
}

// Create validates the admin input, hashes the temporary password and inserts
// the record. Validation failures are reported before any store call.
func (uc *UseCase) Create(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, []domain.Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, domain.WrapError(domain.ErrCodeInternal, "failed to hash password", err)
	}

	created, err := uc.employees.Create(ctx, input, string(hash))
	if err != nil {
		return nil, nil, err
	}

	if uc.journal != nil {
		if err := uc.journal.RecordEmployeeCreated(ctx, created); err != nil {
			uc.logger.Warn("failed to journal employee creation", zap.Error(err))
		}
	}

	employees, err := uc.employees.List(ctx)
	if err != nil {
		// the record exists; a failed refresh should not fail the create
		uc.logger.Error("post-create list refresh failed", zap.Error(err))
		employees = []domain.Employee{*created}
	}
	return created, employees, nil
}

// List returns all employees ordered by creation time descending. An empty
// roster is an empty slice, not an error.
func (uc *UseCase) List(ctx context.Context) ([]domain.Employee, error) {
	return uc.employees.List(ctx)
}

// Delete removes the record and returns the fresh list. Deleting an unknown
// or already-deleted id reports ErrEmployeeNotFound.
func (uc *UseCase) Delete(ctx context.Context, id string) ([]domain.Employee, error) {
	if id == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "employee id is required")
	}

	if err := uc.employees.Delete(ctx, id); err != nil {
		return nil, err
	}

	if uc.journal != nil {
		if err := uc.journal.RecordEmployeeDeleted(ctx, id); err != nil {
			uc.logger.Warn("failed to journal employee deletion", zap.Error(err))
		}
	}

	return uc.employees.List(ctx)
}
