package repository

import (
	"context"

	"github.com/raspberrycoffee/onboarding-backend/domain"
)

// EmployeeRepository is the port to the external employee store. The store
// assigns ids and creation timestamps; callers never supply them.
type EmployeeRepository interface {
	Create(ctx context.Context, input domain.EmployeeInput, passwordHash string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
