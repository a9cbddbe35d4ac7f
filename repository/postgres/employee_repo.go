package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/repository"
)

// Queryer is the slice of pgxpool.Pool this package needs. Kept narrow so
// tests can substitute a pgxmock pool.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type employeeRepository struct {
	pool Queryer
}

// NewEmployeeRepository returns a Postgres-backed implementation of EmployeeRepository.
func NewEmployeeRepository(pool Queryer) repository.EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, input domain.EmployeeInput, passwordHash string) (*domain.Employee, error) {
	const query = `
	INSERT INTO employees (name, email, project, role, password_hash)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at
	`

	employee := &domain.Employee{
		Name:    input.Name,
		Email:   input.Email,
		Project: input.Project,
		Role:    input.Role,
	}

	if err := r.pool.QueryRow(ctx, query,
		input.Name,
		input.Email,
		input.Project,
		input.Role,
		passwordHash,
	).Scan(&employee.ID, &employee.CreatedAt); err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "employee store unavailable", err)
	}

	return employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
	SELECT id, name, email, project, role, created_at
	FROM employees
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "employee store unavailable", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.Project,
			&employee.Role,
			&employee.CreatedAt,
		); err != nil {
			return nil, domain.WrapError(domain.ErrCodeUnavailable, "employee store unavailable", err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "employee store unavailable", err)
	}
	return employees, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `
	SELECT id, name, email, project, role, created_at
	FROM employees
	WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	const query = `
	SELECT id, name, email, project, role, password_hash, created_at
	FROM employees
	WHERE email = $1
	`
	var employee domain.Employee
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Project,
		&employee.Role,
		&employee.PasswordHash,
		&employee.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "employee store unavailable", err)
	}
	return &employee, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM employees WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "employee store unavailable", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) scanOne(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Employee, error) {
	var employee domain.Employee
	if err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Project,
		&employee.Role,
		&employee.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "employee store unavailable", err)
	}
	return &employee, nil
}
