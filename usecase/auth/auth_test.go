package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/raspberrycoffee/onboarding-backend/domain"
)

type fakeEmployeeRepo struct {
	byEmail map[string]*domain.Employee
}

func (r *fakeEmployeeRepo) Create(context.Context, domain.EmployeeInput, string) (*domain.Employee, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeEmployeeRepo) List(context.Context) ([]domain.Employee, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	for _, employee := range r.byEmail {
		if employee.ID == id {
			return employee, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	if employee, ok := r.byEmail[email]; ok {
		return employee, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Delete(context.Context, string) error {
	return errors.New("not implemented")
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, session *domain.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

type fakeCleaner struct {
	dropped []string
}

func (c *fakeCleaner) Drop(sessionID string) {
	c.dropped = append(c.dropped, sessionID)
}

func testConfig() Config {
	return Config{
		JWTSecret:    "test-secret",
		JWTIssuer:    "onboarding-backend",
		SessionTTL:   time.Hour,
		DemoEmail:    "john@company.com",
		DemoPassword: "12345",
	}
}

func newTestUseCase(employees *fakeEmployeeRepo, sessions *fakeSessionRepo, portal PortalStateCleaner) *UseCase {
	if employees == nil {
		employees = &fakeEmployeeRepo{byEmail: map[string]*domain.Employee{}}
	}
	if sessions == nil {
		sessions = newFakeSessionRepo()
	}
	return New(employees, sessions, portal, testConfig(), nil)
}

func TestLogin_DemoCredentials(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionRepo()
	uc := newTestUseCase(nil, sessions, nil)

	result, err := uc.Login(context.Background(), "john@company.com", "12345")
	if err != nil {
		t.Fatalf("demo login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a signed token")
	}
	if result.Employee.Name != "John Doe" || result.Employee.Project != "Project Nova" {
		t.Fatalf("expected the built-in demo profile, got %+v", result.Employee)
	}
	if result.Session.Role != domain.RoleEmployee {
		t.Fatalf("demo login must open an employee session, got %s", result.Session.Role)
	}
	if _, ok := sessions.sessions[result.Session.ID]; !ok {
		t.Fatal("session was not persisted")
	}
}

func TestLogin_DemoBindsStoredRecord(t *testing.T) {
	t.Parallel()

	stored := &domain.Employee{
		ID:      "emp-1",
		Name:    "John Doe",
		Email:   "john@company.com",
		Project: "Customer 360",
		Role:    "Frontend Engineer Intern",
	}
	employees := &fakeEmployeeRepo{byEmail: map[string]*domain.Employee{stored.Email: stored}}
	uc := newTestUseCase(employees, nil, nil)

	result, err := uc.Login(context.Background(), "john@company.com", "12345")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Employee.ID != "emp-1" || result.Session.EmployeeID != "emp-1" {
		t.Fatal("demo login should bind to the stored record when one exists")
	}
}

func TestLogin_WrongDemoPassword(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Login(context.Background(), "john@company.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid-credentials, got %v", err)
	}
}

func TestLogin_FieldChecks(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(nil, nil, nil)

	tests := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{"empty email", "", "12345", "Please fill in all fields"},
		{"empty password", "john@company.com", "", "Please fill in all fields"},
		{"blank fields", "   ", "   ", "Please fill in all fields"},
		{"missing @", "johncompany.com", "12345", "Please enter a valid email"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), tc.email, tc.password)
			if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			var dErr *domain.Error
			errors.As(err, &dErr)
			if dErr.Message != tc.message {
				t.Fatalf("message = %q, want %q", dErr.Message, tc.message)
			}
		})
	}
}

func TestLogin_StoredEmployeeWithBcrypt(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	stored := &domain.Employee{
		ID:           "emp-2",
		Name:         "Jane Roe",
		Email:        "jane@company.com",
		Project:      "The Aurora Design System",
		Role:         "Design System Intern",
		PasswordHash: string(hash),
	}
	employees := &fakeEmployeeRepo{byEmail: map[string]*domain.Employee{stored.Email: stored}}
	uc := newTestUseCase(employees, nil, nil)

	result, err := uc.Login(context.Background(), "jane@company.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Session.EmployeeID != "emp-2" {
		t.Fatalf("session not bound to the record: %+v", result.Session)
	}

	if _, err := uc.Login(context.Background(), "jane@company.com", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password should read as invalid credentials, got %v", err)
	}
}

func TestLogin_UnknownEmailReadsLikeWrongPassword(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Login(context.Background(), "ghost@company.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email must not be distinguishable, got %v", err)
	}
}

func TestAdminAccess(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionRepo()
	uc := newTestUseCase(nil, sessions, nil)

	result, err := uc.AdminAccess(context.Background())
	if err != nil {
		t.Fatalf("admin access: %v", err)
	}
	if result.Session.Role != domain.RoleAdmin {
		t.Fatalf("expected an admin session, got %s", result.Session.Role)
	}
	if result.Employee != nil {
		t.Fatal("admin sessions carry no employee record")
	}

	token, err := jwt.Parse(result.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["role"] != string(domain.RoleAdmin) {
		t.Fatalf("token role claim = %v", claims["role"])
	}
	if claims["session_id"] != result.Session.ID {
		t.Fatalf("token session claim = %v", claims["session_id"])
	}
}

func TestLogout_DropsPortalStateAndSession(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionRepo()
	cleaner := &fakeCleaner{}
	uc := newTestUseCase(nil, sessions, cleaner)

	result, err := uc.AdminAccess(context.Background())
	if err != nil {
		t.Fatalf("admin access: %v", err)
	}

	if err := uc.Logout(context.Background(), result.Session.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(cleaner.dropped) != 1 || cleaner.dropped[0] != result.Session.ID {
		t.Fatalf("portal state not dropped: %v", cleaner.dropped)
	}
	if _, ok := sessions.sessions[result.Session.ID]; ok {
		t.Fatal("session still present after logout")
	}

	// a second logout is already logged out, not an error
	if err := uc.Logout(context.Background(), result.Session.ID); err != nil {
		t.Fatalf("repeated logout should succeed: %v", err)
	}
}

func TestSession_ExpiredIsRevoked(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessionRepo()
	uc := newTestUseCase(nil, sessions, nil)

	sessions.sessions["stale"] = &domain.Session{
		ID:        "stale",
		Role:      domain.RoleEmployee,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	if _, err := uc.Session(context.Background(), "stale"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expired session should resolve as not-found, got %v", err)
	}
	if _, ok := sessions.sessions["stale"]; ok {
		t.Fatal("expired session should be deleted on resolution")
	}
}
