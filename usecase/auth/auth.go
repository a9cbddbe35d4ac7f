package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/repository"
)

// Config carries the credential-gate settings. The demo credentials mirror
// the ones printed on the login card.
type Config struct {
	JWTSecret    string
	JWTIssuer    string
	SessionTTL   time.Duration
	DemoEmail    string
	DemoPassword string
}

// PortalStateCleaner drops any per-session view state when a session ends.
type PortalStateCleaner interface {
	Drop(sessionID string)
}

// Result is a successful login: the bound user record plus a bearer token.
type Result struct {
	Session  *domain.Session
	Employee *domain.Employee
	Token    string
}

type UseCase struct {
	employees repository.EmployeeRepository
	sessions  repository.SessionRepository
	portal    PortalStateCleaner
	cfg       Config
	logger    *zap.Logger
}

func New(employees repository.EmployeeRepository, sessions repository.SessionRepository, portal PortalStateCleaner, cfg Config, logger *zap.Logger) *UseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		employees: employees,
		sessions:  sessions,
		portal:    portal,
		cfg:       cfg,
		logger:    logger,
	}
}

// Login authenticates an employee. Field checks run before the credential
// store is consulted; a rejected credential always reads the same to avoid
// leaking which half was wrong.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*Result, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "Please fill in all fields")
	}
	if !strings.Contains(email, "@") {
		return nil, domain.NewError(domain.ErrCodeInvalid, "Please enter a valid email")
	}

	employee, err := uc.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Role:      domain.RoleEmployee,
		Email:     employee.Email,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(uc.cfg.SessionTTL),
	}
	if employee.ID != "" {
		session.EmployeeID = employee.ID
	}

	return uc.openSession(ctx, session, employee)
}

// AdminAccess opens an admin session without a credential check. This is the
// documented demo behavior of the HR dashboard entry point.
func (uc *UseCase) AdminAccess(ctx context.Context) (*Result, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		Role:      domain.RoleAdmin,
		Email:     "hr@raspberry-coffee.com",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(uc.cfg.SessionTTL),
	}
	return uc.openSession(ctx, session, nil)
}

// Logout revokes the session and drops its portal state. Always succeeds for
// the caller; a missing session is already logged out.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	if uc.portal != nil {
		uc.portal.Drop(sessionID)
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	return nil
}

// Session resolves and validates a live session by id.
func (uc *UseCase) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (uc *UseCase) verifyCredentials(ctx context.Context, email, password string) (*domain.Employee, error) {
	if email == uc.cfg.DemoEmail {
		if password != uc.cfg.DemoPassword {
			return nil, domain.ErrInvalidCredentials
		}
		return uc.demoProfile(ctx), nil
	}

	employee, err := uc.employees.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return employee, nil
}

// demoProfile binds the demo login to a stored record when one exists, and
// falls back to a built-in profile otherwise.
func (uc *UseCase) demoProfile(ctx context.Context) *domain.Employee {
	if employee, err := uc.employees.GetByEmail(ctx, uc.cfg.DemoEmail); err == nil {
		return employee
	}
	return &domain.Employee{
		Name:    "John Doe",
		Email:   uc.cfg.DemoEmail,
		Project: "Project Nova",
		Role:    "Frontend Engineer Intern",
	}
}

func (uc *UseCase) openSession(ctx context.Context, session *domain.Session, employee *domain.Employee) (*Result, error) {
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "session store unavailable", err)
	}

	token, err := uc.signToken(session)
	if err != nil {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to sign session token", err)
	}

	uc.logger.Info("session opened",
		zap.String("session_id", session.ID),
		zap.String("role", string(session.Role)),
	)

	return &Result{Session: session, Employee: employee, Token: token}, nil
}

func (uc *UseCase) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id": session.ID,
		"role":       string(session.Role),
		"iss":        uc.cfg.JWTIssuer,
		"exp":        session.ExpiresAt.Unix(),
		"iat":        session.CreatedAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.cfg.JWTSecret))
}
