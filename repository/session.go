package repository

import (
	"context"

	"github.com/raspberrycoffee/onboarding-backend/domain"
)

// SessionRepository stores login sessions keyed by session id. Get must
// report ErrSessionNotFound for unknown as well as expired-and-evicted ids.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}
