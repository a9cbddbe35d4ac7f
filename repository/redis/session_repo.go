package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/repository"
)

const sessionKeyPrefix = "onboarding:session:"

// sessionRecord is the wire form stored in Redis. Kept separate from the
// domain type so key renames there never invalidate live sessions.
type sessionRecord struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	EmployeeID string    `json:"emp,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"iat"`
	ExpiresAt  time.Time `json:"exp"`
}

type sessionRepository struct {
	client     *redislib.Client
	defaultTTL time.Duration
}

// NewSessionRepository creates a Redis-backed session repository. Keys expire
// with the session, so revocation on expiry needs no sweeper.
func NewSessionRepository(client *redislib.Client, defaultTTL time.Duration) repository.SessionRepository {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &sessionRepository{client: client, defaultTTL: defaultTTL}
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redislib.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "session store unavailable", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "corrupt session record", err)
	}
	return &domain.Session{
		ID:         record.ID,
		Role:       domain.SessionRole(record.Role),
		EmployeeID: record.EmployeeID,
		Email:      record.Email,
		CreatedAt:  record.CreatedAt,
		ExpiresAt:  record.ExpiresAt,
	}, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return domain.ErrInvalidPayload
	}

	record := sessionRecord{
		ID:         session.ID,
		Role:       string(session.Role),
		EmployeeID: session.EmployeeID,
		Email:      session.Email,
		CreatedAt:  session.CreatedAt,
		ExpiresAt:  session.ExpiresAt,
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = r.defaultTTL
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl).Err(); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "session store unavailable", err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	removed, err := r.client.Del(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "session store unavailable", err)
	}
	if removed == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
