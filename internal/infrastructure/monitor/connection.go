package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/raspberrycoffee/onboarding-backend/internal/infrastructure/journal"
)

const checkTimeout = 3 * time.Second

// Monitor probes the stores behind the service on a fixed interval and keeps
// the latest snapshot for the health endpoint. The service counts as online
// when both Postgres and Redis answer; the journal is local and degrades the
// audit trail only.
type Monitor struct {
	pg       *pgxpool.Pool
	redis    *redislib.Client
	journal  *journal.Store
	interval time.Duration
	logger   *zap.Logger

	mu     sync.RWMutex
	status Status

	stopOnce sync.Once
	stopCh   chan struct{}
}

func New(pg *pgxpool.Pool, redis *redislib.Client, jrnl *journal.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		pg:       pg,
		redis:    redis,
		journal:  jrnl,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

// Start probes once immediately, then on every tick until Stop.
func (m *Monitor) Start() {
	m.refresh()
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.refresh()
			case <-m.stopCh:
				return
			}
		}
	}()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.PostgreSQL && m.status.Redis
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	next := Status{
		PostgreSQL: m.pg != nil && m.pg.Ping(ctx) == nil,
		Redis:      m.redis != nil && m.redis.Ping(ctx).Err() == nil,
		LastCheck:  time.Now(),
	}
	if m.journal != nil {
		size, err := m.journal.Size()
		next.Journal = err == nil
		next.JournalSize = size
		if err != nil {
			m.logger.Warn("journal size check failed", zap.Error(err))
		}
	}

	m.mu.Lock()
	prev := m.status
	m.status = next
	m.mu.Unlock()

	m.logTransition("postgresql", prev.PostgreSQL, next.PostgreSQL)
	m.logTransition("redis", prev.Redis, next.Redis)
}

// logTransition reports edge changes only, so a flapping store is visible
// without a log line per tick.
func (m *Monitor) logTransition(store string, was, is bool) {
	switch {
	case was && !is:
		m.logger.Warn("store went offline", zap.String("store", store))
	case !was && is:
		m.logger.Info("store online", zap.String("store", store))
	}
}
