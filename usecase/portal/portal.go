package portal

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/repository"
)

// sessionState is the in-memory onboarding view state for one login session.
// It is never persisted: the next login starts from the templates again.
type sessionState struct {
	checklist    *domain.Checklist
	integrations *domain.IntegrationSet
}

// StateStore keeps per-session state, created lazily on first access and
// dropped on logout. All reads and mutations run under the store lock.
type StateStore struct {
	mu     sync.Mutex
	states map[string]*sessionState
}

func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]*sessionState)}
}

func (s *StateStore) state(sessionID string) *sessionState {
	state, ok := s.states[sessionID]
	if !ok {
		state = &sessionState{
			checklist:    domain.NewChecklist(),
			integrations: domain.NewIntegrationSet(),
		}
		s.states[sessionID] = state
	}
	return state
}

// Checklist returns a snapshot of the session's checklist.
func (s *StateStore) Checklist(sessionID string) domain.Checklist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotChecklist(s.state(sessionID).checklist)
}

// ToggleChecklistItem flips one item and returns the updated checklist.
func (s *StateStore) ToggleChecklistItem(sessionID, itemID string) domain.Checklist {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state(sessionID)
	state.checklist.Toggle(itemID)
	return snapshotChecklist(state.checklist)
}

// Integrations returns a snapshot of the session's integrations and a freshly
// computed summary.
func (s *StateStore) Integrations(sessionID string) (domain.IntegrationSet, domain.IntegrationSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.state(sessionID).integrations
	return snapshotIntegrations(set), set.Summary()
}

// ApplyIntegrationAction mutates the session's integration state.
func (s *StateStore) ApplyIntegrationAction(sessionID, name, action string) (domain.IntegrationSet, domain.IntegrationSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.state(sessionID).integrations
	if err := set.Apply(name, action); err != nil {
		return domain.IntegrationSet{}, domain.IntegrationSummary{}, err
	}
	return snapshotIntegrations(set), set.Summary(), nil
}

// Drop discards the state for a session. Safe to call for unknown ids.
func (s *StateStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

func snapshotChecklist(c *domain.Checklist) domain.Checklist {
	items := make([]domain.ChecklistItem, len(c.Items))
	copy(items, c.Items)
	return domain.Checklist{Items: items}
}

func snapshotIntegrations(set *domain.IntegrationSet) domain.IntegrationSet {
	items := make([]domain.IntegrationStatus, len(set.Items))
	copy(items, set.Items)
	return domain.IntegrationSet{Items: items}
}

// UseCase serves the employee portal: profile, checklist and integrations.
type UseCase struct {
	employees repository.EmployeeRepository
	states    *StateStore
	logger    *zap.Logger
}

func New(employees repository.EmployeeRepository, states *StateStore, logger *zap.Logger) *UseCase {
	if states == nil {
		states = NewStateStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		employees: employees,
		states:    states,
		logger:    logger,
	}
}

// States exposes the store so the auth use case can drop state on logout.
func (uc *UseCase) States() *StateStore {
	return uc.states
}

// Profile returns the employee bound to the session. Sessions opened with the
// demo credentials may have no stored record; those get a synthetic profile
// built from the session itself.
func (uc *UseCase) Profile(ctx context.Context, session *domain.Session) (*domain.Employee, error) {
	if err := requireEmployee(session); err != nil {
		return nil, err
	}
	if session.EmployeeID == "" {
		return &domain.Employee{
			Name:    "John Doe",
			Email:   session.Email,
			Project: "Project Nova",
			Role:    "Frontend Engineer Intern",
		}, nil
	}
	return uc.employees.GetByID(ctx, session.EmployeeID)
}

// Checklist returns the session's checklist, seeding it on first access.
func (uc *UseCase) Checklist(session *domain.Session) (domain.Checklist, error) {
	if err := requireEmployee(session); err != nil {
		return domain.Checklist{}, err
	}
	return uc.states.Checklist(session.ID), nil
}

// ToggleChecklistItem flips one item and returns the updated checklist.
// Unknown ids are a silent no-op.
func (uc *UseCase) ToggleChecklistItem(session *domain.Session, itemID string) (domain.Checklist, error) {
	if err := requireEmployee(session); err != nil {
		return domain.Checklist{}, err
	}
	return uc.states.ToggleChecklistItem(session.ID, itemID), nil
}

// Integrations returns the session's integration list and summary.
func (uc *UseCase) Integrations(session *domain.Session) (domain.IntegrationSet, domain.IntegrationSummary, error) {
	if err := requireEmployee(session); err != nil {
		return domain.IntegrationSet{}, domain.IntegrationSummary{}, err
	}
	set, summary := uc.states.Integrations(session.ID)
	return set, summary, nil
}

// ApplyIntegrationAction runs a viewer-triggered action (view, disconnect,
// complete_setup, cancel) against the session's integration state.
func (uc *UseCase) ApplyIntegrationAction(session *domain.Session, name, action string) (domain.IntegrationSet, domain.IntegrationSummary, error) {
	if err := requireEmployee(session); err != nil {
		return domain.IntegrationSet{}, domain.IntegrationSummary{}, err
	}
	set, summary, err := uc.states.ApplyIntegrationAction(session.ID, name, action)
	if err != nil {
		return domain.IntegrationSet{}, domain.IntegrationSummary{}, err
	}
	uc.logger.Debug("integration action applied",
		zap.String("integration", name),
		zap.String("action", action),
	)
	return set, summary, nil
}

func requireEmployee(session *domain.Session) error {
	if session == nil || session.Role != domain.RoleEmployee {
		return domain.ErrForbidden
	}
	return nil
}
