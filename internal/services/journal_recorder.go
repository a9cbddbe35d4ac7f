package services

import (
	"context"
	"encoding/json"

	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/internal/infrastructure/journal"
	"github.com/raspberrycoffee/onboarding-backend/usecase"
)

// JournalRecorder adapts the bolt journal store to the use-case port.
type JournalRecorder struct {
	store *journal.Store
}

func NewJournalRecorder(store *journal.Store) *JournalRecorder {
	return &JournalRecorder{store: store}
}

func (r *JournalRecorder) RecordEmployeeCreated(ctx context.Context, employee *domain.Employee) error {
	if r.store == nil || employee == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(employee)
	if err != nil {
		return err
	}
	return r.store.Append(journal.Entry{
		Action:     journal.ActionEmployeeCreated,
		EmployeeID: employee.ID,
		Data:       payload,
	})
}

func (r *JournalRecorder) RecordEmployeeDeleted(ctx context.Context, id string) error {
	if r.store == nil || id == "" {
		return domain.ErrInvalidPayload
	}
	return r.store.Append(journal.Entry{
		Action:     journal.ActionEmployeeDeleted,
		EmployeeID: id,
	})
}

var _ usecase.ActivityJournal = (*JournalRecorder)(nil)
