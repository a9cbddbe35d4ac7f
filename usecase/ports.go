package usecase

import (
	"context"

	"github.com/raspberrycoffee/onboarding-backend/domain"
)

// CompletionClient abstracts the text-generation collaborator. Implementations
// send one prompt and return the completion verbatim; no retries.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ActivityJournal records admin actions for the local audit trail. Recording
// is best-effort: use cases log failures but never surface them.
type ActivityJournal interface {
	RecordEmployeeCreated(ctx context.Context, employee *domain.Employee) error
	RecordEmployeeDeleted(ctx context.Context, id string) error
}
