package journal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ActionEmployeeCreated = "employee_created"
	ActionEmployeeDeleted = "employee_deleted"
)

// Entry is one recorded admin action. Entries are append-only and pruned by
// the retention sweeper.
type Entry struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	EmployeeID string          `json:"employee_id"`
	Data       json.RawMessage `json:"data,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (e *Entry) normalize() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
}
