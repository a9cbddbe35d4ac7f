package domain

// IntegrationState is the simulated connection state of one external tool.
type IntegrationState string

const (
	IntegrationConnected IntegrationState = "connected"
	IntegrationPending   IntegrationState = "pending"
	IntegrationFailed    IntegrationState = "failed"
)

// Integration actions exposed to the viewer, depending on status.
const (
	ActionView          = "view"
	ActionDisconnect    = "disconnect"
	ActionCompleteSetup = "complete_setup"
	ActionCancel        = "cancel"
)

// IntegrationStatus represents one simulated service connection for the
// signed-in employee. Nothing here reaches a real Slack or GitHub API; the
// details are fixed display data recreated per session.
type IntegrationStatus struct {
	Name    string           `json:"name"`
	Status  IntegrationState `json:"status"`
	Details []string         `json:"details"`
}

// Actions lists the operations the viewer may trigger for the current status.
// A failed integration exposes none.
func (s IntegrationStatus) Actions() []string {
	switch s.Status {
	case IntegrationConnected:
		return []string{ActionView, ActionDisconnect}
	case IntegrationPending:
		return []string{ActionCompleteSetup, ActionCancel}
	default:
		return nil
	}
}

// IntegrationSet holds the per-session integration list.
type IntegrationSet struct {
	Items []IntegrationStatus `json:"items"`
}

// IntegrationSummary is recomputed on every call, never cached.
type IntegrationSummary struct {
	Connected int `json:"connected"`
	Total     int `json:"total"`
}

var integrationSeed = []IntegrationStatus{
	{
		Name:   "Slack",
		Status: IntegrationConnected,
		Details: []string{
			"✓ Added to #frontend channel",
			"✓ Added to #general channel",
			"✓ Added to #random channel",
			"✓ Display name configured",
		},
	},
	{
		Name:   "GitHub",
		Status: IntegrationConnected,
		Details: []string{
			"✓ Access granted to frontend-app repository",
			"✓ Added to Frontend team",
			"✓ SSH key configured",
			"✓ Invite accepted",
		},
	},
}

// NewIntegrationSet returns a fresh copy of the seed data.
func NewIntegrationSet() *IntegrationSet {
	items := make([]IntegrationStatus, len(integrationSeed))
	copy(items, integrationSeed)
	return &IntegrationSet{Items: items}
}

// Apply performs a viewer-triggered action on the named integration. The
// mutation is local session state only. Unknown names report not-found;
// actions not offered for the current status are rejected as invalid.
func (set *IntegrationSet) Apply(name, action string) error {
	if set == nil {
		return ErrInvalidPayload
	}
	for i := range set.Items {
		if set.Items[i].Name != name {
			continue
		}
		if !validAction(set.Items[i], action) {
			return NewError(ErrCodeInvalid, "action not available for this integration")
		}
		switch action {
		case ActionView:
			// read-only, nothing to mutate
		case ActionDisconnect, ActionCancel:
			set.Items = append(set.Items[:i], set.Items[i+1:]...)
		case ActionCompleteSetup:
			set.Items[i].Status = IntegrationConnected
		}
		return nil
	}
	return NewError(ErrCodeNotFound, "integration not found")
}

// Summary recounts connected services against the total.
func (set *IntegrationSet) Summary() IntegrationSummary {
	if set == nil {
		return IntegrationSummary{}
	}
	summary := IntegrationSummary{Total: len(set.Items)}
	for _, item := range set.Items {
		if item.Status == IntegrationConnected {
			summary.Connected++
		}
	}
	return summary
}

func validAction(status IntegrationStatus, action string) bool {
	for _, allowed := range status.Actions() {
		if allowed == action {
			return true
		}
	}
	return false
}
