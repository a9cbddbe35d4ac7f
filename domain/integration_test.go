package domain

import (
	"reflect"
	"testing"
)

func TestIntegrationStatus_ActionsPerStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status IntegrationState
		want   []string
	}{
		{IntegrationConnected, []string{ActionView, ActionDisconnect}},
		{IntegrationPending, []string{ActionCompleteSetup, ActionCancel}},
		{IntegrationFailed, nil},
	}

	for _, tc := range tests {
		got := IntegrationStatus{Name: "Slack", Status: tc.status}.Actions()
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("status %s: got actions %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestNewIntegrationSet_SeedData(t *testing.T) {
	t.Parallel()

	set := NewIntegrationSet()
	if len(set.Items) != 2 {
		t.Fatalf("expected 2 seeded integrations, got %d", len(set.Items))
	}
	if set.Items[0].Name != "Slack" || set.Items[1].Name != "GitHub" {
		t.Fatalf("unexpected seed order: %s, %s", set.Items[0].Name, set.Items[1].Name)
	}
	for _, item := range set.Items {
		if item.Status != IntegrationConnected {
			t.Fatalf("%s should seed as connected", item.Name)
		}
		if len(item.Details) == 0 {
			t.Fatalf("%s should carry detail lines", item.Name)
		}
	}
}

func TestIntegrationSet_DisconnectRemovesService(t *testing.T) {
	t.Parallel()

	set := NewIntegrationSet()
	if err := set.Apply("Slack", ActionDisconnect); err != nil {
		t.Fatalf("disconnect: %v", err)
	}

	if len(set.Items) != 1 {
		t.Fatalf("expected 1 integration after disconnect, got %d", len(set.Items))
	}
	if set.Items[0].Name != "GitHub" {
		t.Fatalf("wrong integration removed, %s remains", set.Items[0].Name)
	}
}

func TestIntegrationSet_CompleteSetupPromotesPending(t *testing.T) {
	t.Parallel()

	set := &IntegrationSet{Items: []IntegrationStatus{
		{Name: "Jira", Status: IntegrationPending},
	}}

	if err := set.Apply("Jira", ActionCompleteSetup); err != nil {
		t.Fatalf("complete_setup: %v", err)
	}
	if set.Items[0].Status != IntegrationConnected {
		t.Fatalf("expected connected, got %s", set.Items[0].Status)
	}
}

func TestIntegrationSet_ApplyRejectsMismatchedAction(t *testing.T) {
	t.Parallel()

	set := NewIntegrationSet()

	// cancel is a pending-only action; seeds are connected
	err := set.Apply("Slack", ActionCancel)
	if !IsDomainError(err, ErrCodeInvalid) {
		t.Fatalf("expected invalid action error, got %v", err)
	}

	err = set.Apply("Notion", ActionView)
	if !IsDomainError(err, ErrCodeNotFound) {
		t.Fatalf("expected not-found for unknown integration, got %v", err)
	}
}

func TestIntegrationSet_SummaryRecomputes(t *testing.T) {
	t.Parallel()

	set := NewIntegrationSet()
	if got := set.Summary(); got.Connected != 2 || got.Total != 2 {
		t.Fatalf("seed summary = %+v, want 2 of 2", got)
	}

	if err := set.Apply("GitHub", ActionDisconnect); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	if got := set.Summary(); got.Connected != 1 || got.Total != 1 {
		t.Fatalf("summary after disconnect = %+v, want 1 of 1", got)
	}
}
