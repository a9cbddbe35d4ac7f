package domain

import "testing"

func TestNewChecklist_StartsPending(t *testing.T) {
	t.Parallel()

	checklist := NewChecklist()
	if len(checklist.Items) == 0 {
		t.Fatal("expected template items")
	}
	for _, item := range checklist.Items {
		if item.Completed {
			t.Fatalf("item %q should start pending", item.ID)
		}
		if item.Title == "" || item.Description == "" {
			t.Fatalf("item %q missing display text", item.ID)
		}
	}
	if checklist.Completed() != 0 {
		t.Fatalf("expected 0 completed, got %d", checklist.Completed())
	}
}

func TestChecklist_ToggleIsSelfInverse(t *testing.T) {
	t.Parallel()

	checklist := NewChecklist()
	id := checklist.Items[0].ID

	checklist.Toggle(id)
	if !checklist.Items[0].Completed {
		t.Fatal("first toggle should complete the item")
	}

	checklist.Toggle(id)
	if checklist.Items[0].Completed {
		t.Fatal("second toggle should return the item to pending")
	}
}

func TestChecklist_ToggleUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	checklist := NewChecklist()
	before := make([]ChecklistItem, len(checklist.Items))
	copy(before, checklist.Items)

	checklist.Toggle("does-not-exist")

	for i, item := range checklist.Items {
		if item != before[i] {
			t.Fatalf("item %q changed on unknown toggle", item.ID)
		}
	}
}

func TestNewChecklist_InstancesAreIndependent(t *testing.T) {
	t.Parallel()

	a := NewChecklist()
	b := NewChecklist()

	a.Toggle(a.Items[0].ID)

	if b.Items[0].Completed {
		t.Fatal("toggling one checklist must not leak into another")
	}
}
