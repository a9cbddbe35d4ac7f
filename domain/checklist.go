package domain

// ChecklistItem is one onboarding task shown to a signed-in employee. Items
// live in session memory only and reset on the next login.
type ChecklistItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Checklist holds the per-session task list in template order.
type Checklist struct {
	Items []ChecklistItem `json:"items"`
}

var checklistTemplate = []ChecklistItem{
	{ID: "welcome-meeting", Title: "Welcome Meeting with HR", Description: "Attend your Day 1 welcome meeting with the HR team"},
	{ID: "it-setup", Title: "IT Setup", Description: "Pick up your laptop, monitor and equipment from IT"},
	{ID: "office-tour", Title: "Office Tour", Description: "Take the office tour and collect your ID badge and parking pass"},
	{ID: "meet-team", Title: "Meet Your Team", Description: "Get introduced to your teammates and your onboarding buddy"},
	{ID: "training-modules", Title: "Complete Training Modules", Description: "Finish the required training modules during your first week"},
	{ID: "project-assignment", Title: "Project Assignment", Description: "Receive your project assignment and initial tasks in week two"},
}

// NewChecklist returns a fresh copy of the fixed template, everything pending.
func NewChecklist() *Checklist {
	items := make([]ChecklistItem, len(checklistTemplate))
	copy(items, checklistTemplate)
	return &Checklist{Items: items}
}

// Toggle flips the completed flag of the item with the given id. An unknown
// id is a silent no-op: the checklist is cosmetic and should never surface a
// lookup error to the viewer.
func (c *Checklist) Toggle(id string) {
	if c == nil {
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Completed = !c.Items[i].Completed
			return
		}
	}
}

// Completed counts the items already checked off.
func (c *Checklist) Completed() int {
	if c == nil {
		return 0
	}
	var n int
	for _, item := range c.Items {
		if item.Completed {
			n++
		}
	}
	return n
}
