package entity

import "unicode/utf8"

// TabID uniquely identifies a tab within a session.
// IDs start at 1 and are never reused, even after the tab is closed.
type TabID int

// DefaultTitleBudget is the number of runes a tab title may use before
// it gets truncated for display.
const DefaultTitleBudget = 30

const ellipsis = "..."

// Tab pairs an identifier with the last observed state of its content view.
// Whether a tab is active is owned by the TabRegistry, not the tab.
type Tab struct {
	ID    TabID
	URL   string // Last-known URL
	Title string // Last-known page title, untruncated
}

// NewTab creates a tab pointing at the given URL.
func NewTab(id TabID, url string) *Tab {
	return &Tab{
		ID:  id,
		URL: url,
	}
}

// DisplayTitle returns the title truncated to the given rune budget.
func (t *Tab) DisplayTitle(budget int) string {
	return TruncateTitle(t.Title, budget)
}

// TruncateTitle shortens title to at most budget runes, replacing the tail
// with an ellipsis. A budget too small to hold the ellipsis disables truncation.
func TruncateTitle(title string, budget int) string {
	if budget <= len(ellipsis) || utf8.RuneCountInString(title) <= budget {
		return title
	}
	runes := []rune(title)
	return string(runes[:budget-len(ellipsis)]) + ellipsis
}

// TabRegistry holds the open tabs in insertion order and the active pointer.
type TabRegistry struct {
	tabs   []*Tab
	index  map[TabID]*Tab
	active TabID // zero means no active tab
	nextID TabID
}

// NewTabRegistry creates an empty registry whose first allocated ID is 1.
func NewTabRegistry() *TabRegistry {
	return &TabRegistry{
		tabs:   make([]*Tab, 0),
		index:  make(map[TabID]*Tab),
		nextID: 1,
	}
}

// AllocateID reserves the next identifier. IDs are strictly increasing.
func (r *TabRegistry) AllocateID() TabID {
	id := r.nextID
	r.nextID++
	return id
}

// Add appends a tab. Adding an ID that is already present is a no-op.
func (r *TabRegistry) Add(tab *Tab) bool {
	if tab == nil {
		return false
	}
	if _, exists := r.index[tab.ID]; exists {
		return false
	}
	r.tabs = append(r.tabs, tab)
	r.index[tab.ID] = tab
	return true
}

// Remove evicts a tab. If it was active the active pointer is cleared;
// choosing the next active tab is left to the caller.
func (r *TabRegistry) Remove(id TabID) bool {
	if _, ok := r.index[id]; !ok {
		return false
	}
	delete(r.index, id)
	for i, tab := range r.tabs {
		if tab.ID == id {
			r.tabs = append(r.tabs[:i], r.tabs[i+1:]...)
			break
		}
	}
	if r.active == id {
		r.active = 0
	}
	return true
}

// Find returns the tab with the given ID, or nil.
func (r *TabRegistry) Find(id TabID) *Tab {
	return r.index[id]
}

// Contains reports whether the ID is registered.
func (r *TabRegistry) Contains(id TabID) bool {
	_, ok := r.index[id]
	return ok
}

// First returns the earliest inserted tab still open, or nil.
func (r *TabRegistry) First() *Tab {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.tabs[0]
}

// Tabs returns the tabs in insertion order. The slice is a copy.
func (r *TabRegistry) Tabs() []*Tab {
	out := make([]*Tab, len(r.tabs))
	copy(out, r.tabs)
	return out
}

// Count returns the number of open tabs.
func (r *TabRegistry) Count() int {
	return len(r.tabs)
}

// SetActive moves the active pointer. Unknown IDs are rejected.
func (r *TabRegistry) SetActive(id TabID) bool {
	if !r.Contains(id) {
		return false
	}
	r.active = id
	return true
}

// ActiveID returns the active tab ID and whether one is set.
func (r *TabRegistry) ActiveID() (TabID, bool) {
	return r.active, r.active != 0
}

// ActiveTab returns the active tab, or nil.
func (r *TabRegistry) ActiveTab() *Tab {
	if r.active == 0 {
		return nil
	}
	return r.index[r.active]
}

// IsActive reports whether id is the active tab.
func (r *TabRegistry) IsActive(id TabID) bool {
	return r.active != 0 && r.active == id
}
