package router

// History is a browser-style list of visited hashes with a cursor.
// Pushing after going back discards the forward entries.
type History struct {
	entries []string
	cursor  int
}

// NewHistory creates a history whose only entry is initial.
func NewHistory(initial string) *History {
	return &History{
		entries: []string{initial},
	}
}

// Push records a new entry after the cursor and moves onto it.
func (h *History) Push(hash string) {
	h.entries = append(h.entries[:h.cursor+1], hash)
	h.cursor = len(h.entries) - 1
}

// Replace overwrites the entry at the cursor.
func (h *History) Replace(hash string) {
	h.entries[h.cursor] = hash
}

// Current returns the entry at the cursor.
func (h *History) Current() string {
	return h.entries[h.cursor]
}

// Back moves the cursor one entry back.
// Returns false if already at the oldest entry.
func (h *History) Back() (string, bool) {
	if h.cursor == 0 {
		return h.entries[0], false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves the cursor one entry forward.
// Returns false if already at the newest entry.
func (h *History) Forward() (string, bool) {
	if h.cursor == len(h.entries)-1 {
		return h.entries[h.cursor], false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// CanGoBack returns true if Back would move.
func (h *History) CanGoBack() bool {
	return h.cursor > 0
}

// CanGoForward returns true if Forward would move.
func (h *History) CanGoForward() bool {
	return h.cursor < len(h.entries)-1
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
