package router

// Location is the environment's hash source: the part of the app URL
// after "#". Implementations notify subscribers when the hash changes
// for any reason (user edit, back/forward, SetHash).
type Location interface {
	Hash() string
	SetHash(hash string)
	Subscribe(fn func(hash string)) (unsubscribe func())
}

type subscriber struct {
	id int
	fn func(hash string)
}

// MemoryLocation is an in-process Location with browser-like history.
// It notifies subscribers synchronously. It is not safe for concurrent use.
type MemoryLocation struct {
	history     *History
	subscribers []subscriber
	nextID      int
}

// NewMemoryLocation creates a location starting at initial (with or without "#").
func NewMemoryLocation(initial string) *MemoryLocation {
	return &MemoryLocation{
		history: NewHistory(stripHashMark(initial)),
	}
}

// Hash returns the current fragment without the leading "#".
func (l *MemoryLocation) Hash() string {
	return l.history.Current()
}

// Href returns the fragment as shown in an address bar, e.g. "#/main".
func (l *MemoryLocation) Href() string {
	if l.Hash() == "" {
		return ""
	}
	return "#" + l.Hash()
}

// SetHash pushes a new history entry. Setting the current hash again is
// ignored, as browsers do.
func (l *MemoryLocation) SetHash(hash string) {
	hash = stripHashMark(hash)
	if hash == l.history.Current() {
		return
	}
	l.history.Push(hash)
	l.notify(hash)
}

// Replace swaps the current entry without growing the history.
func (l *MemoryLocation) Replace(hash string) {
	hash = stripHashMark(hash)
	if hash == l.history.Current() {
		return
	}
	l.history.Replace(hash)
	l.notify(hash)
}

// Back steps to the previous entry. Returns false at the oldest entry.
func (l *MemoryLocation) Back() bool {
	hash, ok := l.history.Back()
	if ok {
		l.notify(hash)
	}
	return ok
}

// Forward steps to the next entry. Returns false at the newest entry.
func (l *MemoryLocation) Forward() bool {
	hash, ok := l.history.Forward()
	if ok {
		l.notify(hash)
	}
	return ok
}

// History exposes the underlying entries.
func (l *MemoryLocation) History() *History {
	return l.history
}

func (l *MemoryLocation) Subscribe(fn func(hash string)) func() {
	l.nextID++
	id := l.nextID
	l.subscribers = append(l.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range l.subscribers {
			if s.id == id {
				l.subscribers = append(l.subscribers[:i], l.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (l *MemoryLocation) notify(hash string) {
	subs := make([]subscriber, len(l.subscribers))
	copy(subs, l.subscribers)
	for _, s := range subs {
		s.fn(hash)
	}
}

func stripHashMark(hash string) string {
	if len(hash) > 0 && hash[0] == '#' {
		return hash[1:]
	}
	return hash
}
