package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type manualTimer struct {
	fired []func()
}

func (m *manualTimer) after(_ time.Duration, fn func()) {
	m.fired = append(m.fired, fn)
}

type queuePoster struct {
	queue []func()
}

func (q *queuePoster) Post(fn func()) { q.queue = append(q.queue, fn) }

func (q *queuePoster) flush() {
	for len(q.queue) > 0 {
		fn := q.queue[0]
		q.queue = q.queue[1:]
		fn()
	}
}

func TestToasterAutoDismisses(t *testing.T) {
	timer := &manualTimer{}
	q := &queuePoster{}
	start := time.Date(2023, 10, 27, 9, 0, 0, 0, time.UTC)

	toaster := NewToaster(q,
		WithTimer(timer.after),
		WithClock(func() time.Time { return start }),
		WithDuration(2*time.Second),
	)

	toaster.Show("first")
	toaster.Show("second")

	active := toaster.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Message)
	assert.Equal(t, start.Add(2*time.Second), active[0].ExpiresAt)

	latest, ok := toaster.Latest()
	require.True(t, ok)
	assert.Equal(t, "second", latest.Message)

	require.Len(t, timer.fired, 2)
	timer.fired[0]()
	assert.Len(t, toaster.Active(), 2, "dismissal runs on the UI loop")

	q.flush()
	active = toaster.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Message)

	timer.fired[1]()
	q.flush()
	_, ok = toaster.Latest()
	assert.False(t, ok)
}

func TestMessageList(t *testing.T) {
	list := NewMessageList(Message{Type: SeveritySuccess, Title: "System Information"})
	list.Add(Message{Type: SeverityWarning, Title: "Mock data unavailable", Counter: 2})

	messages := list.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, 1, messages[0].Counter, "zero counter defaults to one")
	assert.Equal(t, 2, messages[1].Counter)
	assert.Equal(t, SeverityWarning, list.Highest())
	assert.Equal(t, 1, list.CountBySeverity(SeveritySuccess))
	assert.Equal(t, "Warning", list.Highest().String())

	messages[0].Title = "changed"
	assert.Equal(t, "System Information", list.Messages()[0].Title, "Messages returns a copy")

	list.Clear()
	assert.Equal(t, 0, list.Len())
	assert.Equal(t, SeverityNone, list.Highest())
}

func TestCatalogEnglish(t *testing.T) {
	catalog, err := NewCatalog("en")
	require.NoError(t, err)

	assert.Equal(t, "Dialog with ID 'x' not found", catalog.Text(MsgDialogNotFound, map[string]any{"ID": "x"}))
	assert.Equal(t, "Exit button pressed.", catalog.Text(MsgButtonPressed, map[string]any{"Label": "Exit"}))
	assert.Equal(t, "File download initiated", catalog.Text(MsgFileDownload, nil))
}

func TestCatalogGermanAndFallback(t *testing.T) {
	catalog, err := NewCatalog("de")
	require.NoError(t, err)
	assert.Equal(t, language.German, catalog.Language())
	assert.Equal(t, "Navigiere zu: second", catalog.Text(MsgNavigatingTo, map[string]any{"Target": "second"}))

	assert.Equal(t, "NoSuchMessage", catalog.Text("NoSuchMessage", nil))
}

func TestCatalogUnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	catalog, err := NewCatalog("ja")
	require.NoError(t, err)
	assert.Equal(t, language.English, catalog.Language())
	assert.Equal(t, "Dialog confirmed", catalog.Text(MsgDialogConfirmed, nil))
}

func TestCatalogRejectsBadLocale(t *testing.T) {
	_, err := NewCatalog("!!")
	require.Error(t, err)
}
