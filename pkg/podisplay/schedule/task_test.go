package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestTaskRunsOnceAfterQueuedWork(t *testing.T) {
	q := &queuePoster{}
	var order []string

	q.Post(func() { order = append(order, "init") })
	task := NewTask(func() { order = append(order, "task") })

	assert.True(t, task.Schedule(q))
	assert.False(t, task.Schedule(q), "second schedule must not post again")
	assert.Equal(t, StateScheduled, task.State())
	assert.Len(t, q.queue, 2)

	q.flush()
	assert.Equal(t, []string{"init", "task"}, order)
	assert.True(t, task.Done())
	assert.False(t, task.Pending())
}

func TestTaskCancelBeforeRun(t *testing.T) {
	q := &queuePoster{}
	calls := 0
	task := NewTask(func() { calls++ })

	task.Schedule(q)
	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())

	q.flush()
	assert.Equal(t, 0, calls)
	assert.True(t, task.Cancelled())
	assert.False(t, task.Schedule(q))
}

func TestTaskCancelAfterRun(t *testing.T) {
	calls := 0
	task := NewTask(func() { calls++ })

	assert.True(t, task.Schedule(Immediate))
	assert.Equal(t, 1, calls)
	assert.False(t, task.Cancel())
	assert.False(t, task.Run())
	assert.Equal(t, 1, calls)
}

func TestTaskRunInline(t *testing.T) {
	calls := 0
	task := NewTask(func() { calls++ })

	assert.True(t, task.Run())
	assert.False(t, task.Run())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "done", task.State().String())
}

func TestTaskCancelIdle(t *testing.T) {
	task := NewTask(nil)
	assert.True(t, task.Cancel())
	assert.False(t, task.Run())
	assert.Equal(t, StateCancelled, task.State())
}

func TestTaskPostedRunIsNoopAfterInlineRun(t *testing.T) {
	q := &queuePoster{}
	calls := 0
	task := NewTask(func() { calls++ })

	require.True(t, task.Schedule(q))
	require.Len(t, q.queue, 1)
	assert.True(t, task.Run())

	q.flush()
	assert.Equal(t, 1, calls)
	assert.True(t, task.Done())
}
