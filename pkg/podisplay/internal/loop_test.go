package internal

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLoopDrainKeepsPostOrder(t *testing.T) {
	l := NewLoop()

	var got []int
	for i := 0; i < 3; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}

	assert.Equal(t, 3, l.Pending())
	assert.Equal(t, 3, l.Drain())
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 0, l.Pending())
}

func TestLoopDrainRunsWorkPostedWhileDraining(t *testing.T) {
	l := NewLoop()

	var got []string
	l.Post(func() {
		got = append(got, "first")
		l.Post(func() { got = append(got, "nested") })
	})
	l.Post(func() { got = append(got, "second") })

	assert.Equal(t, 3, l.Drain())
	assert.Equal(t, []string{"first", "second", "nested"}, got)
}

func TestLoopRunStopsOnContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	var runErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = l.Run(ctx)
	}()

	ran := make(chan struct{})
	l.Post(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("posted work never ran")
	}

	cancel()
	wg.Wait()
	require.ErrorIs(t, runErr, context.Canceled)
}

func TestLoopStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop()

	var wg sync.WaitGroup
	var runErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = l.Run(context.Background())
	}()

	l.Stop()
	l.Stop()
	wg.Wait()
	require.NoError(t, runErr)

	called := false
	l.Post(func() { called = true })
	assert.Equal(t, 0, l.Drain())
	assert.False(t, called)
}
