package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseWaitsForNotifier(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	a := &App{stopNotify: cancel, notifyDone: done}

	go func() {
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		close(done)
	}()

	require.NoError(t, a.Close(context.Background()))

	select {
	case <-done:
	default:
		t.Fatal("Close returned before the notifier finished")
	}
}

func TestCloseBoundedByDeadline(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Never closed: stands in for a scan that refuses to finish.
	a := &App{stopNotify: cancel, notifyDone: make(chan struct{})}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer closeCancel()

	start := time.Now()
	require.NoError(t, a.Close(closeCtx))
	assert.Less(t, time.Since(start), time.Second)
}
