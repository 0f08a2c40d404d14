package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/vedp205/chronos-home/internal/domain"
)

type fakeSource struct {
	todos []dom.Todo
	err   error
}

func (f *fakeSource) DueWithinAll(ctx context.Context, window time.Duration) ([]dom.Todo, error) {
	return f.todos, f.err
}

type fakeSink struct {
	created []dom.Notification
	err     error
}

func (f *fakeSink) Create(ctx context.Context, n dom.Notification) (dom.Notification, error) {
	if f.err != nil {
		return dom.Notification{}, f.err
	}
	f.created = append(f.created, n)
	return n, nil
}

type fakeDeduper struct {
	claimed map[int64]bool
}

func (f *fakeDeduper) TryClaim(ctx context.Context, t dom.Todo) (bool, error) {
	if f.claimed == nil {
		f.claimed = make(map[int64]bool)
	}
	if f.claimed[t.ID] {
		return false, nil
	}
	f.claimed[t.ID] = true
	return true, nil
}

func dueTodo(id, userID int64, in time.Duration) dom.Todo {
	due := time.Now().UTC().Add(in)
	return dom.Todo{ID: id, UserID: userID, Title: "todo", DueAt: &due}
}

func TestScanEmitsForEachDueTodo(t *testing.T) {
	src := &fakeSource{todos: []dom.Todo{
		dueTodo(1, 10, 30*time.Minute),
		dueTodo(2, 11, 45*time.Minute),
	}}
	sink := &fakeSink{}
	n := New(src, sink, nil, ModeRepeat, time.Hour, time.Minute, nil)

	require.NoError(t, n.Scan(context.Background()))
	require.Len(t, sink.created, 2)
	assert.Equal(t, int64(10), sink.created[0].UserID)
	assert.Equal(t, int64(1), sink.created[0].TodoID)
	assert.Equal(t, Message, sink.created[0].Message)
}

func TestScanNothingDue(t *testing.T) {
	sink := &fakeSink{}
	n := New(&fakeSource{}, sink, nil, ModeRepeat, time.Hour, time.Minute, nil)

	require.NoError(t, n.Scan(context.Background()))
	assert.Empty(t, sink.created)
}

func TestScanSourceErrorPropagates(t *testing.T) {
	src := &fakeSource{err: errors.New("db down")}
	n := New(src, &fakeSink{}, nil, ModeRepeat, time.Hour, time.Minute, nil)

	err := n.Scan(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestScanSinkErrorSkipsItem(t *testing.T) {
	src := &fakeSource{todos: []dom.Todo{dueTodo(1, 10, 30*time.Minute)}}
	sink := &fakeSink{err: errors.New("insert failed")}
	n := New(src, sink, nil, ModeRepeat, time.Hour, time.Minute, nil)

	require.NoError(t, n.Scan(context.Background()))
	assert.Empty(t, sink.created)
}

func TestRepeatModeEmitsEveryScan(t *testing.T) {
	src := &fakeSource{todos: []dom.Todo{dueTodo(1, 10, 30*time.Minute)}}
	sink := &fakeSink{}
	n := New(src, sink, nil, ModeRepeat, time.Hour, time.Minute, nil)

	require.NoError(t, n.Scan(context.Background()))
	require.NoError(t, n.Scan(context.Background()))
	assert.Len(t, sink.created, 2)
}

func TestOnceModeEmitsSinglePerDeadline(t *testing.T) {
	src := &fakeSource{todos: []dom.Todo{dueTodo(1, 10, 30*time.Minute)}}
	sink := &fakeSink{}
	n := New(src, sink, &fakeDeduper{}, ModeOnce, time.Hour, time.Minute, nil)

	require.NoError(t, n.Scan(context.Background()))
	require.NoError(t, n.Scan(context.Background()))
	assert.Len(t, sink.created, 1)
}

func TestNewAppliesDefaults(t *testing.T) {
	n := New(&fakeSource{}, &fakeSink{}, nil, ModeRepeat, 0, 0, nil)
	assert.Equal(t, time.Hour, n.window)
	assert.Equal(t, time.Minute, n.interval)
	assert.NotNil(t, n.log)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	n := New(&fakeSource{}, &fakeSink{}, nil, ModeRepeat, time.Hour, 10*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		n.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier did not stop after cancel")
	}
}
