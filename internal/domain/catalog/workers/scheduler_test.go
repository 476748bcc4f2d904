package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeDeleter struct {
	calls chan [2]int64
	err   error
}

func newFakeDeleter() *fakeDeleter {
	return &fakeDeleter{calls: make(chan [2]int64, 16)}
}

func (f *fakeDeleter) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	f.calls <- [2]int64{chatID, int64(messageID)}
	return f.err
}

func TestScheduler_FiresAfterDelay(t *testing.T) {
	deleter := newFakeDeleter()
	s := NewScheduler(deleter, zerolog.Nop())
	defer s.Stop()

	s.Schedule(-100, 7, 10*time.Millisecond)

	select {
	case call := <-deleter.calls:
		require.Equal(t, [2]int64{-100, 7}, call)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled deletion never fired")
	}

	require.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_CancelDisarms(t *testing.T) {
	deleter := newFakeDeleter()
	s := NewScheduler(deleter, zerolog.Nop())
	defer s.Stop()

	s.Schedule(-100, 7, 50*time.Millisecond)
	require.True(t, s.Cancel(-100, 7))
	require.False(t, s.Cancel(-100, 7))

	select {
	case <-deleter.calls:
		t.Fatal("cancelled deletion fired anyway")
	case <-time.After(150 * time.Millisecond):
	}

	require.Equal(t, 0, s.Pending())
}

func TestScheduler_RescheduleResetsTimer(t *testing.T) {
	deleter := newFakeDeleter()
	s := NewScheduler(deleter, zerolog.Nop())
	defer s.Stop()

	s.Schedule(-100, 7, time.Hour)
	s.Schedule(-100, 7, 10*time.Millisecond)
	require.Equal(t, 1, s.Pending())

	select {
	case <-deleter.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("rescheduled deletion never fired")
	}
}

func TestScheduler_DeleteFailureIsSwallowed(t *testing.T) {
	deleter := newFakeDeleter()
	deleter.err = errors.New("message to delete not found")
	s := NewScheduler(deleter, zerolog.Nop())
	defer s.Stop()

	s.Schedule(-100, 7, 10*time.Millisecond)

	select {
	case <-deleter.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled deletion never fired")
	}
}

func TestScheduler_StopRejectsNewWork(t *testing.T) {
	deleter := newFakeDeleter()
	s := NewScheduler(deleter, zerolog.Nop())

	s.Schedule(-100, 7, time.Hour)
	s.Stop()
	require.Equal(t, 0, s.Pending())

	s.Schedule(-100, 8, time.Millisecond)
	require.Equal(t, 0, s.Pending())

	select {
	case <-deleter.calls:
		t.Fatal("deletion fired after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}
