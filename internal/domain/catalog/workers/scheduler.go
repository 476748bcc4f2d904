// Package workers contains background tasks for the catalog domain
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultDeleteDelay is how long a group search reply stays visible
const DefaultDeleteDelay = 120 * time.Second

// deleteTimeout bounds the delete call itself
const deleteTimeout = 30 * time.Second

// Deleter removes a message from a chat
type Deleter interface {
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

type deleteKey struct {
	chatID    int64
	messageID int
}

// Scheduler runs one-shot delayed message deletions. Each pending deletion
// is keyed by (chat, message) so it can be cancelled before it fires.
// Deletion failures (message already gone, missing rights) are logged and
// swallowed.
type Scheduler struct {
	deleter Deleter
	logger  zerolog.Logger

	mu     sync.Mutex
	timers map[deleteKey]*time.Timer
	closed bool
}

// NewScheduler creates a scheduler with no pending deletions
func NewScheduler(deleter Deleter, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		deleter: deleter,
		logger:  logger,
		timers:  make(map[deleteKey]*time.Timer),
	}
}

// Schedule arms a one-shot deletion of the message after the delay.
// Scheduling the same message twice resets its timer.
func (s *Scheduler) Schedule(chatID int64, messageID int, delay time.Duration) {
	key := deleteKey{chatID: chatID, messageID: messageID}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if t, ok := s.timers[key]; ok {
		t.Stop()
	}

	s.timers[key] = time.AfterFunc(delay, func() {
		s.fire(key)
	})

	s.logger.Debug().
		Int64("chat_id", chatID).
		Int("message_id", messageID).
		Dur("delay", delay).
		Msg("Message deletion scheduled")
}

// Cancel disarms a pending deletion and reports whether one was pending
func (s *Scheduler) Cancel(chatID int64, messageID int) bool {
	key := deleteKey{chatID: chatID, messageID: messageID}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[key]
	if !ok {
		return false
	}

	t.Stop()
	delete(s.timers, key)
	return true
}

// Pending returns the number of armed deletions
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop disarms every pending deletion and rejects new ones
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}

	s.logger.Info().Msg("Deletion scheduler stopped")
}

func (s *Scheduler) fire(key deleteKey) {
	s.mu.Lock()
	delete(s.timers, key)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), deleteTimeout)
	defer cancel()

	if err := s.deleter.DeleteMessage(ctx, key.chatID, key.messageID); err != nil {
		s.logger.Debug().
			Err(err).
			Int64("chat_id", key.chatID).
			Int("message_id", key.messageID).
			Msg("Scheduled deletion failed, ignoring")
		return
	}

	s.logger.Debug().
		Int64("chat_id", key.chatID).
		Int("message_id", key.messageID).
		Msg("Scheduled deletion completed")
}
