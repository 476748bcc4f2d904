// Package session holds per-chat conversation state for multi-step flows.
//
// State transitions:
//
// Drama / Ongoing upload flow (/add, /ongoing):
//
//	StepChannelLink -> StepPosterImage (via text link)
//	StepPosterImage -> StepFiles       (via photo)
//	StepFiles       -> StepFiles       (via each document/video)
//	StepFiles       -> terminal        (via /done with at least one file)
//
// News flow (/add_news):
//
//	StepNewsTitle   -> StepNewsContent (via text)
//	StepNewsContent -> StepNewsImage   (via text)
//	StepNewsImage   -> terminal        (via photo or /skip)
//
// Force-subscribe flow (/fs_on):
//
//	StepForceSubChannel -> terminal (via text channel id)
//
// /cancel ends any flow from any step. Unrecognized message shapes keep
// the current step. Sessions live in memory only and do not survive a
// process restart.
package session

import (
	"sync"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/entities"
)

// Flow names a multi-step conversation
type Flow string

const (
	FlowDrama    Flow = "drama"
	FlowOngoing  Flow = "ongoing"
	FlowNews     Flow = "news"
	FlowForceSub Flow = "force_sub"
)

// Step identifies the message the conversation is waiting for
type Step string

const (
	StepChannelLink     Step = "channel_link"
	StepPosterImage     Step = "poster_image"
	StepFiles           Step = "files"
	StepNewsTitle       Step = "news_title"
	StepNewsContent     Step = "news_content"
	StepNewsImage       Step = "news_image"
	StepForceSubChannel Step = "force_sub_channel"
)

// Session is the state of one chat's active conversation. It is owned by
// the single admin driving it; the manager's lock only guards the map.
type Session struct {
	Flow       Flow
	Step       Step
	Submission entities.Submission
	News       entities.NewsDraft
}

// Kind maps the flow to the record kind it commits
func (s *Session) Kind() entities.DramaKind {
	if s.Flow == FlowOngoing {
		return entities.KindOngoing
	}
	return entities.KindDrama
}

// Manager stores active sessions keyed by chat id
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Begin creates (or replaces) the session for a chat and sets the first step
func (m *Manager) Begin(chatID int64, flow Flow) *Session {
	s := &Session{Flow: flow}
	switch flow {
	case FlowNews:
		s.Step = StepNewsTitle
	case FlowForceSub:
		s.Step = StepForceSubChannel
	default:
		s.Step = StepChannelLink
	}

	m.mu.Lock()
	m.sessions[chatID] = s
	m.mu.Unlock()

	return s
}

// Get returns the chat's active session, if any
func (m *Manager) Get(chatID int64) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[chatID]
	m.mu.RUnlock()
	return s, ok
}

// End discards the chat's session and reports whether one existed
func (m *Manager) End(chatID int64) bool {
	m.mu.Lock()
	_, ok := m.sessions[chatID]
	delete(m.sessions, chatID)
	m.mu.Unlock()
	return ok
}

// Len returns the number of active sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
