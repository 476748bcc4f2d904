package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/entities"
)

func TestManager_BeginSetsFirstStep(t *testing.T) {
	tests := []struct {
		flow Flow
		step Step
	}{
		{flow: FlowDrama, step: StepChannelLink},
		{flow: FlowOngoing, step: StepChannelLink},
		{flow: FlowNews, step: StepNewsTitle},
		{flow: FlowForceSub, step: StepForceSubChannel},
	}

	for _, tt := range tests {
		t.Run(string(tt.flow), func(t *testing.T) {
			m := NewManager()
			s := m.Begin(1, tt.flow)
			require.Equal(t, tt.step, s.Step)

			got, ok := m.Get(1)
			require.True(t, ok)
			require.Same(t, s, got)
		})
	}
}

func TestManager_BeginReplacesExisting(t *testing.T) {
	m := NewManager()
	first := m.Begin(1, FlowDrama)
	first.Submission.ChannelLink = "https://t.me/+abc"

	second := m.Begin(1, FlowNews)
	require.NotSame(t, first, second)
	require.Empty(t, second.Submission.ChannelLink)
	require.Equal(t, 1, m.Len())
}

func TestManager_End(t *testing.T) {
	m := NewManager()
	m.Begin(1, FlowDrama)

	require.True(t, m.End(1))
	require.False(t, m.End(1))

	_, ok := m.Get(1)
	require.False(t, ok)
	require.Equal(t, 0, m.Len())
}

func TestManager_SessionsAreScopedPerChat(t *testing.T) {
	m := NewManager()
	a := m.Begin(1, FlowDrama)
	b := m.Begin(2, FlowOngoing)

	a.Submission.Files = append(a.Submission.Files, entities.FileRef{FileID: "f1"})

	require.Len(t, a.Submission.Files, 1)
	require.Empty(t, b.Submission.Files)
	require.Equal(t, 2, m.Len())
}

func TestSession_Kind(t *testing.T) {
	require.Equal(t, entities.KindDrama, (&Session{Flow: FlowDrama}).Kind())
	require.Equal(t, entities.KindOngoing, (&Session{Flow: FlowOngoing}).Kind())
}
