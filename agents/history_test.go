package agents

import (
	"context"
	"errors"
	"testing"

	pkg "github.com/Prasanna721/hack-know-the-past"
	"github.com/Prasanna721/hack-know-the-past/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() pkg.Settings {
	s := pkg.DefaultSettings()
	s.GladiaAPIKey = "gladia-key"
	s.GeminiAPIKey = "gemini-key"
	s.MinimaxAPIKey = "minimax-key"
	return s
}

func newAgentForTest(t *testing.T, personaContext string) *HistoryAgent {
	t.Helper()
	agent, err := NewHistoryAgent(context.Background(), shared.NewNopLogger(), testSettings(), personaContext)
	require.NoError(t, err)
	return agent
}

type fakeCompleter struct {
	reply    string
	err      error
	messages [][]pkg.Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []pkg.Message, _ []pkg.ToolDef) (pkg.ConversationReply, error) {
	f.messages = append(f.messages, messages)
	if f.err != nil {
		return pkg.ConversationReply{}, f.err
	}
	return pkg.NewConversationReply(f.reply), nil
}

func (f *fakeCompleter) ChatComplete(ctx context.Context, messages []pkg.Message, tools []pkg.ToolDef) pkg.ConversationReply {
	reply, err := f.Complete(ctx, messages, tools)
	if err != nil {
		return pkg.NewConversationReply("I apologize, but I encountered an error: " + err.Error())
	}
	return reply
}

type recordingSpeaker struct {
	utterances []string
	interrupts []bool
}

func (r *recordingSpeaker) Say(_ context.Context, text string, allowInterruptions bool) error {
	r.utterances = append(r.utterances, text)
	r.interrupts = append(r.interrupts, allowInterruptions)
	return nil
}

func TestNewHistoryAgentCredentialCombinations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*pkg.Settings)
		wantErr error
	}{
		{"all present", func(s *pkg.Settings) {}, nil},
		{"missing gladia", func(s *pkg.Settings) { s.GladiaAPIKey = "" }, shared.ErrNoGladiaKey},
		{"missing gemini", func(s *pkg.Settings) { s.GeminiAPIKey = "" }, shared.ErrNoGeminiKey},
		{"missing minimax", func(s *pkg.Settings) { s.MinimaxAPIKey = "" }, shared.ErrNoMinimaxKey},
		{"missing all", func(s *pkg.Settings) {
			s.GladiaAPIKey, s.GeminiAPIKey, s.MinimaxAPIKey = "", "", ""
		}, shared.ErrNoGladiaKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings()
			tt.mutate(&s)
			agent, err := NewHistoryAgent(context.Background(), shared.NewNopLogger(), s, "")
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.NotNil(t, agent)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	_, err := NewHistoryAgent(context.Background(), nil, testSettings(), "")
	assert.ErrorIs(t, err, shared.ErrNoLogger)
}

func TestInstructionsIncludeContext(t *testing.T) {
	plain := newAgentForTest(t, "")
	assert.Contains(t, plain.Instructions(), "history expert")
	assert.NotContains(t, plain.Instructions(), "Additional context")

	withCtx := newAgentForTest(t, "the Palace of Versailles")
	assert.Contains(t, withCtx.Instructions(), "Additional context for this conversation:\nthe Palace of Versailles")
}

func TestGetHistoricalInfo(t *testing.T) {
	agent := newAgentForTest(t, "")
	fake := &fakeCompleter{reply: "Rome has a long history."}
	agent.llm = fake

	got := agent.GetHistoricalInfo(context.Background(), "Rome")

	assert.Equal(t, "Rome has a long history.", got)
	require.Len(t, fake.messages, 1)
	require.Len(t, fake.messages[0], 1)
	msg := fake.messages[0][0]
	assert.Equal(t, pkg.RoleUser, msg.Role)
	assert.Contains(t, msg.Content, "Rome")
	assert.Contains(t, msg.Content, "Key historical facts and timeline")
	assert.Contains(t, msg.Content, "Cultural and architectural significance")
}

func TestGetHistoricalInfoFallback(t *testing.T) {
	agent := newAgentForTest(t, "")
	agent.llm = &fakeCompleter{err: errors.New("backend down")}

	got := agent.GetHistoricalInfo(context.Background(), "Rome")

	assert.Contains(t, got, "I encountered an issue researching Rome")
}

func TestExploreTimePeriod(t *testing.T) {
	agent := newAgentForTest(t, "")
	fake := &fakeCompleter{reply: "An era of emperors."}
	agent.llm = fake

	got := agent.ExploreTimePeriod(context.Background(), "Ancient Rome")

	assert.Equal(t, "An era of emperors.", got)
	require.Len(t, fake.messages, 1)
	msg := fake.messages[0][0]
	assert.Contains(t, msg.Content, "Ancient Rome")
	assert.Contains(t, msg.Content, "Major events and developments")
	assert.Contains(t, msg.Content, "journey through time")
}

func TestExploreTimePeriodFallback(t *testing.T) {
	agent := newAgentForTest(t, "")
	agent.llm = &fakeCompleter{err: errors.New("backend down")}

	got := agent.ExploreTimePeriod(context.Background(), "Ancient Rome")

	assert.Contains(t, got, "Let me share what I know about Ancient Rome")
}

func TestOnEnterGreeting(t *testing.T) {
	plain := newAgentForTest(t, "")
	speaker := &recordingSpeaker{}
	require.NoError(t, plain.OnEnter(context.Background(), speaker))
	require.Len(t, speaker.utterances, 1)
	assert.Contains(t, speaker.utterances[0], "personal history expert")
	assert.True(t, speaker.interrupts[0])

	withCtx := newAgentForTest(t, "the Roman Forum")
	ctxSpeaker := &recordingSpeaker{}
	require.NoError(t, withCtx.OnEnter(context.Background(), ctxSpeaker))
	require.Len(t, ctxSpeaker.utterances, 1)
	assert.Contains(t, ctxSpeaker.utterances[0], "the Roman Forum")
	assert.NotEqual(t, speaker.utterances[0], ctxSpeaker.utterances[0])

	assert.ErrorIs(t, plain.OnEnter(context.Background(), nil), shared.ErrNoSpeaker)
}

func TestCapabilitiesExposeTools(t *testing.T) {
	agent := newAgentForTest(t, "")
	caps := agent.Capabilities()

	require.NotNil(t, caps.SpeechToText)
	require.NotNil(t, caps.ChatComplete)
	require.NotNil(t, caps.TextToSpeech)
	require.Len(t, caps.Tools, 2)
	assert.Equal(t, "get_historical_info", caps.Tools[0].Name)
	assert.Equal(t, "explore_time_period", caps.Tools[1].Name)
	for _, tool := range caps.Tools {
		assert.NotEmpty(t, tool.Description)
		assert.NotEmpty(t, tool.ArgName)
		assert.NotNil(t, tool.Call)
	}
}
