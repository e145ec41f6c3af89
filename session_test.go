package knowthepast

import (
	"context"
	"testing"

	"github.com/Prasanna721/hack-know-the-past/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPipeline struct {
	transcript string
	reply      string
	audio      []byte

	calls        []string
	gotMessages  []Message
	gotReplyText string
}

func (s *scriptedPipeline) Recognize(_ context.Context, _ []byte) string {
	s.calls = append(s.calls, "recognize")
	return s.transcript
}

func (s *scriptedPipeline) ChatComplete(_ context.Context, messages []Message, _ []ToolDef) ConversationReply {
	s.calls = append(s.calls, "chat")
	s.gotMessages = messages
	return NewConversationReply(s.reply)
}

func (s *scriptedPipeline) Complete(ctx context.Context, messages []Message, tools []ToolDef) (ConversationReply, error) {
	return s.ChatComplete(ctx, messages, tools), nil
}

func (s *scriptedPipeline) Synthesize(_ context.Context, text string) []byte {
	s.calls = append(s.calls, "synthesize")
	s.gotReplyText = text
	return s.audio
}

func TestProcessTurnSequencing(t *testing.T) {
	p := &scriptedPipeline{
		transcript: "tell me about Rome",
		reply:      "Rome was founded in 753 BC.",
		audio:      []byte{1, 2, 3},
	}
	sess, err := NewSession(shared.NewNopLogger(), p, p, p, "You are a history expert.")
	require.NoError(t, err)

	turn := sess.ProcessTurn(context.Background(), []byte("wav"))

	assert.Equal(t, []string{"recognize", "chat", "synthesize"}, p.calls)
	assert.Equal(t, "tell me about Rome", turn.Transcript)
	assert.Equal(t, "Rome was founded in 753 BC.", turn.Reply)
	assert.Equal(t, []byte{1, 2, 3}, turn.Audio)
	assert.Equal(t, "Rome was founded in 753 BC.", p.gotReplyText)

	require.Len(t, p.gotMessages, 2)
	assert.Equal(t, RoleSystem, p.gotMessages[0].Role)
	assert.Equal(t, "You are a history expert.", p.gotMessages[0].Content)
	assert.Equal(t, RoleUser, p.gotMessages[1].Role)
	assert.Equal(t, "tell me about Rome", p.gotMessages[1].Content)
}

func TestProcessTurnSkipsOnSilence(t *testing.T) {
	p := &scriptedPipeline{transcript: "  "}
	sess, err := NewSession(shared.NewNopLogger(), p, p, p, "instructions")
	require.NoError(t, err)

	turn := sess.ProcessTurn(context.Background(), []byte("wav"))

	assert.Equal(t, []string{"recognize"}, p.calls)
	assert.Equal(t, Turn{}, turn)
}

func TestNewSessionRequiresLogger(t *testing.T) {
	_, err := NewSession(nil, nil, nil, nil, "")
	assert.ErrorIs(t, err, shared.ErrNoLogger)
}
