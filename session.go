package knowthepast

import (
	"context"
	"strings"

	"github.com/Prasanna721/hack-know-the-past/shared"
	"go.uber.org/zap"
)

// Turn is the outcome of one audio-in to audio-out cycle.
type Turn struct {
	Transcript string
	Reply      string
	Audio      []byte
}

// Session sequences one logical turn through the three adapters. It keeps
// no conversation history of its own; continuity lives in the reasoning
// adapter's chat handle.
type Session struct {
	logger       shared.LoggerAdapter
	stt          Transcriber
	llm          ChatCompleter
	tts          Synthesizer
	instructions string
}

func NewSession(logger shared.LoggerAdapter, stt Transcriber, llm ChatCompleter, tts Synthesizer, instructions string) (*Session, error) {
	if logger == nil {
		return nil, shared.ErrNoLogger
	}
	return &Session{
		logger:       logger.With(zap.String("component", "session")),
		stt:          stt,
		llm:          llm,
		tts:          tts,
		instructions: instructions,
	}, nil
}

// ProcessTurn runs recognition, reasoning, and synthesis strictly in order.
// It never fails: a turn degrades to an empty Turn when no speech was
// recognized, and each adapter supplies its own fail-soft fallback.
func (s *Session) ProcessTurn(ctx context.Context, audio []byte) Turn {
	transcript := s.stt.Recognize(ctx, audio)
	if strings.TrimSpace(transcript) == "" {
		s.logger.Debug("no speech recognized, skipping turn")
		return Turn{}
	}
	reply := s.llm.ChatComplete(ctx, []Message{
		{Role: RoleSystem, Content: s.instructions},
		{Role: RoleUser, Content: transcript},
	}, nil)
	return Turn{
		Transcript: transcript,
		Reply:      reply.Content,
		Audio:      s.tts.Synthesize(ctx, reply.Content),
	}
}
