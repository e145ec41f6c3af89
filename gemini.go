package knowthepast

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Prasanna721/hack-know-the-past/shared"
	"github.com/Prasanna721/hack-know-the-past/tools"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// chatSession is one persistent provider-side chat handle.
type chatSession interface {
	SendText(ctx context.Context, text string) (string, error)
}

type chatFactory func(ctx context.Context) (chatSession, error)

// GeminiChat adapts the message-history contract onto a Gemini chat.
//
// The provider-side chat handle is created lazily on the first call and
// reused for the rest of the session; it is the only mutable cross-call
// state in the pipeline and is owned by this adapter's session.
type GeminiChat struct {
	logger  shared.LoggerAdapter
	model   string
	newChat chatFactory

	mu   sync.Mutex
	chat chatSession
}

var _ ChatCompleter = (*GeminiChat)(nil)

func NewGeminiChat(ctx context.Context, logger shared.LoggerAdapter, apiKey, model string) (*GeminiChat, error) {
	if logger == nil {
		return nil, shared.ErrNoLogger
	}
	if apiKey == "" {
		return nil, shared.ErrNoGeminiKey
	}
	if model == "" {
		model = "gemini-1.5-pro"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &GeminiChat{
		logger: logger.With(zap.String("component", "gemini-llm")),
		model:  model,
		newChat: func(ctx context.Context) (chatSession, error) {
			chat, err := client.Chats.Create(ctx, model, nil, nil)
			if err != nil {
				return nil, err
			}
			return &genaiChat{chat: chat}, nil
		},
	}, nil
}

type genaiChat struct {
	chat *genai.Chat
}

func (g *genaiChat) SendText(ctx context.Context, text string) (string, error) {
	resp, err := g.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// FlattenMessages renders an ordered message history as one prompt,
// one "<Role>: <content>" line per message.
func FlattenMessages(messages []Message) string {
	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		parts = append(parts, msg.Role.Label()+": "+msg.Content)
	}
	return strings.Join(parts, "\n")
}

// ChatComplete produces one assistant reply for the given history. It never
// fails: any underlying error is folded into an apologetic reply so the
// conversation can continue.
func (g *GeminiChat) ChatComplete(ctx context.Context, messages []Message, toolDefs []ToolDef) ConversationReply {
	reply, err := g.Complete(ctx, messages, toolDefs)
	if err != nil {
		return NewConversationReply(fmt.Sprintf("I apologize, but I encountered an error: %v", err))
	}
	return reply
}

// Complete is the typed variant of ChatComplete used by tool operations.
//
// The tools parameter is accepted for the host calling convention but is
// not forwarded to Gemini; tool invocation happens through the host
// runtime's own tool path.
func (g *GeminiChat) Complete(ctx context.Context, messages []Message, _ []ToolDef) (ConversationReply, error) {
	start := time.Now()
	prompt := FlattenMessages(messages)
	g.logger.Info("chat request", zap.String("prompt", tools.Preview(prompt, 200)))

	text, err := g.send(ctx, prompt)
	latency := time.Since(start)
	if err != nil {
		g.logger.Error("chat failed", err, zap.Duration("latency", latency))
		return ConversationReply{}, err
	}
	g.logger.Info(
		"chat completed",
		zap.Duration("latency", latency),
		zap.String("response", tools.Preview(text, 300)),
	)
	return NewConversationReply(text), nil
}

func (g *GeminiChat) send(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	if g.chat == nil {
		chat, err := g.newChat(ctx)
		if err != nil {
			g.mu.Unlock()
			return "", &ProviderError{Provider: ProviderGemini, Kind: KindTransport, Err: err}
		}
		g.chat = chat
	}
	chat := g.chat
	g.mu.Unlock()

	text, err := chat.SendText(ctx, prompt)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGemini, Kind: KindProvider, Err: err}
	}
	return text, nil
}
