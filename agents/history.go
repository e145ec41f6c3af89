package agents

import (
	"context"
	"fmt"

	pkg "github.com/Prasanna721/hack-know-the-past"
	"github.com/Prasanna721/hack-know-the-past/shared"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
)

const baseInstructions = `You are a knowledgeable and enthusiastic history expert specializing in historical places, events, and cultural heritage.

Your role:
- Share fascinating historical facts, stories, and insights
- Help users discover the rich history of places around the world
- Provide context about historical events, figures, and periods
- Make history engaging and accessible through vivid storytelling
- Connect past events to their modern significance

Guidelines:
- Be passionate and engaging about historical topics
- Provide specific dates, names, and details when possible
- Use storytelling to bring historical events to life
- Encourage curiosity about history and cultural heritage
- If you don't know something specific, admit it but offer related information
- Keep responses conversational and informative`

const (
	greetingDefault = "Hello! I'm your personal history expert. I love sharing fascinating stories " +
		"about historical places, events, and cultures. What historical topic interests you?"
	greetingWithContext = "Hello! I'm your history guide. I have some context about %s. " +
		"What would you like to explore about history today?"
)

func historicalInfoPrompt(placeOrEvent string) string {
	return fmt.Sprintf(`Provide comprehensive historical information about: %s

Include:
- Key historical facts and timeline
- Important figures and events
- Cultural and architectural significance
- Interesting stories or legends
- Modern-day relevance or status

Make it engaging and educational, suitable for someone curious about history.`, placeOrEvent)
}

func timePeriodPrompt(timePeriod string) string {
	return fmt.Sprintf(`Provide an engaging overview of the historical period: %s

Include:
- Major events and developments
- Daily life and society
- Important figures and leaders
- Cultural achievements and innovations
- Lasting impact on modern world

Make it vivid and immersive, as if taking someone on a journey through time.`, timePeriod)
}

// HistoryAgent binds the three provider adapters to the capability contract
// the hosting session runtime expects, specialized with a history-expert
// persona. One instance serves one session.
type HistoryAgent struct {
	logger       shared.LoggerAdapter
	settings     pkg.Settings
	stt          pkg.Transcriber
	llm          pkg.ChatCompleter
	tts          pkg.Synthesizer
	session      *pkg.Session
	context      string
	instructions string
}

// NewHistoryAgent constructs the agent for one session. A missing provider
// credential is the one fatal, non-recovered failure path.
func NewHistoryAgent(ctx context.Context, logger shared.LoggerAdapter, settings pkg.Settings, personaContext string) (*HistoryAgent, error) {
	if logger == nil {
		return nil, shared.ErrNoLogger
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("agent configuration: %w", err)
	}
	logger = logger.With(zap.String("component", "history-agent"))

	stt, err := pkg.NewTranscriber(logger, settings)
	if err != nil {
		return nil, fmt.Errorf("building transcriber: %w", err)
	}
	llm, err := pkg.NewChatCompleter(ctx, logger, settings)
	if err != nil {
		return nil, fmt.Errorf("building chat completer: %w", err)
	}
	tts, err := pkg.NewSynthesizer(logger, settings)
	if err != nil {
		return nil, fmt.Errorf("building synthesizer: %w", err)
	}

	instructions := baseInstructions
	if personaContext != "" {
		instructions += "\n\nAdditional context for this conversation:\n" + personaContext
	}
	session, err := pkg.NewSession(logger, stt, llm, tts, instructions)
	if err != nil {
		return nil, err
	}
	return &HistoryAgent{
		logger:       logger,
		settings:     settings,
		stt:          stt,
		llm:          llm,
		tts:          tts,
		session:      session,
		context:      personaContext,
		instructions: instructions,
	}, nil
}

// Instructions returns the persona text, including any session context.
func (a *HistoryAgent) Instructions() string { return a.instructions }

// Capabilities hands the speech pipeline and tools to the hosting runtime.
func (a *HistoryAgent) Capabilities() pkg.Capabilities {
	return pkg.Capabilities{
		SpeechToText: a.stt.Recognize,
		ChatComplete: a.llm.ChatComplete,
		TextToSpeech: a.tts.Synthesize,
		Tools:        a.Tools(),
	}
}

// ProcessTurn runs one complete audio-in to audio-out cycle.
func (a *HistoryAgent) ProcessTurn(ctx context.Context, audio []byte) pkg.Turn {
	return a.session.ProcessTurn(ctx, audio)
}

// Tools lists the operations the host runtime may invoke directly.
func (a *HistoryAgent) Tools() []pkg.Tool {
	return []pkg.Tool{
		{
			Name:           "get_historical_info",
			Description:    "Get detailed historical information about a specific place, event, or historical topic.",
			ArgName:        "place_or_event",
			ArgDescription: "The historical place, event, or topic to research",
			Call:           a.GetHistoricalInfo,
		},
		{
			Name:           "explore_time_period",
			Description:    "Explore and learn about a specific historical time period or era.",
			ArgName:        "time_period",
			ArgDescription: "Historical time period or era to explore (e.g., 'Ancient Rome', 'Medieval Europe', '1920s America')",
			Call:           a.ExploreTimePeriod,
		},
	}
}

// GetHistoricalInfo researches a place, event, or topic through the
// reasoning adapter.
func (a *HistoryAgent) GetHistoricalInfo(ctx context.Context, placeOrEvent string) string {
	reply, err := a.llm.Complete(ctx, []pkg.Message{
		{Role: pkg.RoleUser, Content: historicalInfoPrompt(placeOrEvent)},
	}, nil)
	if err != nil {
		return fmt.Sprintf("I encountered an issue researching %s. Let me share what I know from my training data instead.", placeOrEvent)
	}
	return reply.Content
}

// ExploreTimePeriod gives an era-oriented overview through the reasoning
// adapter.
func (a *HistoryAgent) ExploreTimePeriod(ctx context.Context, timePeriod string) string {
	reply, err := a.llm.Complete(ctx, []pkg.Message{
		{Role: pkg.RoleUser, Content: timePeriodPrompt(timePeriod)},
	}, nil)
	if err != nil {
		return fmt.Sprintf("I had trouble exploring that time period in detail. Let me share what I know about %s from my knowledge.", timePeriod)
	}
	return reply.Content
}

// OnEnter emits the single session greeting. The utterance differs
// depending on whether session context was supplied.
func (a *HistoryAgent) OnEnter(ctx context.Context, speaker pkg.SessionSpeaker) error {
	if speaker == nil {
		return shared.ErrNoSpeaker
	}
	greeting := greetingDefault
	if a.context != "" {
		greeting = fmt.Sprintf(greetingWithContext, a.context)
	}
	return speaker.Say(ctx, greeting, true)
}

// EchoSettings renders the resolved, credential-free settings through the
// printer, as spawn-time operator feedback.
func (a *HistoryAgent) EchoSettings(printer *shared.Printer) error {
	yamlBytes, err := yaml.MarshalWithOptions(a.settings, yaml.UseJSONMarshaler())
	if err != nil {
		a.logger.Error("marshaling settings to yaml", err)
		return err
	}
	if err := printer.Writeln("📋 Agent Settings\n", 0); err != nil {
		return err
	}
	return printer.Write(string(yamlBytes), 1)
}
