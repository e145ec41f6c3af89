package knowthepast

import (
	"context"
	"fmt"

	"github.com/Prasanna721/hack-know-the-past/shared"
)

// Provider variant names selectable through Settings.
const (
	ProviderGladia  = "gladia"
	ProviderGemini  = "gemini"
	ProviderMinimax = "minimax"
)

// Transcriber converts a complete audio buffer into text.
//
// Recognize never fails: transport errors, bad statuses, and malformed
// responses all map to an empty transcript, which the hosting runtime
// treats as "no speech recognized".
type Transcriber interface {
	Recognize(ctx context.Context, audio []byte) string
}

// ChatCompleter produces one assistant reply per invocation.
//
// ChatComplete never fails: errors are folded into an apologetic reply so
// the conversation can continue. Complete is the typed variant for callers
// that need to distinguish failure, such as tool operations.
type ChatCompleter interface {
	ChatComplete(ctx context.Context, messages []Message, tools []ToolDef) ConversationReply
	Complete(ctx context.Context, messages []Message, tools []ToolDef) (ConversationReply, error)
}

// Synthesizer converts text into a complete audio buffer.
//
// Synthesize never fails: any provider failure yields an empty buffer.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) []byte
}

// Settings selects and configures the provider variants behind the three
// capability interfaces. API keys are env-sourced and never serialized.
type Settings struct {
	STTProvider string `yaml:"stt_provider" json:"stt_provider,omitempty"`
	LLMProvider string `yaml:"llm_provider" json:"llm_provider,omitempty"`
	TTSProvider string `yaml:"tts_provider" json:"tts_provider,omitempty"`

	GladiaAPIKey  string `yaml:"-" json:"-"`
	GeminiAPIKey  string `yaml:"-" json:"-"`
	MinimaxAPIKey string `yaml:"-" json:"-"`

	GladiaBaseURL  string `yaml:"gladia_base_url" json:"gladia_base_url,omitempty"`
	MinimaxBaseURL string `yaml:"minimax_base_url" json:"minimax_base_url,omitempty"`

	GeminiModel string `yaml:"gemini_model" json:"gemini_model"`
	Language    string `yaml:"language" json:"language"`

	Voice VoiceSetting `yaml:"voice_setting" json:"voice_setting"`
	Audio AudioSetting `yaml:"audio_setting" json:"audio_setting"`
}

func DefaultSettings() Settings {
	return Settings{
		STTProvider: ProviderGladia,
		LLMProvider: ProviderGemini,
		TTSProvider: ProviderMinimax,
		GeminiModel: "gemini-1.5-pro",
		Language:    "en",
		Voice:       DefaultVoiceSetting(),
		Audio:       DefaultAudioSetting(),
	}
}

// Validate reports the fatal configuration failures. A missing credential
// for any of the three providers aborts agent construction.
func (s Settings) Validate() error {
	if s.GladiaAPIKey == "" {
		return shared.ErrNoGladiaKey
	}
	if s.GeminiAPIKey == "" {
		return shared.ErrNoGeminiKey
	}
	if s.MinimaxAPIKey == "" {
		return shared.ErrNoMinimaxKey
	}
	return nil
}

// NewTranscriber builds the speech-recognition variant named by the settings.
func NewTranscriber(logger shared.LoggerAdapter, s Settings) (Transcriber, error) {
	switch s.STTProvider {
	case "", ProviderGladia:
		return NewGladiaTranscriber(logger, s.GladiaAPIKey, s.GladiaBaseURL, s.Language)
	default:
		return nil, fmt.Errorf("stt %q: %w", s.STTProvider, shared.ErrUnknownProvider)
	}
}

// NewChatCompleter builds the reasoning variant named by the settings.
func NewChatCompleter(ctx context.Context, logger shared.LoggerAdapter, s Settings) (ChatCompleter, error) {
	switch s.LLMProvider {
	case "", ProviderGemini:
		return NewGeminiChat(ctx, logger, s.GeminiAPIKey, s.GeminiModel)
	default:
		return nil, fmt.Errorf("llm %q: %w", s.LLMProvider, shared.ErrUnknownProvider)
	}
}

// NewSynthesizer builds the speech-synthesis variant named by the settings.
func NewSynthesizer(logger shared.LoggerAdapter, s Settings) (Synthesizer, error) {
	switch s.TTSProvider {
	case "", ProviderMinimax:
		return NewMinimaxSynthesizer(logger, s.MinimaxAPIKey, s.MinimaxBaseURL, s.Voice, s.Audio)
	default:
		return nil, fmt.Errorf("tts %q: %w", s.TTSProvider, shared.ErrUnknownProvider)
	}
}
