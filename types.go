package knowthepast

import "context"

// Role of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Label returns the capitalized role label used in flattened prompts.
// Unknown roles render as User, matching the reasoning provider's default.
func (r Role) Label() string {
	switch r {
	case RoleSystem:
		return "System"
	case RoleAssistant:
		return "Assistant"
	default:
		return "User"
	}
}

// Message is one entry of an ordered conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ConversationReply is the single reply produced per reasoning call.
// The role is always assistant.
type ConversationReply struct {
	Content string `json:"content"`
	Role    Role   `json:"role"`
}

func NewConversationReply(content string) ConversationReply {
	return ConversationReply{Content: content, Role: RoleAssistant}
}

// ToolDef describes a function tool as passed by the hosting runtime.
// It is accepted by ChatCompleter for interface compatibility but is not
// forwarded to the reasoning provider; tool invocation happens through the
// host runtime's own tool path (see Tool).
type ToolDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// Tool is a named operation the hosting runtime may invoke directly.
// Every tool takes a single required string argument.
type Tool struct {
	Name           string
	Description    string
	ArgName        string
	ArgDescription string
	Call           func(ctx context.Context, arg string) string
}

// VoiceSetting is the fixed voice configuration attached to every
// synthesis request.
type VoiceSetting struct {
	VoiceID string  `json:"voice_id" yaml:"voice_id"`
	Speed   float64 `json:"speed" yaml:"speed"`
	Vol     float64 `json:"vol" yaml:"vol"`
	Pitch   int     `json:"pitch" yaml:"pitch"`
}

// AudioSetting is the fixed output audio configuration attached to every
// synthesis request.
type AudioSetting struct {
	SampleRate int    `json:"sample_rate" yaml:"sample_rate"`
	Bitrate    int    `json:"bitrate" yaml:"bitrate"`
	Format     string `json:"format" yaml:"format"`
}

func DefaultVoiceSetting() VoiceSetting {
	return VoiceSetting{VoiceID: "presenter_male", Speed: 1.0, Vol: 1.0, Pitch: 0}
}

func DefaultAudioSetting() AudioSetting {
	return AudioSetting{SampleRate: 24000, Bitrate: 128000, Format: "wav"}
}

// SpeechToTextFunc converts a complete audio buffer to a transcript.
// An empty result means no speech was recognized.
type SpeechToTextFunc func(ctx context.Context, audio []byte) string

// ChatCompleteFunc produces one assistant reply for a message history.
type ChatCompleteFunc func(ctx context.Context, messages []Message, tools []ToolDef) ConversationReply

// TextToSpeechFunc converts a reply to a complete audio buffer.
// An empty result means synthesis was unavailable for this turn.
type TextToSpeechFunc func(ctx context.Context, text string) []byte

// Capabilities is the uniform contract an agent hands to the hosting
// session runtime: the three speech pipeline functions plus the agent's
// directly invocable tools.
type Capabilities struct {
	SpeechToText SpeechToTextFunc
	ChatComplete ChatCompleteFunc
	TextToSpeech TextToSpeechFunc
	Tools        []Tool
}

// SessionSpeaker is the host-runtime surface used to emit an utterance,
// typically on session entry.
type SessionSpeaker interface {
	Say(ctx context.Context, text string, allowInterruptions bool) error
}
