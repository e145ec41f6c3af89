package shared

import "errors"

var (
	ErrNoLogger        = errors.New("no logger provided")
	ErrNoSpeaker       = errors.New("no session speaker provided")
	ErrNoGladiaKey     = errors.New("no Gladia API key provided")
	ErrNoGeminiKey     = errors.New("no Gemini API key provided")
	ErrNoMinimaxKey    = errors.New("no MiniMax API key provided")
	ErrUnknownProvider = errors.New("unknown provider")
	ErrEnvMissing      = errors.New("required environment variable not set")
)
