package knowthepast

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Prasanna721/hack-know-the-past/shared"
	"github.com/Prasanna721/hack-know-the-past/tools"
	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const minimaxDefaultBaseURL = "https://api.minimax.chat"

// MinimaxSynthesizer converts reply text into a complete WAV buffer through
// the MiniMax text-to-speech endpoint.
type MinimaxSynthesizer struct {
	logger  shared.LoggerAdapter
	apiKey  string
	baseUrl *url.URL
	voice   VoiceSetting
	audio   AudioSetting
}

var _ Synthesizer = (*MinimaxSynthesizer)(nil)

func NewMinimaxSynthesizer(logger shared.LoggerAdapter, apiKey, baseUrl string, voice VoiceSetting, audio AudioSetting) (*MinimaxSynthesizer, error) {
	if logger == nil {
		return nil, shared.ErrNoLogger
	}
	if apiKey == "" {
		return nil, shared.ErrNoMinimaxKey
	}
	if baseUrl == "" {
		baseUrl = minimaxDefaultBaseURL
	}
	u, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if voice == (VoiceSetting{}) {
		voice = DefaultVoiceSetting()
	}
	if audio == (AudioSetting{}) {
		audio = DefaultAudioSetting()
	}
	return &MinimaxSynthesizer{
		logger:  logger.With(zap.String("component", "minimax-tts")),
		apiKey:  apiKey,
		baseUrl: u,
		voice:   voice,
		audio:   audio,
	}, nil
}

type synthesisRequest struct {
	Text         string       `json:"text"`
	VoiceSetting VoiceSetting `json:"voice_setting"`
	AudioSetting AudioSetting `json:"audio_setting"`
}

// Synthesize converts text to audio. Every failure maps to an empty buffer;
// a silent turn is preferable to a crashed one.
func (m *MinimaxSynthesizer) Synthesize(ctx context.Context, text string) []byte {
	start := time.Now()
	m.logger.Info("synthesis request", zap.String("text", tools.Preview(text, 100)))
	audio, err := m.synthesize(ctx, text)
	latency := time.Since(start)
	if err != nil {
		m.logger.Error("synthesis failed", err, zap.Duration("latency", latency))
		return nil
	}
	m.logger.Info(
		"synthesis completed",
		zap.Duration("latency", latency),
		zap.Int("audio_bytes", len(audio)),
		zap.Duration("est_duration", tools.DurationFromBitrate(len(audio), m.audio.Bitrate)),
	)
	return audio
}

func (m *MinimaxSynthesizer) synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := sonic.Marshal(synthesisRequest{
		Text:         text,
		VoiceSetting: m.voice,
		AudioSetting: m.audio,
	})
	if err != nil {
		return nil, &ProviderError{Provider: ProviderMinimax, Kind: KindDecode, Err: err}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(m.baseUrl.JoinPath("/v1/text_to_speech").String())
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.SetBody(payload)

	if err := do(ctx, req, resp); err != nil {
		return nil, &ProviderError{Provider: ProviderMinimax, Kind: KindTransport, Err: err}
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &ProviderError{Provider: ProviderMinimax, Kind: KindStatus, Status: resp.StatusCode()}
	}
	// The response buffer is pooled; the audio must outlive it.
	audio := append([]byte(nil), resp.Body()...)
	return audio, nil
}
