package knowthepast

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"time"

	"github.com/Prasanna721/hack-know-the-past/shared"
	"github.com/Prasanna721/hack-know-the-past/tools"
	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const gladiaDefaultBaseURL = "https://api.gladia.io"

// GladiaTranscriber uploads complete audio buffers to the Gladia
// transcription endpoint.
type GladiaTranscriber struct {
	logger   shared.LoggerAdapter
	apiKey   string
	baseUrl  *url.URL
	language string
}

var _ Transcriber = (*GladiaTranscriber)(nil)

func NewGladiaTranscriber(logger shared.LoggerAdapter, apiKey, baseUrl, language string) (*GladiaTranscriber, error) {
	if logger == nil {
		return nil, shared.ErrNoLogger
	}
	if apiKey == "" {
		return nil, shared.ErrNoGladiaKey
	}
	if baseUrl == "" {
		baseUrl = gladiaDefaultBaseURL
	}
	u, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if language == "" {
		language = "en"
	}
	return &GladiaTranscriber{
		logger:   logger.With(zap.String("component", "gladia-stt")),
		apiKey:   apiKey,
		baseUrl:  u,
		language: language,
	}, nil
}

type gladiaResponse struct {
	Transcription struct {
		FullTranscript string `json:"full_transcript"`
	} `json:"transcription"`
}

// Recognize converts audio to text. Every failure maps to an empty
// transcript; silence is "no speech recognized", not a hard error.
func (g *GladiaTranscriber) Recognize(ctx context.Context, audio []byte) string {
	start := time.Now()
	g.logger.Info("transcription request", zap.Int("audio_bytes", len(audio)))
	transcript, err := g.transcribe(ctx, audio)
	latency := time.Since(start)
	if err != nil {
		g.logger.Error("transcription failed", err, zap.Duration("latency", latency))
		return ""
	}
	g.logger.Info(
		"transcription completed",
		zap.Duration("latency", latency),
		zap.String("transcript", tools.Preview(transcript, 120)),
	)
	return transcript
}

func (g *GladiaTranscriber) transcribe(ctx context.Context, audio []byte) (string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	audioHeaders := textproto.MIMEHeader{}
	audioHeaders.Set("Content-Disposition", `form-data; name="audio"; filename="audio.wav"`)
	audioHeaders.Set("Content-Type", "audio/wav")
	audioPart, err := writer.CreatePart(audioHeaders)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGladia, Kind: KindTransport, Err: err}
	}
	if _, err = audioPart.Write(audio); err != nil {
		return "", &ProviderError{Provider: ProviderGladia, Kind: KindTransport, Err: err}
	}
	if err = writer.WriteField("language", g.language); err != nil {
		return "", &ProviderError{Provider: ProviderGladia, Kind: KindTransport, Err: err}
	}
	if err = writer.Close(); err != nil {
		return "", &ProviderError{Provider: ProviderGladia, Kind: KindTransport, Err: err}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(g.baseUrl.JoinPath("/v2/transcription").String())
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.Set("X-Gladia-Key", g.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetBody(body.Bytes())

	if err := do(ctx, req, resp); err != nil {
		return "", &ProviderError{Provider: ProviderGladia, Kind: KindTransport, Err: err}
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return "", &ProviderError{Provider: ProviderGladia, Kind: KindStatus, Status: resp.StatusCode()}
	}
	var parsed gladiaResponse
	if err := sonic.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", &ProviderError{Provider: ProviderGladia, Kind: KindDecode, Err: err}
	}
	return parsed.Transcription.FullTranscript, nil
}

// do performs a fasthttp request while respecting context cancellation.
func do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	errC := make(chan error, 1)
	go func() {
		errC <- fasthttp.Do(req, resp)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errC:
		return err
	}
}
