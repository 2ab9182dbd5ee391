package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/config"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/httpx"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/monitoring"
)

const elevenModel = "eleven_multilingual_v2"

// ErrSynthesisDisabled is returned when no ElevenLabs API key is set
var ErrSynthesisDisabled = errors.New("TTS is not enabled")

// Audio is synthesized speech ready for playback
type Audio struct {
	Data   []byte
	Format string
}

// Synthesizer speaks a stylist reply aloud
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Audio, error)
}

// ElevenLabsSynthesizer calls the ElevenLabs text-to-speech endpoint
// and returns MP3 audio.
type ElevenLabsSynthesizer struct {
	http     *httpx.Client
	endpoint string
	apiKey   string
	voiceID  string
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewElevenLabsSynthesizer creates a Synthesizer from config
func NewElevenLabsSynthesizer(cfg config.SpeechConfig, logger *logging.Logger, metrics *monitoring.Metrics) *ElevenLabsSynthesizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ElevenLabsSynthesizer{
		http: httpx.New(httpx.Options{
			Name:   "elevenlabs",
			Logger: logger,
		}),
		endpoint: strings.TrimRight(cfg.ElevenEndpoint, "/"),
		apiKey:   cfg.ElevenAPIKey,
		voiceID:  cfg.ElevenVoiceID,
		logger:   logger.Named("tts"),
		metrics:  metrics,
	}
}

// Enabled reports whether an API key is configured
func (s *ElevenLabsSynthesizer) Enabled() bool { return s.apiKey != "" }

// Synthesize converts text to MP3 speech. Empty or whitespace-only
// text is rejected before any network call.
func (s *ElevenLabsSynthesizer) Synthesize(ctx context.Context, text string) (*Audio, error) {
	if !s.Enabled() {
		return nil, ErrSynthesisDisabled
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("synthesize: empty text")
	}

	timer := monitoring.NewTimer(s.metrics, "elevenlabs")

	resp, err := s.http.Execute(ctx, func() (*resty.Response, error) {
		return s.http.Resty.R().
			SetContext(ctx).
			SetHeader("Accept", "audio/mpeg").
			SetHeader("Content-Type", "application/json").
			SetHeader("xi-api-key", s.apiKey).
			SetBody(map[string]string{
				"text":     text,
				"model_id": elevenModel,
			}).
			Post(s.endpoint + "/" + s.voiceID)
	})
	if err != nil {
		timer.Stop("error")
		s.logger.Error("Speech synthesis failed", zap.Error(err))
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	body := resp.Body()
	if len(body) == 0 {
		timer.Stop("error")
		return nil, fmt.Errorf("synthesize: empty audio response")
	}

	timer.Stop("ok")
	s.logger.Debug("Synthesized speech",
		zap.Int("text_len", len(text)),
		zap.Int("audio_bytes", len(body)),
	)
	return &Audio{Data: body, Format: "mp3"}, nil
}
