package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/config"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/httpx"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/monitoring"
)

const whisperModel = "whisper-large-v3-turbo"

var (
	// ErrTranscriptionDisabled is returned when no Groq API key is set
	ErrTranscriptionDisabled = errors.New("transcription is not enabled")

	// ErrUnsupportedAudio is returned for payloads that are not a
	// recognized audio container.
	ErrUnsupportedAudio = errors.New("unsupported audio format")
)

// Transcriber turns a shopper's voice recording into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// GroqTranscriber calls Groq's Whisper endpoint with a multipart
// audio upload.
type GroqTranscriber struct {
	http     *httpx.Client
	endpoint string
	apiKey   string
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewGroqTranscriber creates a Transcriber from config
func NewGroqTranscriber(cfg config.SpeechConfig, logger *logging.Logger, metrics *monitoring.Metrics) *GroqTranscriber {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &GroqTranscriber{
		http: httpx.New(httpx.Options{
			Name:   "groq-stt",
			Logger: logger,
		}),
		endpoint: cfg.GroqEndpoint,
		apiKey:   cfg.GroqAPIKey,
		logger:   logger.Named("stt"),
		metrics:  metrics,
	}
}

// Enabled reports whether an API key is configured
func (t *GroqTranscriber) Enabled() bool { return t.apiKey != "" }

// fileName picks an upload name matching the sniffed container, since
// Whisper keys the decoder off the file extension.
func fileName(mime *mimetype.MIME) (string, bool) {
	switch {
	case mime.Is("audio/webm"), mime.Is("video/webm"):
		return "audio.webm", true
	case mime.Is("audio/ogg"), mime.Is("application/ogg"):
		return "audio.ogg", true
	case mime.Is("audio/wav"), mime.Is("audio/x-wav"):
		return "audio.wav", true
	case mime.Is("audio/mpeg"), mime.Is("audio/mp3"):
		return "audio.mp3", true
	case mime.Is("audio/mp4"), mime.Is("video/mp4"):
		return "audio.mp4", true
	}
	return "", false
}

// Transcribe uploads audio to Whisper and returns the recognized text
func (t *GroqTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if !t.Enabled() {
		return "", ErrTranscriptionDisabled
	}
	if len(audio) == 0 {
		return "", ErrUnsupportedAudio
	}

	name, ok := fileName(mimetype.Detect(audio))
	if !ok {
		return "", ErrUnsupportedAudio
	}

	timer := monitoring.NewTimer(t.metrics, "groq-stt")

	var result struct {
		Text string `json:"text"`
	}
	_, err := t.http.Execute(ctx, func() (*resty.Response, error) {
		return t.http.Resty.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+t.apiKey).
			SetFileReader("file", name, bytes.NewReader(audio)).
			SetFormData(map[string]string{"model": whisperModel}).
			SetResult(&result).
			Post(t.endpoint)
	})
	if err != nil {
		timer.Stop("error")
		t.logger.Error("Transcription failed", zap.Error(err))
		return "", fmt.Errorf("transcribe: %w", err)
	}

	timer.Stop("ok")
	t.logger.Debug("Transcribed audio",
		zap.Int("bytes", len(audio)),
		zap.Int("text_len", len(result.Text)),
	)
	return result.Text, nil
}
