package speech

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/config"
)

// webmHeader is a minimal EBML header with a webm DocType, enough for
// container sniffing to identify it.
var webmHeader = []byte{0x1A, 0x45, 0xDF, 0xA3, 0x42, 0x82, 0x84, 'w', 'e', 'b', 'm'}

func TestGroqTranscriber_Disabled(t *testing.T) {
	tr := NewGroqTranscriber(config.SpeechConfig{}, nil, nil)

	assert.False(t, tr.Enabled())
	_, err := tr.Transcribe(context.Background(), webmHeader)
	assert.ErrorIs(t, err, ErrTranscriptionDisabled)
}

func TestGroqTranscriber_RejectsNonAudio(t *testing.T) {
	tr := NewGroqTranscriber(config.SpeechConfig{GroqAPIKey: "key"}, nil, nil)

	_, err := tr.Transcribe(context.Background(), []byte("just some text"))
	assert.ErrorIs(t, err, ErrUnsupportedAudio)

	_, err = tr.Transcribe(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnsupportedAudio)
}

func TestGroqTranscriber_Transcribe(t *testing.T) {
	var gotAuth, gotModel, gotFileName string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		_, _ = io.ReadAll(file)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"a ring for my wife"}`))
	}))
	defer server.Close()

	tr := NewGroqTranscriber(config.SpeechConfig{
		GroqAPIKey:   "groq-key",
		GroqEndpoint: server.URL,
	}, nil, nil)

	text, err := tr.Transcribe(context.Background(), webmHeader)
	require.NoError(t, err)

	assert.Equal(t, "a ring for my wife", text)
	assert.Equal(t, "Bearer groq-key", gotAuth)
	assert.Equal(t, "whisper-large-v3-turbo", gotModel)
	assert.Equal(t, "audio.webm", gotFileName)
}

func TestElevenLabsSynthesizer_Disabled(t *testing.T) {
	s := NewElevenLabsSynthesizer(config.SpeechConfig{}, nil, nil)

	assert.False(t, s.Enabled())
	_, err := s.Synthesize(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrSynthesisDisabled)
}

func TestElevenLabsSynthesizer_RejectsEmptyText(t *testing.T) {
	s := NewElevenLabsSynthesizer(config.SpeechConfig{ElevenAPIKey: "key"}, nil, nil)

	_, err := s.Synthesize(context.Background(), "   ")
	assert.Error(t, err)
}

func TestElevenLabsSynthesizer_Synthesize(t *testing.T) {
	var gotPath, gotAPIKey, gotAccept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("xi-api-key")
		gotAccept = r.Header.Get("Accept")

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"model_id":"eleven_multilingual_v2"`)
		assert.Contains(t, string(body), "Beep boop!")

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	s := NewElevenLabsSynthesizer(config.SpeechConfig{
		ElevenAPIKey:   "eleven-key",
		ElevenEndpoint: server.URL,
		ElevenVoiceID:  "voice-1",
	}, nil, nil)

	audio, err := s.Synthesize(context.Background(), "Beep boop!")
	require.NoError(t, err)

	assert.Equal(t, []byte("mp3-bytes"), audio.Data)
	assert.Equal(t, "mp3", audio.Format)
	assert.Equal(t, "/voice-1", gotPath)
	assert.Equal(t, "eleven-key", gotAPIKey)
	assert.Equal(t, "audio/mpeg", gotAccept)
}
