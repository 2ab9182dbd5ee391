package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	AI        AIConfig
	Speech    SpeechConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// SessionConfig holds session persistence and expiry configuration.
type SessionConfig struct {
	// StorageDir is where session records are persisted. Empty means
	// in-memory only (sessions do not survive a process restart).
	StorageDir    string        `envconfig:"SESSION_STORAGE_DIR" default:""`
	Timeout       time.Duration `envconfig:"SESSION_TIMEOUT" default:"5m"`
	WarningWindow time.Duration `envconfig:"SESSION_WARNING_WINDOW" default:"30s"`
	PollInterval  time.Duration `envconfig:"SESSION_POLL_INTERVAL" default:"1s"`
}

// AIConfig holds inference endpoint configuration.
type AIConfig struct {
	Endpoint string `envconfig:"GEMINI_ENDPOINT" default:"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-lite:generateContent"`
	APIKey   string `envconfig:"GEMINI_API_KEY" default:""`
	UseMock  bool   `envconfig:"USE_MOCK_AI" default:"false"`
	Timeout  time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`
}

// SpeechConfig holds speech-to-text and text-to-speech configuration.
type SpeechConfig struct {
	GroqAPIKey     string `envconfig:"GROQ_API_KEY" default:""`
	GroqEndpoint   string `envconfig:"GROQ_STT_ENDPOINT" default:"https://api.groq.com/openai/v1/audio/transcriptions"`
	ElevenAPIKey   string `envconfig:"ELEVEN_LABS_API_KEY" default:""`
	ElevenEndpoint string `envconfig:"ELEVEN_LABS_ENDPOINT" default:"https://api.elevenlabs.io/v1/text-to-speech"`
	ElevenVoiceID  string `envconfig:"ELEVEN_LABS_VOICE_ID" default:"EXAVITQu4vr4xnSDxMaL"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Session: SessionConfig{
			Timeout:       5 * time.Minute,
			WarningWindow: 30 * time.Second,
			PollInterval:  time.Second,
		},
		AI: AIConfig{
			Endpoint: "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-lite:generateContent",
			UseMock:  true,
			Timeout:  60 * time.Second,
		},
		Speech: SpeechConfig{
			GroqEndpoint:   "https://api.groq.com/openai/v1/audio/transcriptions",
			ElevenEndpoint: "https://api.elevenlabs.io/v1/text-to-speech",
			ElevenVoiceID:  "EXAVITQu4vr4xnSDxMaL",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
