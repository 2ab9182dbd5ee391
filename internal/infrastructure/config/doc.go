// Package config provides 12-factor configuration management for the
// kiosk backend.
//
// Configuration is loaded from environment variables with sensible
// defaults, so a kiosk runs out of the box in mock-AI mode without any
// credentials.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Session: storage directory, expiry timeout, warning window
//   - AI: inference endpoint, API key, mock switch
//   - Speech: Groq STT and ElevenLabs TTS settings
//   - Logging: log level and output format
//   - RateLimit: per-IP rate limiting configuration
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - SESSION_STORAGE_DIR, SESSION_TIMEOUT, SESSION_WARNING_WINDOW
//   - GEMINI_ENDPOINT, GEMINI_API_KEY, USE_MOCK_AI
//   - GROQ_API_KEY, ELEVEN_LABS_API_KEY, ELEVEN_LABS_VOICE_ID
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
