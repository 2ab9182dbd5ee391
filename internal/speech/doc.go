// Package speech integrates the kiosk's voice collaborators: Groq
// Whisper for transcribing shopper recordings and ElevenLabs for
// speaking the stylist's replies. Both are optional; without API keys
// the kiosk degrades to text-only conversation.
package speech
