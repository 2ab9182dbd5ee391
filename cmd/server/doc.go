// Package main is the entry point for the Evol kiosk service.
//
// This application runs the in-store jewelry kiosk backend: it owns
// the guided styling conversation, the idle-timeout session lifecycle,
// and the product recommendation engine the kiosk screen renders.
//
// Architecture:
//
//	Kiosk UI → Go Service → Gemini (stylist questions)
//	                     → Groq Whisper (voice input)
//	                     → ElevenLabs (voice output)
//
// The server provides:
//   - REST API for sessions, conversation turns, and the catalog
//   - WebSocket streaming with expiry warnings pushed to the screen
//   - Session persistence (in-memory or on-disk)
//   - Rate limiting and Prometheus metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -storage /var/lib/evol-kiosk/sessions
//
//	# Development mode (colored logs, scripted stylist)
//	./server -dev -mock-ai
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
