// Package monitoring provides Prometheus metrics for the kiosk backend.
//
// Metrics cover the HTTP surface, the session lifecycle (created,
// restored, expired), conversation turns, external collaborator calls
// (inference, speech-to-text, text-to-speech), and WebSocket traffic.
//
// Each Metrics instance owns its registry, so tests can construct one
// without colliding with the process-global default registry.
package monitoring
