// Package resilience provides a circuit breaker for outbound
// collaborator calls.
//
// The kiosk delegates its intelligence to hosted endpoints (inference,
// speech-to-text, text-to-speech). When one of them degrades, the
// breaker fails fast instead of stacking up slow requests behind a
// kiosk screen, and the conversation layer falls back to its mock
// generator or skips audio.
//
// States: Closed (normal), Open (failing fast), Half-Open (probing).
//
//	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
package resilience
