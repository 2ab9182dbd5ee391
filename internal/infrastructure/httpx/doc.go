// Package httpx provides the outbound HTTP client used to call the
// kiosk's external collaborators (inference, speech-to-text,
// text-to-speech). It layers resty on a retryablehttp transport and
// guards every call with a per-collaborator circuit breaker and an
// optional rate limiter.
package httpx
