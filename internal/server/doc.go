// Package server provides HTTP server setup and initialization for the
// Evol kiosk backend.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (request IDs, CORS, rate limiting, recovery)
//   - Session store, manager, and expiry watcher
//   - Stylist client selection (Gemini or scripted mock)
//   - Speech-to-text and text-to-speech clients
//   - Product catalog and recommendation engine
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Pick the session backend (disk or memory)
//  4. Wire the stylist, speech, and catalog collaborators
//  5. Setup HTTP routes and middleware
//  6. Start HTTP server
//  7. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
