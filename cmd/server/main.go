package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/config"
	"github.com/MayankBansal12/evol-kiosk/internal/server"
)

func main() {
	// Parse flags
	port := flag.String("port", "", "Server port (overrides PORT)")
	storageDir := flag.String("storage", "", "Session storage directory (overrides SESSION_STORAGE_DIR)")
	sessionTimeout := flag.Duration("session-timeout", 0, "Session inactivity timeout (overrides SESSION_TIMEOUT)")
	mockAI := flag.Bool("mock-ai", false, "Use the scripted stylist instead of Gemini")
	dev := flag.Bool("dev", false, "Development mode (colored logs, debug level)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// CLI flags override environment
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *storageDir != "" {
		cfg.Session.StorageDir = *storageDir
	}
	if *sessionTimeout > time.Duration(0) {
		cfg.Session.Timeout = *sessionTimeout
	}
	if *mockAI {
		cfg.AI.UseMock = true
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	}
}
