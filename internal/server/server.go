package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/ai"
	apihttp "github.com/MayankBansal12/evol-kiosk/internal/api/http"
	"github.com/MayankBansal12/evol-kiosk/internal/api/middleware"
	"github.com/MayankBansal12/evol-kiosk/internal/api/ws"
	"github.com/MayankBansal12/evol-kiosk/internal/catalog"
	"github.com/MayankBansal12/evol-kiosk/internal/conversation"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/config"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/monitoring"
	"github.com/MayankBansal12/evol-kiosk/internal/session"
	"github.com/MayankBansal12/evol-kiosk/internal/speech"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	sessions *session.Manager
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	httpSrv  *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing Evol Kiosk Server",
		zap.String("port", cfg.Server.Port),
		zap.Duration("session_timeout", cfg.Session.Timeout),
	)

	metrics := monitoring.NewMetrics()

	// Session persistence: file-backed when a storage dir is set so
	// sessions survive a kiosk power cycle, otherwise in-memory.
	var backend session.Backend
	if cfg.Session.StorageDir != "" {
		fb, err := session.NewFileBackend(cfg.Session.StorageDir)
		if err != nil {
			return nil, err
		}
		backend = fb
		logger.Info("Session storage on disk", zap.String("dir", cfg.Session.StorageDir))
	} else {
		backend = session.NewMemoryBackend()
		logger.Info("Session storage in memory")
	}

	store := session.NewStore(backend, logger)
	sessions := session.NewManager(store, logger,
		session.WithTimeout(cfg.Session.Timeout),
		session.WithWarningWindow(cfg.Session.WarningWindow),
		session.WithMetrics(metrics),
	)

	// Stylist intelligence: the scripted mock stands in whenever the
	// hosted model is unavailable or explicitly disabled.
	var stylist ai.Client
	if cfg.AI.UseMock || cfg.AI.APIKey == "" {
		logger.Info("Using mock stylist")
		stylist = ai.NewMockClient()
	} else {
		logger.Info("Using Gemini stylist", zap.String("endpoint", cfg.AI.Endpoint))
		stylist = ai.NewGeminiClient(cfg.AI, logger, metrics)
	}

	var stt speech.Transcriber
	if cfg.Speech.GroqAPIKey != "" {
		stt = speech.NewGroqTranscriber(cfg.Speech, logger, metrics)
		logger.Info("Voice input enabled")
	}

	var tts speech.Synthesizer
	if cfg.Speech.ElevenAPIKey != "" {
		tts = speech.NewElevenLabsSynthesizer(cfg.Speech, logger, metrics)
		logger.Info("Voice output enabled")
	}

	inventory := catalog.New()
	controller := conversation.NewController(sessions, stylist, stt, inventory, logger, metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS())
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(cfg.RateLimit))
	}

	handlers := apihttp.NewHandlers(sessions, controller, tts, inventory, logger)
	wsHandler := ws.NewHandler(sessions, controller, cfg.Session.PollInterval, logger, metrics)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Session lifecycle
	router.POST("/session/init", handlers.InitSession)
	router.GET("/session/:id", handlers.GetSession)
	router.POST("/session/:id/activity", handlers.TouchSession)
	router.GET("/session/:id/expiry", handlers.SessionExpiry)
	router.DELETE("/session/:id", handlers.DeleteSession)
	router.DELETE("/session", handlers.DeleteCurrentSession)

	// Conversation
	router.POST("/conversation/start", handlers.StartConversation)
	router.POST("/conversation/answer", handlers.SubmitAnswer)
	router.POST("/conversation/voice", handlers.SubmitVoice)
	router.POST("/conversation/skip", handlers.SkipToProducts)

	// Speech
	router.POST("/speech/synthesize", handlers.Synthesize)

	// Catalog
	router.GET("/products", handlers.ListProducts)
	router.GET("/products/:id", handlers.GetProduct)
	router.POST("/recommendations", handlers.Recommend)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		sessions: sessions,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Router exposes the gin engine, for tests
func (s *Server) Router() *gin.Engine { return s.router }

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
			return err
		}
	}

	_ = s.logger.Sync()
	return nil
}
