package ws

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/conversation"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/monitoring"
	"github.com/MayankBansal12/evol-kiosk/internal/session"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/id"
)

const turnTimeout = 2 * time.Minute

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // kiosk front-end runs on a separate origin
	},
}

// Message is one inbound client frame
type Message struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Language  string `json:"language,omitempty"`
	Text      string `json:"text,omitempty"`
	Audio     string `json:"audio,omitempty"`
}

// Handler manages WebSocket connections
type Handler struct {
	sessions     *session.Manager
	controller   *conversation.Controller
	pollInterval time.Duration
	logger       *logging.Logger
	metrics      *monitoring.Metrics
}

// NewHandler creates a new WebSocket handler
func NewHandler(
	sessions *session.Manager,
	controller *conversation.Controller,
	pollInterval time.Duration,
	logger *logging.Logger,
	metrics *monitoring.Metrics,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		sessions:     sessions,
		controller:   controller,
		pollInterval: pollInterval,
		logger:       logger.Named("ws"),
		metrics:      metrics,
	}
}

// client is the per-connection state: the socket, a write lock shared
// with the watcher goroutine, and the session being streamed.
type client struct {
	id      string
	conn    *websocket.Conn
	mu      sync.Mutex
	session id.SessionID
	watcher *session.Watcher
}

func (cl *client) send(h *Handler, payload interface{}, msgType string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if err := cl.conn.WriteJSON(payload); err != nil {
		return
	}
	if h.metrics != nil {
		h.metrics.RecordWSMessage("out", msgType)
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	cl := &client{id: uuid.NewString(), conn: conn}
	cl.watcher = session.NewWatcher(h.sessions, h.pollInterval, h.logger, func(ev session.Event) {
		h.pushLifecycle(cl, ev)
	})
	defer cl.watcher.Stop()

	if h.metrics != nil {
		h.metrics.WSConnections.Inc()
		defer h.metrics.WSConnections.Dec()
	}
	h.logger.Info("Kiosk connected", zap.String("client_id", cl.id))

	cl.send(h, gin.H{
		"type":    "system",
		"message": "Connected to Evol Kiosk Service (Go)",
	}, "system")

	reqCtx := c.Request.Context()
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			h.logger.Info("Kiosk disconnected", zap.String("client_id", cl.id))
			return
		}
		if h.metrics != nil {
			h.metrics.RecordWSMessage("in", msg.Type)
		}

		switch msg.Type {
		case "init":
			h.handleInit(reqCtx, cl, msg)
		case "answer":
			h.handleAnswer(reqCtx, cl, msg)
		case "voice":
			h.handleVoice(reqCtx, cl, msg)
		case "skip":
			h.handleSkip(reqCtx, cl)
		case "activity":
			h.handleActivity(cl)
		case "ping":
			cl.send(h, gin.H{"type": "pong"}, "pong")
		default:
			h.sendError(cl, "unknown message type")
		}
	}
}

func (h *Handler) handleInit(reqCtx context.Context, cl *client, msg Message) {
	ctx, cancel := context.WithTimeout(reqCtx, turnTimeout)
	defer cancel()

	result, err := h.controller.Start(ctx, msg.Name, msg.Language)
	if err != nil {
		h.sendError(cl, "failed to start conversation")
		return
	}

	cl.session = result.SessionID
	cl.watcher.Start(result.SessionID)

	cl.send(h, gin.H{
		"type":       "question",
		"session_id": result.SessionID,
		"restored":   result.Restored,
		"question":   result.Question,
	}, "question")
}

func (h *Handler) handleAnswer(reqCtx context.Context, cl *client, msg Message) {
	sid := cl.sessionFor(msg)
	if sid == "" {
		h.sendError(cl, "no active session")
		return
	}

	ctx, cancel := context.WithTimeout(reqCtx, turnTimeout)
	defer cancel()

	result, err := h.controller.SubmitAnswer(ctx, sid, msg.Text)
	h.pushResult(cl, result, err)
}

func (h *Handler) handleVoice(reqCtx context.Context, cl *client, msg Message) {
	sid := cl.sessionFor(msg)
	if sid == "" {
		h.sendError(cl, "no active session")
		return
	}

	audio, err := base64.StdEncoding.DecodeString(msg.Audio)
	if err != nil {
		h.sendError(cl, "audio must be base64 encoded")
		return
	}

	ctx, cancel := context.WithTimeout(reqCtx, turnTimeout)
	defer cancel()

	result, err := h.controller.SubmitVoice(ctx, sid, audio)
	h.pushResult(cl, result, err)
}

func (h *Handler) handleSkip(reqCtx context.Context, cl *client) {
	if cl.session == "" {
		h.sendError(cl, "no active session")
		return
	}

	ctx, cancel := context.WithTimeout(reqCtx, turnTimeout)
	defer cancel()

	result, err := h.controller.SkipToProducts(ctx, cl.session)
	h.pushResult(cl, result, err)
}

// handleActivity is the shopper pressing "I'm here" after a warning
func (h *Handler) handleActivity(cl *client) {
	if cl.session == "" {
		h.sendError(cl, "no active session")
		return
	}

	cl.watcher.Acknowledge(cl.session)
	cl.send(h, gin.H{
		"type":         "activity",
		"session_id":   cl.session,
		"remaining_ms": h.sessions.TimeUntilExpiry(cl.session).Milliseconds(),
	}, "activity")
}

// sessionFor prefers an explicit session id over the connection's own
func (cl *client) sessionFor(msg Message) id.SessionID {
	if msg.SessionID != "" {
		return id.SessionID(msg.SessionID)
	}
	return cl.session
}

func (h *Handler) pushResult(cl *client, result *conversation.Result, err error) {
	if err != nil {
		if errors.Is(err, conversation.ErrSessionExpired) {
			cl.watcher.Stop()
			cl.send(h, gin.H{"type": "timeout", "session_id": cl.session}, "timeout")
			return
		}
		h.logger.Error("Conversation turn failed", zap.Error(err))
		h.sendError(cl, "We encountered an issue with our styling assistant. Please try again.")
		return
	}

	if result.Done {
		cl.watcher.Stop()
		cl.send(h, gin.H{
			"type":            "products",
			"session_id":      result.SessionID,
			"category":        result.Category,
			"tags":            result.Tags,
			"metadata":        result.Metadata,
			"recommendations": result.Recommendations,
		}, "products")
		return
	}

	cl.send(h, gin.H{
		"type":       "question",
		"session_id": result.SessionID,
		"question":   result.Question,
		"transcript": result.Transcript,
	}, "question")
}

// pushLifecycle forwards watcher events to the shopper's screen
func (h *Handler) pushLifecycle(cl *client, ev session.Event) {
	switch ev.Type {
	case session.EventWarning:
		cl.send(h, gin.H{
			"type":         "warning",
			"session_id":   ev.SessionID,
			"remaining_ms": ev.Remaining.Milliseconds(),
		}, "warning")
	case session.EventTimeout:
		cl.send(h, gin.H{
			"type":       "timeout",
			"session_id": ev.SessionID,
		}, "timeout")
	}
}

func (h *Handler) sendError(cl *client, message string) {
	cl.send(h, gin.H{"type": "error", "error": message}, "error")
}
