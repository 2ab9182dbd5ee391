package http

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/catalog"
	"github.com/MayankBansal12/evol-kiosk/internal/conversation"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/session"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/id"
	"github.com/MayankBansal12/evol-kiosk/internal/speech"
)

// maxAudioBytes bounds a voice upload; kiosk clips are a few seconds
const maxAudioBytes = 10 << 20

// Handlers contains all HTTP handlers
type Handlers struct {
	sessions   *session.Manager
	controller *conversation.Controller
	tts        speech.Synthesizer
	catalog    *catalog.Catalog
	logger     *logging.Logger
}

// NewHandlers creates a new handler set. tts may be nil when speech
// synthesis is not configured.
func NewHandlers(
	sessions *session.Manager,
	controller *conversation.Controller,
	tts speech.Synthesizer,
	cat *catalog.Catalog,
	logger *logging.Logger,
) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		sessions:   sessions,
		controller: controller,
		tts:        tts,
		catalog:    cat,
		logger:     logger.Named("http"),
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Evol Kiosk Service (Go)",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"session_expiry": h.sessions.Timeout().String(),
		"products":       len(h.catalog.All()),
		"tts":            gin.H{"configured": h.tts != nil},
	})
}

// InitSession restores the current session or starts a fresh one
func (h *Handlers) InitSession(c *gin.Context) {
	result := h.sessions.InitSession()

	c.JSON(http.StatusOK, gin.H{
		"session_id": result.SessionID,
		"restored":   result.Restored,
		"data":       result.Data,
	})
}

// GetSession returns a live session's record
func (h *Handlers) GetSession(c *gin.Context) {
	sid := id.SessionID(c.Param("id"))

	rec, ok := h.sessions.GetSessionData(sid)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "session expired or not found",
			"restored": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sid,
		"data":       rec,
	})
}

// TouchSession refreshes activity, the shopper's "I'm here"
func (h *Handlers) TouchSession(c *gin.Context) {
	sid := id.SessionID(c.Param("id"))

	if !h.sessions.UpdateLastActivity(sid) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session expired or not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":   sid,
		"remaining_ms": h.sessions.TimeUntilExpiry(sid).Milliseconds(),
	})
}

// SessionExpiry reports the session's idle countdown
func (h *Handlers) SessionExpiry(c *gin.Context) {
	sid := id.SessionID(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"session_id":      sid,
		"remaining_ms":    h.sessions.TimeUntilExpiry(sid).Milliseconds(),
		"about_to_expire": h.sessions.AboutToExpire(sid),
	})
}

// DeleteSession clears one session by id
func (h *Handlers) DeleteSession(c *gin.Context) {
	sid := id.SessionID(c.Param("id"))
	h.sessions.ClearSession(sid)

	c.JSON(http.StatusOK, gin.H{"session_id": sid, "cleared": true})
}

// DeleteCurrentSession clears whichever session is current
func (h *Handlers) DeleteCurrentSession(c *gin.Context) {
	h.sessions.ClearCurrentSession()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

type startRequest struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

// StartConversation opens or resumes the survey
func (h *Handlers) StartConversation(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.controller.Start(c.Request.Context(), req.Name, req.Language)
	if err != nil {
		h.logger.Error("Failed to start conversation", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "We encountered an issue with our styling assistant. Please try again."})
		return
	}

	c.JSON(http.StatusOK, result)
}

type answerRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// SubmitAnswer feeds one typed answer into the survey
func (h *Handlers) SubmitAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id and text are required"})
		return
	}

	result, err := h.controller.SubmitAnswer(c.Request.Context(), id.SessionID(req.SessionID), req.Text)
	h.respondConversation(c, result, err)
}

// SubmitVoice feeds one spoken answer into the survey. The audio
// arrives as a multipart file field named "audio".
func (h *Handlers) SubmitVoice(c *gin.Context) {
	sid := c.PostForm("session_id")
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	file, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	if file.Size > maxAudioBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "audio file too large"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable audio file"})
		return
	}
	defer f.Close()

	audio, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable audio file"})
		return
	}

	result, err := h.controller.SubmitVoice(c.Request.Context(), id.SessionID(sid), audio)
	if err != nil {
		switch {
		case errors.Is(err, speech.ErrTranscriptionDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, speech.ErrUnsupportedAudio):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		default:
			h.respondConversation(c, nil, err)
		}
		return
	}
	h.respondConversation(c, result, nil)
}

type skipRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// SkipToProducts ends the survey early
func (h *Handlers) SkipToProducts(c *gin.Context) {
	var req skipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	result, err := h.controller.SkipToProducts(c.Request.Context(), id.SessionID(req.SessionID))
	h.respondConversation(c, result, err)
}

func (h *Handlers) respondConversation(c *gin.Context, result *conversation.Result, err error) {
	if err != nil {
		if errors.Is(err, conversation.ErrSessionExpired) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "restored": false})
			return
		}
		h.logger.Error("Conversation turn failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "We encountered an issue with our styling assistant. Please try again."})
		return
	}
	c.JSON(http.StatusOK, result)
}

type synthesizeRequest struct {
	Text string `json:"text" binding:"required"`
}

// Synthesize speaks a stylist reply, returning base64 MP3
func (h *Handlers) Synthesize(c *gin.Context) {
	var req synthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	if h.tts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "TTS is not enabled"})
		return
	}

	audio, err := h.tts.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, speech.ErrSynthesisDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Speech synthesis failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate speech"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"audio_data":   base64.StdEncoding.EncodeToString(audio.Data),
		"audio_format": audio.Format,
	})
}

// ListProducts returns the inventory, optionally filtered by category
func (h *Handlers) ListProducts(c *gin.Context) {
	category := c.Query("category")

	products := h.catalog.ByCategory(category)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one product by id
func (h *Handlers) GetProduct(c *gin.Context) {
	product, ok := h.catalog.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":       product,
		"display_price": product.DisplayPrice(),
		"category_name": catalog.CategoryDisplayName(product.Category),
	})
}

type recommendRequest struct {
	Category string                 `json:"category"`
	Tags     []string               `json:"tags"`
	Metadata map[string]interface{} `json:"metadata"`
	Limit    int                    `json:"limit"`
}

// Recommend runs a stylist query against the catalog directly, the
// path the recommendations page uses on reload.
func (h *Handlers) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = conversation.DefaultRecommendationLimit
	}

	recs := h.catalog.Recommend(req.Category, req.Tags, req.Metadata, limit)
	c.JSON(http.StatusOK, gin.H{
		"recommendations": recs,
		"category":        req.Category,
		"tags":            req.Tags,
	})
}
