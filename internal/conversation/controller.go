package conversation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MayankBansal12/evol-kiosk/internal/ai"
	"github.com/MayankBansal12/evol-kiosk/internal/catalog"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/monitoring"
	"github.com/MayankBansal12/evol-kiosk/internal/session"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/id"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/types"
	"github.com/MayankBansal12/evol-kiosk/internal/speech"
)

// DefaultRecommendationLimit caps how many pieces one survey surfaces
const DefaultRecommendationLimit = 9

const (
	skipMessage  = "I'd like to skip to see products now"
	forceMessage = "Please show me jewelry products now"
)

// ErrSessionExpired is returned when the referenced session no longer
// exists or idled out.
var ErrSessionExpired = errors.New("session expired or not found")

// Result is the outcome of one conversation operation. Exactly one of
// Question or Recommendations is populated; Done marks the terminal
// products state.
type Result struct {
	SessionID       id.SessionID             `json:"session_id"`
	Restored        bool                     `json:"restored,omitempty"`
	Question        *types.Question          `json:"question,omitempty"`
	Recommendations []catalog.Recommendation `json:"recommendations,omitempty"`
	Category        string                   `json:"category,omitempty"`
	Tags            []string                 `json:"tags,omitempty"`
	Metadata        map[string]interface{}   `json:"metadata,omitempty"`
	Transcript      string                   `json:"transcript,omitempty"`
	Done            bool                     `json:"done"`
}

// Controller drives one kiosk's survey conversations
type Controller struct {
	sessions *session.Manager
	stylist  ai.Client
	stt      speech.Transcriber
	catalog  *catalog.Catalog
	limit    int
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewController wires the turn loop's collaborators. stt may be nil
// when transcription is not configured.
func NewController(
	sessions *session.Manager,
	stylist ai.Client,
	stt speech.Transcriber,
	cat *catalog.Catalog,
	logger *logging.Logger,
	metrics *monitoring.Metrics,
) *Controller {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Controller{
		sessions: sessions,
		stylist:  stylist,
		stt:      stt,
		catalog:  cat,
		limit:    DefaultRecommendationLimit,
		logger:   logger.Named("conversation"),
		metrics:  metrics,
	}
}

// Start opens or resumes the survey. A restored session with turns
// returns its stored question; otherwise the stylist is asked for the
// opening question and the fresh state is persisted.
func (c *Controller) Start(ctx context.Context, userName, language string) (*Result, error) {
	init := c.sessions.InitSession()

	if init.Restored && init.Data != nil && len(init.Data.Messages) > 0 {
		c.logger.Info("Resuming conversation",
			zap.String("session_id", init.SessionID.String()),
			zap.Int("turns", len(init.Data.Messages)),
		)
		return &Result{
			SessionID: init.SessionID,
			Restored:  true,
			Question:  init.Data.CurrentQuestion,
		}, nil
	}

	rec, ok := c.sessions.GetSessionData(init.SessionID)
	if !ok {
		rec = &session.Record{}
	}
	rec.UserName = userName
	rec.Language = language
	rec.State = types.StateSurvey

	resp, err := c.stylist.Respond(ctx, nil, userName, language)
	if err != nil {
		return nil, fmt.Errorf("opening question: %w", err)
	}

	question := &types.Question{Message: resp.Message, Options: resp.Options}
	rec.Messages = append(rec.Messages, types.Turn{Role: types.RoleAssistant, Content: resp.Message})
	rec.CurrentQuestion = question
	c.sessions.SaveSessionData(init.SessionID, rec)
	if c.metrics != nil {
		c.metrics.RecordTurn(string(types.RoleAssistant), "text")
	}

	return &Result{SessionID: init.SessionID, Question: question}, nil
}

// SubmitAnswer feeds one shopper answer to the stylist and persists
// both turns. A products reply ends the survey: recommendations are
// resolved against the catalog and the session is cleared.
func (c *Controller) SubmitAnswer(ctx context.Context, sid id.SessionID, text string) (*Result, error) {
	return c.advance(ctx, sid, text, "text", false)
}

// SubmitVoice transcribes a shopper recording and submits it as the
// answer. The transcript is echoed back in the result.
func (c *Controller) SubmitVoice(ctx context.Context, sid id.SessionID, audio []byte) (*Result, error) {
	if c.stt == nil {
		return nil, speech.ErrTranscriptionDisabled
	}

	transcript, err := c.stt.Transcribe(ctx, audio)
	if err != nil {
		return nil, err
	}

	result, err := c.advance(ctx, sid, transcript, "voice", false)
	if err != nil {
		return nil, err
	}
	result.Transcript = transcript
	return result, nil
}

// SkipToProducts ends the survey early. If the stylist still answers
// with a question, one forced request is made before giving up and
// returning that question.
func (c *Controller) SkipToProducts(ctx context.Context, sid id.SessionID) (*Result, error) {
	result, err := c.advance(ctx, sid, skipMessage, "text", false)
	if err != nil || result.Done {
		return result, err
	}
	return c.advance(ctx, sid, forceMessage, "text", true)
}

// advance appends the user turn, asks the stylist, and routes the
// reply. forced marks the second attempt of a skip, which accepts a
// question reply as final rather than retrying again.
func (c *Controller) advance(ctx context.Context, sid id.SessionID, text, source string, forced bool) (*Result, error) {
	rec, ok := c.sessions.GetSessionData(sid)
	if !ok {
		return nil, ErrSessionExpired
	}

	rec.Messages = append(rec.Messages, types.Turn{Role: types.RoleUser, Content: text})
	if c.metrics != nil {
		c.metrics.RecordTurn(string(types.RoleUser), source)
	}

	resp, err := c.stylist.Respond(ctx, rec.Messages, rec.UserName, rec.Language)
	if err != nil {
		// Keep the user's turn even though the stylist call failed,
		// so a retry carries the full history.
		c.sessions.SaveSessionData(sid, rec)
		return nil, fmt.Errorf("stylist: %w", err)
	}

	if resp.IsProducts() {
		return c.complete(sid, rec, resp)
	}

	question := &types.Question{Message: resp.Message, Options: resp.Options}
	rec.Messages = append(rec.Messages, types.Turn{Role: types.RoleAssistant, Content: resp.Message})
	rec.CurrentQuestion = question
	c.sessions.SaveSessionData(sid, rec)
	if c.metrics != nil {
		c.metrics.RecordTurn(string(types.RoleAssistant), "text")
	}

	return &Result{SessionID: sid, Question: question}, nil
}

// complete resolves the terminal product query and retires the session
func (c *Controller) complete(sid id.SessionID, rec *session.Record, resp *ai.Response) (*Result, error) {
	recs := c.catalog.Recommend(resp.Category, resp.Tags, resp.Metadata, c.limit)

	c.logger.Info("Survey complete",
		zap.String("session_id", sid.String()),
		zap.String("category", resp.Category),
		zap.Strings("tags", resp.Tags),
		zap.Int("recommendations", len(recs)),
		zap.Int("turns", len(rec.Messages)),
	)

	c.sessions.ClearSession(sid)
	if c.metrics != nil {
		c.metrics.ConversationsDone.Inc()
		c.metrics.RecommendationsServed.Add(float64(len(recs)))
	}

	return &Result{
		SessionID:       sid,
		Recommendations: recs,
		Category:        resp.Category,
		Tags:            resp.Tags,
		Metadata:        resp.Metadata,
		Done:            true,
	}, nil
}
