package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/iwantdrugsxd/mind-ease/internal/chat"
	"github.com/iwantdrugsxd/mind-ease/internal/intent"
	"github.com/iwantdrugsxd/mind-ease/internal/nlp"
	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	entconv "github.com/iwantdrugsxd/mind-ease/internal/repo/conversation"
	entmsg "github.com/iwantdrugsxd/mind-ease/internal/repo/message"
	entalert "github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	"github.com/iwantdrugsxd/mind-ease/internal/service/screening"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SendMessageRequest struct {
	PatientID uuid.UUID
	SessionID string
	Content   string
}

// SendMessageResponse pairs the stored turns with the signal extraction
// that produced the reply. RiskFlag mirrors the agent reply's risk so
// callers do not have to re-derive it from the stored user message.
type SendMessageResponse struct {
	Conversation *repo.Conversation
	UserMessage  *repo.Message
	AgentMessage *repo.Message
	RiskFlag     nlp.RiskLevel
	Intent       intent.Prediction
}

type ListMessagesRequest struct {
	PatientID uuid.UUID
	SessionID string
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// SendMessage appends a user turn, runs signal extraction and intent
	// classification over it, composes the agent reply and appends that as
	// a second turn. A critical risk flag also raises a crisis alert.
	SendMessage(ctx context.Context, req SendMessageRequest) (*SendMessageResponse, error)

	ListMessages(ctx context.Context, req ListMessagesRequest) ([]*repo.Message, error)
	ListConversations(ctx context.Context, patientID uuid.UUID) ([]*repo.Conversation, error)
	EndConversation(ctx context.Context, patientID uuid.UUID, sessionID string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type conversationService struct {
	db         *repo.Client
	nc         *nats.Conn
	model      *intent.Model
	screenings screening.Service
}

// New builds the chat service. model may be nil when the intent artifact
// could not be loaded; replies then degrade to emotion and keyword
// signals only.
func New(db *repo.Client, nc *nats.Conn, model *intent.Model, screenings screening.Service) Service {
	return &conversationService{db: db, nc: nc, model: model, screenings: screenings}
}

func (s *conversationService) SendMessage(ctx context.Context, req SendMessageRequest) (*SendMessageResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	conv, err := s.getOrCreate(ctx, req.PatientID, req.SessionID)
	if err != nil {
		return nil, err
	}

	signals := nlp.Detect(content)

	pred := intent.Prediction{Label: intent.LabelUnknown}
	if s.model != nil {
		pred = s.model.Classify(content, intent.DefaultConfidenceThreshold)
	}

	// Best effort: chat must keep answering even when the screening
	// history is unreachable.
	latestAction, err := s.screenings.LatestAction(ctx, req.PatientID)
	if err != nil {
		slog.Warn("conversation: latest triage action lookup failed",
			"patient_id", req.PatientID, "err", err)
		latestAction = nil
	}

	reply := chat.Compose(content, signals, pred, latestAction)

	userMsg := s.db.Message.Create().
		SetConversationID(conv.ID).
		SetSender(entmsg.SenderUser).
		SetContent(content).
		SetDetectedEmotion(string(signals.PrimaryEmotion)).
		SetEmotionConfidence(signals.Confidence).
		SetIntent(string(pred.Label)).
		SetIntentConfidence(pred.Confidence)
	if signals.RiskLevel != nlp.RiskNone {
		userMsg = userMsg.SetRiskLevel(entmsg.RiskLevel(signals.RiskLevel))
	}
	if len(signals.MatchedKeywords) > 0 {
		userMsg = userMsg.SetRiskKeywords(signals.MatchedKeywords)
	}

	stored, err := userMsg.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("store user message: %w", err)
	}

	if reply.RiskFlag == nlp.RiskCritical {
		s.raiseCrisisAlert(ctx, req.PatientID, signals)
	}

	agentMsg, err := s.db.Message.Create().
		SetConversationID(conv.ID).
		SetSender(entmsg.SenderAgent).
		SetContent(reply.Text).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("store agent message: %w", err)
	}

	conv, err = conv.Update().
		SetLastMessageAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("touch conversation: %w", err)
	}

	return &SendMessageResponse{
		Conversation: conv,
		UserMessage:  stored,
		AgentMessage: agentMsg,
		RiskFlag:     reply.RiskFlag,
		Intent:       pred,
	}, nil
}

func (s *conversationService) ListMessages(ctx context.Context, req ListMessagesRequest) ([]*repo.Message, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}

	conv, err := s.bySession(ctx, req.PatientID, req.SessionID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.db.Message.Query().
		Where(entmsg.ConversationID(conv.ID)).
		Order(entmsg.ByCreatedAt()).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *conversationService) ListConversations(ctx context.Context, patientID uuid.UUID) ([]*repo.Conversation, error) {
	convs, err := s.db.Conversation.Query().
		Where(entconv.PatientID(patientID)).
		Order(entconv.ByLastMessageAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (s *conversationService) EndConversation(ctx context.Context, patientID uuid.UUID, sessionID string) error {
	conv, err := s.bySession(ctx, patientID, sessionID)
	if err != nil {
		return err
	}

	_, err = conv.Update().
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("end conversation: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *conversationService) getOrCreate(ctx context.Context, patientID uuid.UUID, sessionID string) (*repo.Conversation, error) {
	conv, err := s.bySession(ctx, patientID, sessionID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	conv, err = s.db.Conversation.Create().
		SetPatientID(patientID).
		SetSessionID(sessionID).
		SetLastMessageAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			// concurrent first message for the same session
			return s.bySession(ctx, patientID, sessionID)
		}
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func (s *conversationService) bySession(ctx context.Context, patientID uuid.UUID, sessionID string) (*repo.Conversation, error) {
	conv, err := s.db.Conversation.Query().
		Where(entconv.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	if conv.PatientID != patientID {
		return nil, ErrNotOwner
	}
	return conv, nil
}

// raiseCrisisAlert records a crisis flag raised from chat. Failures are
// logged, not returned: the patient must still receive the crisis reply.
func (s *conversationService) raiseCrisisAlert(ctx context.Context, patientID uuid.UUID, signals nlp.Signals) {
	msg := "crisis language detected in chat"
	if len(signals.MatchedKeywords) > 0 {
		msg = fmt.Sprintf("crisis language detected in chat (%s)",
			strings.Join(signals.MatchedKeywords, ", "))
	}

	alert, err := s.db.ScreeningAlert.Create().
		SetPatientID(patientID).
		SetAlertType(entalert.AlertTypeCrisis).
		SetMessage(msg).
		Save(ctx)
	if err != nil {
		slog.Error("conversation: crisis alert write failed",
			"patient_id", patientID, "err", err)
		return
	}

	if s.nc != nil {
		subject := fmt.Sprintf("mindease.alert.created.%s", alert.ID.String())
		_ = s.nc.Publish(subject, []byte(patientID.String()))
	}
}
