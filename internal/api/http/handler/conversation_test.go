package handler

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	"github.com/iwantdrugsxd/mind-ease/internal/service/conversation"
	"github.com/iwantdrugsxd/mind-ease/internal/service/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/service/screening"
	"github.com/iwantdrugsxd/mind-ease/internal/triage"
	pasetotoken "github.com/iwantdrugsxd/mind-ease/pkg/paseto"
)

type fakePatientService struct {
	patient *repo.Patient
}

func (f *fakePatientService) Get(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientService) UpdateProfile(ctx context.Context, patientID uuid.UUID, req patient.UpdateProfileRequest) (*repo.Patient, error) {
	return f.patient, nil
}

type fakeConversationService struct {
	resp *conversation.SendMessageResponse
}

func (f *fakeConversationService) SendMessage(ctx context.Context, req conversation.SendMessageRequest) (*conversation.SendMessageResponse, error) {
	return f.resp, nil
}

func (f *fakeConversationService) ListMessages(ctx context.Context, req conversation.ListMessagesRequest) ([]*repo.Message, error) {
	return nil, nil
}

func (f *fakeConversationService) ListConversations(ctx context.Context, patientID uuid.UUID) ([]*repo.Conversation, error) {
	return nil, nil
}

func (f *fakeConversationService) EndConversation(ctx context.Context, patientID uuid.UUID, sessionID string) error {
	return nil
}

type fakeScreeningService struct {
	resp *screening.SubmitResponse
}

func (f *fakeScreeningService) Submit(ctx context.Context, req screening.SubmitRequest) (*screening.SubmitResponse, error) {
	return f.resp, nil
}

func (f *fakeScreeningService) Get(ctx context.Context, resultID uuid.UUID) (*repo.ScreeningResult, error) {
	return nil, nil
}

func (f *fakeScreeningService) History(ctx context.Context, req screening.HistoryRequest) ([]*repo.ScreeningResult, error) {
	return nil, nil
}

func (f *fakeScreeningService) Reevaluate(ctx context.Context, resultID uuid.UUID) (*triage.Action, error) {
	return nil, nil
}

func (f *fakeScreeningService) LatestAction(ctx context.Context, patientID uuid.UUID) (*triage.Action, error) {
	return nil, nil
}

func authedApp(t *testing.T, userID uuid.UUID) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals(pasetotoken.CtxKeyClaims, &pasetotoken.Claims{UserID: userID})
		return c.Next()
	})
	return app
}

func decodeData(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out.Data
}

func TestSendMessageResponseCarriesEmotionAnnotations(t *testing.T) {
	userID := uuid.New()
	patientID := uuid.New()
	userMsgID := uuid.New()

	h := NewConversationHandler(
		&fakeConversationService{resp: &conversation.SendMessageResponse{
			UserMessage: &repo.Message{
				ID:                userMsgID,
				Content:           "I feel very anxious today",
				DetectedEmotion:   "anxious",
				EmotionConfidence: 0.8,
			},
			AgentMessage: &repo.Message{
				ID:      uuid.New(),
				Content: "I hear that you're feeling anxious.",
			},
			RiskFlag: "medium",
		}},
		&fakePatientService{patient: &repo.Patient{ID: patientID, UserID: userID}},
	)

	app := authedApp(t, userID)
	app.Post("/chat/messages", h.SendMessage)

	req := httptest.NewRequest("POST", "/chat/messages",
		strings.NewReader(`{"session_id":"s-1","content":"I feel very anxious today"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	data := decodeData(t, raw)

	if data["reply"] != "I hear that you're feeling anxious." {
		t.Errorf("reply = %v, want the agent message content", data["reply"])
	}
	if data["risk_flag"] != "medium" {
		t.Errorf("risk_flag = %v, want medium", data["risk_flag"])
	}
	if data["detected_emotion"] != "anxious" {
		t.Errorf("detected_emotion = %v, want anxious", data["detected_emotion"])
	}
	conf, ok := data["emotion_confidence"].(float64)
	if !ok || math.Abs(conf-0.8) > 1e-9 {
		t.Errorf("emotion_confidence = %v, want 0.8", data["emotion_confidence"])
	}
	if data["message_id"] != userMsgID.String() {
		t.Errorf("message_id = %v, want the stored user message id", data["message_id"])
	}
}

func TestSubmitScreeningAlertActionCarriesWindowDays(t *testing.T) {
	userID := uuid.New()
	patientID := uuid.New()

	h := NewScreeningHandler(
		&fakeScreeningService{resp: &screening.SubmitResponse{
			Result: &repo.ScreeningResult{ID: uuid.New(), PatientID: patientID},
			Action: triage.Action{
				Type:       triage.ActionClinicianAlert,
				Reason:     "score worsened sharply within the trend window",
				DeltaScore: 6,
				WindowDays: 14,
			},
		}},
		&fakePatientService{patient: &repo.Patient{ID: patientID, UserID: userID}},
	)

	app := authedApp(t, userID)
	app.Post("/screenings", h.Submit)

	req := httptest.NewRequest("POST", "/screenings",
		strings.NewReader(`{"instrument":"phq9","answers":[1,1,1,1,1,1,1,1,1]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	data := decodeData(t, raw)

	action, ok := data["action"].(map[string]any)
	if !ok {
		t.Fatalf("action missing from response: %v", data)
	}
	if got, ok := action["delta_score"].(float64); !ok || got != 6 {
		t.Errorf("action.delta_score = %v, want 6", action["delta_score"])
	}
	if got, ok := action["window_days"].(float64); !ok || got != 14 {
		t.Errorf("action.window_days = %v, want 14", action["window_days"])
	}
}
