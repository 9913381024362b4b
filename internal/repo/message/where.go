// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConversationID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// DetectedEmotion applies equality check predicate on the "detected_emotion" field. It's identical to DetectedEmotionEQ.
func DetectedEmotion(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDetectedEmotion, v))
}

// EmotionConfidence applies equality check predicate on the "emotion_confidence" field. It's identical to EmotionConfidenceEQ.
func EmotionConfidence(v float64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldEmotionConfidence, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIntent, v))
}

// IntentConfidence applies equality check predicate on the "intent_confidence" field. It's identical to IntentConfidenceEQ.
func IntentConfidence(v float64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIntentConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldConversationID, vs...))
}

// SenderEQ applies the EQ predicate on the "sender" field.
func SenderEQ(v Sender) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSender, v))
}

// SenderNEQ applies the NEQ predicate on the "sender" field.
func SenderNEQ(v Sender) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSender, v))
}

// SenderIn applies the In predicate on the "sender" field.
func SenderIn(vs ...Sender) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSender, vs...))
}

// SenderNotIn applies the NotIn predicate on the "sender" field.
func SenderNotIn(vs ...Sender) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSender, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// DetectedEmotionEQ applies the EQ predicate on the "detected_emotion" field.
func DetectedEmotionEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDetectedEmotion, v))
}

// DetectedEmotionNEQ applies the NEQ predicate on the "detected_emotion" field.
func DetectedEmotionNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldDetectedEmotion, v))
}

// DetectedEmotionIn applies the In predicate on the "detected_emotion" field.
func DetectedEmotionIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldDetectedEmotion, vs...))
}

// DetectedEmotionNotIn applies the NotIn predicate on the "detected_emotion" field.
func DetectedEmotionNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldDetectedEmotion, vs...))
}

// DetectedEmotionGT applies the GT predicate on the "detected_emotion" field.
func DetectedEmotionGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldDetectedEmotion, v))
}

// DetectedEmotionGTE applies the GTE predicate on the "detected_emotion" field.
func DetectedEmotionGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldDetectedEmotion, v))
}

// DetectedEmotionLT applies the LT predicate on the "detected_emotion" field.
func DetectedEmotionLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldDetectedEmotion, v))
}

// DetectedEmotionLTE applies the LTE predicate on the "detected_emotion" field.
func DetectedEmotionLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldDetectedEmotion, v))
}

// DetectedEmotionContains applies the Contains predicate on the "detected_emotion" field.
func DetectedEmotionContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldDetectedEmotion, v))
}

// DetectedEmotionHasPrefix applies the HasPrefix predicate on the "detected_emotion" field.
func DetectedEmotionHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldDetectedEmotion, v))
}

// DetectedEmotionHasSuffix applies the HasSuffix predicate on the "detected_emotion" field.
func DetectedEmotionHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldDetectedEmotion, v))
}

// DetectedEmotionIsNil applies the IsNil predicate on the "detected_emotion" field.
func DetectedEmotionIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldDetectedEmotion))
}

// DetectedEmotionNotNil applies the NotNil predicate on the "detected_emotion" field.
func DetectedEmotionNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldDetectedEmotion))
}

// DetectedEmotionEqualFold applies the EqualFold predicate on the "detected_emotion" field.
func DetectedEmotionEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldDetectedEmotion, v))
}

// DetectedEmotionContainsFold applies the ContainsFold predicate on the "detected_emotion" field.
func DetectedEmotionContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldDetectedEmotion, v))
}

// EmotionConfidenceEQ applies the EQ predicate on the "emotion_confidence" field.
func EmotionConfidenceEQ(v float64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldEmotionConfidence, v))
}

// EmotionConfidenceNEQ applies the NEQ predicate on the "emotion_confidence" field.
func EmotionConfidenceNEQ(v float64) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldEmotionConfidence, v))
}

// EmotionConfidenceIn applies the In predicate on the "emotion_confidence" field.
func EmotionConfidenceIn(vs ...float64) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldEmotionConfidence, vs...))
}

// EmotionConfidenceNotIn applies the NotIn predicate on the "emotion_confidence" field.
func EmotionConfidenceNotIn(vs ...float64) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldEmotionConfidence, vs...))
}

// EmotionConfidenceGT applies the GT predicate on the "emotion_confidence" field.
func EmotionConfidenceGT(v float64) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldEmotionConfidence, v))
}

// EmotionConfidenceGTE applies the GTE predicate on the "emotion_confidence" field.
func EmotionConfidenceGTE(v float64) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldEmotionConfidence, v))
}

// EmotionConfidenceLT applies the LT predicate on the "emotion_confidence" field.
func EmotionConfidenceLT(v float64) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldEmotionConfidence, v))
}

// EmotionConfidenceLTE applies the LTE predicate on the "emotion_confidence" field.
func EmotionConfidenceLTE(v float64) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldEmotionConfidence, v))
}

// EmotionConfidenceIsNil applies the IsNil predicate on the "emotion_confidence" field.
func EmotionConfidenceIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldEmotionConfidence))
}

// EmotionConfidenceNotNil applies the NotNil predicate on the "emotion_confidence" field.
func EmotionConfidenceNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldEmotionConfidence))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelIsNil applies the IsNil predicate on the "risk_level" field.
func RiskLevelIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldRiskLevel))
}

// RiskLevelNotNil applies the NotNil predicate on the "risk_level" field.
func RiskLevelNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldRiskLevel))
}

// RiskKeywordsIsNil applies the IsNil predicate on the "risk_keywords" field.
func RiskKeywordsIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldRiskKeywords))
}

// RiskKeywordsNotNil applies the NotNil predicate on the "risk_keywords" field.
func RiskKeywordsNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldRiskKeywords))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentIsNil applies the IsNil predicate on the "intent" field.
func IntentIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldIntent))
}

// IntentNotNil applies the NotNil predicate on the "intent" field.
func IntentNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldIntent))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldIntent, v))
}

// IntentConfidenceEQ applies the EQ predicate on the "intent_confidence" field.
func IntentConfidenceEQ(v float64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIntentConfidence, v))
}

// IntentConfidenceNEQ applies the NEQ predicate on the "intent_confidence" field.
func IntentConfidenceNEQ(v float64) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldIntentConfidence, v))
}

// IntentConfidenceIn applies the In predicate on the "intent_confidence" field.
func IntentConfidenceIn(vs ...float64) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldIntentConfidence, vs...))
}

// IntentConfidenceNotIn applies the NotIn predicate on the "intent_confidence" field.
func IntentConfidenceNotIn(vs ...float64) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldIntentConfidence, vs...))
}

// IntentConfidenceGT applies the GT predicate on the "intent_confidence" field.
func IntentConfidenceGT(v float64) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldIntentConfidence, v))
}

// IntentConfidenceGTE applies the GTE predicate on the "intent_confidence" field.
func IntentConfidenceGTE(v float64) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldIntentConfidence, v))
}

// IntentConfidenceLT applies the LT predicate on the "intent_confidence" field.
func IntentConfidenceLT(v float64) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldIntentConfidence, v))
}

// IntentConfidenceLTE applies the LTE predicate on the "intent_confidence" field.
func IntentConfidenceLTE(v float64) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldIntentConfidence, v))
}

// IntentConfidenceIsNil applies the IsNil predicate on the "intent_confidence" field.
func IntentConfidenceIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldIntentConfidence))
}

// IntentConfidenceNotNil applies the NotNil predicate on the "intent_confidence" field.
func IntentConfidenceNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldIntentConfidence))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
