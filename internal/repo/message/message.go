// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldSender holds the string denoting the sender field in the database.
	FieldSender = "sender"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldDetectedEmotion holds the string denoting the detected_emotion field in the database.
	FieldDetectedEmotion = "detected_emotion"
	// FieldEmotionConfidence holds the string denoting the emotion_confidence field in the database.
	FieldEmotionConfidence = "emotion_confidence"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldRiskKeywords holds the string denoting the risk_keywords field in the database.
	FieldRiskKeywords = "risk_keywords"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldIntentConfidence holds the string denoting the intent_confidence field in the database.
	FieldIntentConfidence = "intent_confidence"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// Table holds the table name of the message in the database.
	Table = "messages"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "messages"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldConversationID,
	FieldSender,
	FieldContent,
	FieldDetectedEmotion,
	FieldEmotionConfidence,
	FieldRiskLevel,
	FieldRiskKeywords,
	FieldIntent,
	FieldIntentConfidence,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DetectedEmotionValidator is a validator for the "detected_emotion" field. It is called by the builders before save.
	DetectedEmotionValidator func(string) error
	// IntentValidator is a validator for the "intent" field. It is called by the builders before save.
	IntentValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Sender defines the type for the "sender" enum field.
type Sender string

// Sender values.
const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

func (s Sender) String() string {
	return string(s)
}

// SenderValidator is a validator for the "sender" field enum values. It is called by the builders before save.
func SenderValidator(s Sender) error {
	switch s {
	case SenderUser, SenderAgent:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for sender field: %q", s)
	}
}

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevel values.
const (
	RiskLevelNone     RiskLevel = "none"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelNone, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for risk_level field: %q", rl)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// BySender orders the results by the sender field.
func BySender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSender, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByDetectedEmotion orders the results by the detected_emotion field.
func ByDetectedEmotion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedEmotion, opts...).ToFunc()
}

// ByEmotionConfidence orders the results by the emotion_confidence field.
func ByEmotionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmotionConfidence, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByIntentConfidence orders the results by the intent_confidence field.
func ByIntentConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentConfidence, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
	)
}
