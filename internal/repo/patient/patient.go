// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDateOfBirth holds the string denoting the date_of_birth field in the database.
	FieldDateOfBirth = "date_of_birth"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// FieldEmergencyContact holds the string denoting the emergency_contact field in the database.
	FieldEmergencyContact = "emergency_contact"
	// FieldEmergencyPhone holds the string denoting the emergency_phone field in the database.
	FieldEmergencyPhone = "emergency_phone"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeScreenings holds the string denoting the screenings edge name in mutations.
	EdgeScreenings = "screenings"
	// EdgeAlerts holds the string denoting the alerts edge name in mutations.
	EdgeAlerts = "alerts"
	// EdgeReferrals holds the string denoting the referrals edge name in mutations.
	EdgeReferrals = "referrals"
	// EdgeConversations holds the string denoting the conversations edge name in mutations.
	EdgeConversations = "conversations"
	// EdgeMoodEntries holds the string denoting the mood_entries edge name in mutations.
	EdgeMoodEntries = "mood_entries"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "patients"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// ScreeningsTable is the table that holds the screenings relation/edge.
	ScreeningsTable = "screening_results"
	// ScreeningsInverseTable is the table name for the ScreeningResult entity.
	// It exists in this package in order to avoid circular dependency with the "screeningresult" package.
	ScreeningsInverseTable = "screening_results"
	// ScreeningsColumn is the table column denoting the screenings relation/edge.
	ScreeningsColumn = "patient_id"
	// AlertsTable is the table that holds the alerts relation/edge.
	AlertsTable = "screening_alerts"
	// AlertsInverseTable is the table name for the ScreeningAlert entity.
	// It exists in this package in order to avoid circular dependency with the "screeningalert" package.
	AlertsInverseTable = "screening_alerts"
	// AlertsColumn is the table column denoting the alerts relation/edge.
	AlertsColumn = "patient_id"
	// ReferralsTable is the table that holds the referrals relation/edge.
	ReferralsTable = "teleconsult_referrals"
	// ReferralsInverseTable is the table name for the TeleconsultReferral entity.
	// It exists in this package in order to avoid circular dependency with the "teleconsultreferral" package.
	ReferralsInverseTable = "teleconsult_referrals"
	// ReferralsColumn is the table column denoting the referrals relation/edge.
	ReferralsColumn = "patient_id"
	// ConversationsTable is the table that holds the conversations relation/edge.
	ConversationsTable = "conversations"
	// ConversationsInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationsInverseTable = "conversations"
	// ConversationsColumn is the table column denoting the conversations relation/edge.
	ConversationsColumn = "patient_id"
	// MoodEntriesTable is the table that holds the mood_entries relation/edge.
	MoodEntriesTable = "mood_entries"
	// MoodEntriesInverseTable is the table name for the MoodEntry entity.
	// It exists in this package in order to avoid circular dependency with the "moodentry" package.
	MoodEntriesInverseTable = "mood_entries"
	// MoodEntriesColumn is the table column denoting the mood_entries relation/edge.
	MoodEntriesColumn = "patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldUserID,
	FieldDateOfBirth,
	FieldPhoneNumber,
	FieldEmergencyContact,
	FieldEmergencyPhone,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	PhoneNumberValidator func(string) error
	// EmergencyContactValidator is a validator for the "emergency_contact" field. It is called by the builders before save.
	EmergencyContactValidator func(string) error
	// EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	EmergencyPhoneValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Patient queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDateOfBirth orders the results by the date_of_birth field.
func ByDateOfBirth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfBirth, opts...).ToFunc()
}

// ByPhoneNumber orders the results by the phone_number field.
func ByPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumber, opts...).ToFunc()
}

// ByEmergencyContact orders the results by the emergency_contact field.
func ByEmergencyContact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyContact, opts...).ToFunc()
}

// ByEmergencyPhone orders the results by the emergency_phone field.
func ByEmergencyPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyPhone, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByScreeningsCount orders the results by screenings count.
func ByScreeningsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScreeningsStep(), opts...)
	}
}

// ByScreenings orders the results by screenings terms.
func ByScreenings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScreeningsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAlertsCount orders the results by alerts count.
func ByAlertsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertsStep(), opts...)
	}
}

// ByAlerts orders the results by alerts terms.
func ByAlerts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReferralsCount orders the results by referrals count.
func ByReferralsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReferralsStep(), opts...)
	}
}

// ByReferrals orders the results by referrals terms.
func ByReferrals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferralsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConversationsCount orders the results by conversations count.
func ByConversationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversationsStep(), opts...)
	}
}

// ByConversations orders the results by conversations terms.
func ByConversations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMoodEntriesCount orders the results by mood_entries count.
func ByMoodEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMoodEntriesStep(), opts...)
	}
}

// ByMoodEntries orders the results by mood_entries terms.
func ByMoodEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMoodEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
	)
}
func newScreeningsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScreeningsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScreeningsTable, ScreeningsColumn),
	)
}
func newAlertsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
	)
}
func newReferralsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReferralsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReferralsTable, ReferralsColumn),
	)
}
func newConversationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
	)
}
func newMoodEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MoodEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MoodEntriesTable, MoodEntriesColumn),
	)
}
