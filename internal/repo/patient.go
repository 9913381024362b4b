// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/user"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// DateOfBirth holds the value of the "date_of_birth" field.
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// E.164, validated before write
	PhoneNumber *string `json:"phone_number,omitempty"`
	// EmergencyContact holds the value of the "emergency_contact" field.
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	// EmergencyPhone holds the value of the "emergency_phone" field.
	EmergencyPhone *string `json:"emergency_phone,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Screenings holds the value of the screenings edge.
	Screenings []*ScreeningResult `json:"screenings,omitempty"`
	// Alerts holds the value of the alerts edge.
	Alerts []*ScreeningAlert `json:"alerts,omitempty"`
	// Referrals holds the value of the referrals edge.
	Referrals []*TeleconsultReferral `json:"referrals,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// MoodEntries holds the value of the mood_entries edge.
	MoodEntries []*MoodEntry `json:"mood_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// ScreeningsOrErr returns the Screenings value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) ScreeningsOrErr() ([]*ScreeningResult, error) {
	if e.loadedTypes[1] {
		return e.Screenings, nil
	}
	return nil, &NotLoadedError{edge: "screenings"}
}

// AlertsOrErr returns the Alerts value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) AlertsOrErr() ([]*ScreeningAlert, error) {
	if e.loadedTypes[2] {
		return e.Alerts, nil
	}
	return nil, &NotLoadedError{edge: "alerts"}
}

// ReferralsOrErr returns the Referrals value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) ReferralsOrErr() ([]*TeleconsultReferral, error) {
	if e.loadedTypes[3] {
		return e.Referrals, nil
	}
	return nil, &NotLoadedError{edge: "referrals"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[4] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// MoodEntriesOrErr returns the MoodEntries value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) MoodEntriesOrErr() ([]*MoodEntry, error) {
	if e.loadedTypes[5] {
		return e.MoodEntries, nil
	}
	return nil, &NotLoadedError{edge: "mood_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldPhoneNumber, patient.FieldEmergencyContact, patient.FieldEmergencyPhone:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt, patient.FieldDeletedAt, patient.FieldDateOfBirth:
			values[i] = new(sql.NullTime)
		case patient.FieldID, patient.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case patient.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patient.FieldDateOfBirth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_birth", values[i])
			} else if value.Valid {
				_m.DateOfBirth = new(time.Time)
				*_m.DateOfBirth = value.Time
			}
		case patient.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				_m.PhoneNumber = new(string)
				*_m.PhoneNumber = value.String
			}
		case patient.FieldEmergencyContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_contact", values[i])
			} else if value.Valid {
				_m.EmergencyContact = new(string)
				*_m.EmergencyContact = value.String
			}
		case patient.FieldEmergencyPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_phone", values[i])
			} else if value.Valid {
				_m.EmergencyPhone = new(string)
				*_m.EmergencyPhone = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Patient entity.
func (_m *Patient) QueryUser() *UserQuery {
	return NewPatientClient(_m.config).QueryUser(_m)
}

// QueryScreenings queries the "screenings" edge of the Patient entity.
func (_m *Patient) QueryScreenings() *ScreeningResultQuery {
	return NewPatientClient(_m.config).QueryScreenings(_m)
}

// QueryAlerts queries the "alerts" edge of the Patient entity.
func (_m *Patient) QueryAlerts() *ScreeningAlertQuery {
	return NewPatientClient(_m.config).QueryAlerts(_m)
}

// QueryReferrals queries the "referrals" edge of the Patient entity.
func (_m *Patient) QueryReferrals() *TeleconsultReferralQuery {
	return NewPatientClient(_m.config).QueryReferrals(_m)
}

// QueryConversations queries the "conversations" edge of the Patient entity.
func (_m *Patient) QueryConversations() *ConversationQuery {
	return NewPatientClient(_m.config).QueryConversations(_m)
}

// QueryMoodEntries queries the "mood_entries" edge of the Patient entity.
func (_m *Patient) QueryMoodEntries() *MoodEntryQuery {
	return NewPatientClient(_m.config).QueryMoodEntries(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.DateOfBirth; v != nil {
		builder.WriteString("date_of_birth=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PhoneNumber; v != nil {
		builder.WriteString("phone_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyContact; v != nil {
		builder.WriteString("emergency_contact=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyPhone; v != nil {
		builder.WriteString("emergency_phone=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
