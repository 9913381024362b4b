// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/conversation"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/message"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/moodentry"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/notification"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/selfcareexercise"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/user"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/usersession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConversation        = "Conversation"
	TypeMessage             = "Message"
	TypeMoodEntry           = "MoodEntry"
	TypeNotification        = "Notification"
	TypePatient             = "Patient"
	TypeScreeningAlert      = "ScreeningAlert"
	TypeScreeningResult     = "ScreeningResult"
	TypeSelfCareExercise    = "SelfCareExercise"
	TypeTeleconsultReferral = "TeleconsultReferral"
	TypeUser                = "User"
	TypeUserSession         = "UserSession"
)

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	session_id      *string
	last_message_at *time.Time
	is_active       *bool
	clearedFields   map[string]struct{}
	patient         *uuid.UUID
	clearedpatient  bool
	messages        map[uuid.UUID]struct{}
	removedmessages map[uuid.UUID]struct{}
	clearedmessages bool
	done            bool
	oldValue        func(context.Context) (*Conversation, error)
	predicates      []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id uuid.UUID) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *ConversationMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *ConversationMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *ConversationMutation) ResetPatientID() {
	m.patient = nil
}

// SetSessionID sets the "session_id" field.
func (m *ConversationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ConversationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ConversationMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLastMessageAt sets the "last_message_at" field.
func (m *ConversationMutation) SetLastMessageAt(t time.Time) {
	m.last_message_at = &t
}

// LastMessageAt returns the value of the "last_message_at" field in the mutation.
func (m *ConversationMutation) LastMessageAt() (r time.Time, exists bool) {
	v := m.last_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageAt returns the old "last_message_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastMessageAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageAt: %w", err)
	}
	return oldValue.LastMessageAt, nil
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (m *ConversationMutation) ClearLastMessageAt() {
	m.last_message_at = nil
	m.clearedFields[conversation.FieldLastMessageAt] = struct{}{}
}

// LastMessageAtCleared returns if the "last_message_at" field was cleared in this mutation.
func (m *ConversationMutation) LastMessageAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastMessageAt]
	return ok
}

// ResetLastMessageAt resets all changes to the "last_message_at" field.
func (m *ConversationMutation) ResetLastMessageAt() {
	m.last_message_at = nil
	delete(m.clearedFields, conversation.FieldLastMessageAt)
}

// SetIsActive sets the "is_active" field.
func (m *ConversationMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ConversationMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ConversationMutation) ResetIsActive() {
	m.is_active = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *ConversationMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[conversation.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *ConversationMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *ConversationMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...uuid.UUID) {
	if m.messages == nil {
		m.messages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...uuid.UUID) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []uuid.UUID) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []uuid.UUID) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, conversation.FieldPatientID)
	}
	if m.session_id != nil {
		fields = append(fields, conversation.FieldSessionID)
	}
	if m.last_message_at != nil {
		fields = append(fields, conversation.FieldLastMessageAt)
	}
	if m.is_active != nil {
		fields = append(fields, conversation.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	case conversation.FieldPatientID:
		return m.PatientID()
	case conversation.FieldSessionID:
		return m.SessionID()
	case conversation.FieldLastMessageAt:
		return m.LastMessageAt()
	case conversation.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case conversation.FieldPatientID:
		return m.OldPatientID(ctx)
	case conversation.FieldSessionID:
		return m.OldSessionID(ctx)
	case conversation.FieldLastMessageAt:
		return m.OldLastMessageAt(ctx)
	case conversation.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case conversation.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case conversation.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case conversation.FieldLastMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageAt(v)
		return nil
	case conversation.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldLastMessageAt) {
		fields = append(fields, conversation.FieldLastMessageAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldLastMessageAt:
		m.ClearLastMessageAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case conversation.FieldPatientID:
		m.ResetPatientID()
		return nil
	case conversation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case conversation.FieldLastMessageAt:
		m.ResetLastMessageAt()
		return nil
	case conversation.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, conversation.EdgePatient)
	}
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, conversation.EdgePatient)
	}
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgePatient:
		return m.clearedpatient
	case conversation.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	case conversation.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgePatient:
		m.ResetPatient()
		return nil
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	sender                *message.Sender
	content               *string
	detected_emotion      *string
	emotion_confidence    *float64
	addemotion_confidence *float64
	risk_level            *message.RiskLevel
	risk_keywords         *[]string
	appendrisk_keywords   []string
	intent                *string
	intent_confidence     *float64
	addintent_confidence  *float64
	clearedFields         map[string]struct{}
	conversation          *uuid.UUID
	clearedconversation   bool
	done                  bool
	oldValue              func(context.Context) (*Message, error)
	predicates            []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id uuid.UUID) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(u uuid.UUID) {
	m.conversation = &u
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r uuid.UUID, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetSender sets the "sender" field.
func (m *MessageMutation) SetSender(value message.Sender) {
	m.sender = &value
}

// Sender returns the value of the "sender" field in the mutation.
func (m *MessageMutation) Sender() (r message.Sender, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSender(ctx context.Context) (v message.Sender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ResetSender resets all changes to the "sender" field.
func (m *MessageMutation) ResetSender() {
	m.sender = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetDetectedEmotion sets the "detected_emotion" field.
func (m *MessageMutation) SetDetectedEmotion(s string) {
	m.detected_emotion = &s
}

// DetectedEmotion returns the value of the "detected_emotion" field in the mutation.
func (m *MessageMutation) DetectedEmotion() (r string, exists bool) {
	v := m.detected_emotion
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedEmotion returns the old "detected_emotion" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldDetectedEmotion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedEmotion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedEmotion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedEmotion: %w", err)
	}
	return oldValue.DetectedEmotion, nil
}

// ClearDetectedEmotion clears the value of the "detected_emotion" field.
func (m *MessageMutation) ClearDetectedEmotion() {
	m.detected_emotion = nil
	m.clearedFields[message.FieldDetectedEmotion] = struct{}{}
}

// DetectedEmotionCleared returns if the "detected_emotion" field was cleared in this mutation.
func (m *MessageMutation) DetectedEmotionCleared() bool {
	_, ok := m.clearedFields[message.FieldDetectedEmotion]
	return ok
}

// ResetDetectedEmotion resets all changes to the "detected_emotion" field.
func (m *MessageMutation) ResetDetectedEmotion() {
	m.detected_emotion = nil
	delete(m.clearedFields, message.FieldDetectedEmotion)
}

// SetEmotionConfidence sets the "emotion_confidence" field.
func (m *MessageMutation) SetEmotionConfidence(f float64) {
	m.emotion_confidence = &f
	m.addemotion_confidence = nil
}

// EmotionConfidence returns the value of the "emotion_confidence" field in the mutation.
func (m *MessageMutation) EmotionConfidence() (r float64, exists bool) {
	v := m.emotion_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEmotionConfidence returns the old "emotion_confidence" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldEmotionConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmotionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmotionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmotionConfidence: %w", err)
	}
	return oldValue.EmotionConfidence, nil
}

// AddEmotionConfidence adds f to the "emotion_confidence" field.
func (m *MessageMutation) AddEmotionConfidence(f float64) {
	if m.addemotion_confidence != nil {
		*m.addemotion_confidence += f
	} else {
		m.addemotion_confidence = &f
	}
}

// AddedEmotionConfidence returns the value that was added to the "emotion_confidence" field in this mutation.
func (m *MessageMutation) AddedEmotionConfidence() (r float64, exists bool) {
	v := m.addemotion_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearEmotionConfidence clears the value of the "emotion_confidence" field.
func (m *MessageMutation) ClearEmotionConfidence() {
	m.emotion_confidence = nil
	m.addemotion_confidence = nil
	m.clearedFields[message.FieldEmotionConfidence] = struct{}{}
}

// EmotionConfidenceCleared returns if the "emotion_confidence" field was cleared in this mutation.
func (m *MessageMutation) EmotionConfidenceCleared() bool {
	_, ok := m.clearedFields[message.FieldEmotionConfidence]
	return ok
}

// ResetEmotionConfidence resets all changes to the "emotion_confidence" field.
func (m *MessageMutation) ResetEmotionConfidence() {
	m.emotion_confidence = nil
	m.addemotion_confidence = nil
	delete(m.clearedFields, message.FieldEmotionConfidence)
}

// SetRiskLevel sets the "risk_level" field.
func (m *MessageMutation) SetRiskLevel(ml message.RiskLevel) {
	m.risk_level = &ml
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *MessageMutation) RiskLevel() (r message.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRiskLevel(ctx context.Context) (v message.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (m *MessageMutation) ClearRiskLevel() {
	m.risk_level = nil
	m.clearedFields[message.FieldRiskLevel] = struct{}{}
}

// RiskLevelCleared returns if the "risk_level" field was cleared in this mutation.
func (m *MessageMutation) RiskLevelCleared() bool {
	_, ok := m.clearedFields[message.FieldRiskLevel]
	return ok
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *MessageMutation) ResetRiskLevel() {
	m.risk_level = nil
	delete(m.clearedFields, message.FieldRiskLevel)
}

// SetRiskKeywords sets the "risk_keywords" field.
func (m *MessageMutation) SetRiskKeywords(s []string) {
	m.risk_keywords = &s
	m.appendrisk_keywords = nil
}

// RiskKeywords returns the value of the "risk_keywords" field in the mutation.
func (m *MessageMutation) RiskKeywords() (r []string, exists bool) {
	v := m.risk_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskKeywords returns the old "risk_keywords" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRiskKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskKeywords: %w", err)
	}
	return oldValue.RiskKeywords, nil
}

// AppendRiskKeywords adds s to the "risk_keywords" field.
func (m *MessageMutation) AppendRiskKeywords(s []string) {
	m.appendrisk_keywords = append(m.appendrisk_keywords, s...)
}

// AppendedRiskKeywords returns the list of values that were appended to the "risk_keywords" field in this mutation.
func (m *MessageMutation) AppendedRiskKeywords() ([]string, bool) {
	if len(m.appendrisk_keywords) == 0 {
		return nil, false
	}
	return m.appendrisk_keywords, true
}

// ClearRiskKeywords clears the value of the "risk_keywords" field.
func (m *MessageMutation) ClearRiskKeywords() {
	m.risk_keywords = nil
	m.appendrisk_keywords = nil
	m.clearedFields[message.FieldRiskKeywords] = struct{}{}
}

// RiskKeywordsCleared returns if the "risk_keywords" field was cleared in this mutation.
func (m *MessageMutation) RiskKeywordsCleared() bool {
	_, ok := m.clearedFields[message.FieldRiskKeywords]
	return ok
}

// ResetRiskKeywords resets all changes to the "risk_keywords" field.
func (m *MessageMutation) ResetRiskKeywords() {
	m.risk_keywords = nil
	m.appendrisk_keywords = nil
	delete(m.clearedFields, message.FieldRiskKeywords)
}

// SetIntent sets the "intent" field.
func (m *MessageMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *MessageMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ClearIntent clears the value of the "intent" field.
func (m *MessageMutation) ClearIntent() {
	m.intent = nil
	m.clearedFields[message.FieldIntent] = struct{}{}
}

// IntentCleared returns if the "intent" field was cleared in this mutation.
func (m *MessageMutation) IntentCleared() bool {
	_, ok := m.clearedFields[message.FieldIntent]
	return ok
}

// ResetIntent resets all changes to the "intent" field.
func (m *MessageMutation) ResetIntent() {
	m.intent = nil
	delete(m.clearedFields, message.FieldIntent)
}

// SetIntentConfidence sets the "intent_confidence" field.
func (m *MessageMutation) SetIntentConfidence(f float64) {
	m.intent_confidence = &f
	m.addintent_confidence = nil
}

// IntentConfidence returns the value of the "intent_confidence" field in the mutation.
func (m *MessageMutation) IntentConfidence() (r float64, exists bool) {
	v := m.intent_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentConfidence returns the old "intent_confidence" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIntentConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentConfidence: %w", err)
	}
	return oldValue.IntentConfidence, nil
}

// AddIntentConfidence adds f to the "intent_confidence" field.
func (m *MessageMutation) AddIntentConfidence(f float64) {
	if m.addintent_confidence != nil {
		*m.addintent_confidence += f
	} else {
		m.addintent_confidence = &f
	}
}

// AddedIntentConfidence returns the value that was added to the "intent_confidence" field in this mutation.
func (m *MessageMutation) AddedIntentConfidence() (r float64, exists bool) {
	v := m.addintent_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearIntentConfidence clears the value of the "intent_confidence" field.
func (m *MessageMutation) ClearIntentConfidence() {
	m.intent_confidence = nil
	m.addintent_confidence = nil
	m.clearedFields[message.FieldIntentConfidence] = struct{}{}
}

// IntentConfidenceCleared returns if the "intent_confidence" field was cleared in this mutation.
func (m *MessageMutation) IntentConfidenceCleared() bool {
	_, ok := m.clearedFields[message.FieldIntentConfidence]
	return ok
}

// ResetIntentConfidence resets all changes to the "intent_confidence" field.
func (m *MessageMutation) ResetIntentConfidence() {
	m.intent_confidence = nil
	m.addintent_confidence = nil
	delete(m.clearedFields, message.FieldIntentConfidence)
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[message.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ConversationIDs() (ids []uuid.UUID) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.sender != nil {
		fields = append(fields, message.FieldSender)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.detected_emotion != nil {
		fields = append(fields, message.FieldDetectedEmotion)
	}
	if m.emotion_confidence != nil {
		fields = append(fields, message.FieldEmotionConfidence)
	}
	if m.risk_level != nil {
		fields = append(fields, message.FieldRiskLevel)
	}
	if m.risk_keywords != nil {
		fields = append(fields, message.FieldRiskKeywords)
	}
	if m.intent != nil {
		fields = append(fields, message.FieldIntent)
	}
	if m.intent_confidence != nil {
		fields = append(fields, message.FieldIntentConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldCreatedAt:
		return m.CreatedAt()
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldSender:
		return m.Sender()
	case message.FieldContent:
		return m.Content()
	case message.FieldDetectedEmotion:
		return m.DetectedEmotion()
	case message.FieldEmotionConfidence:
		return m.EmotionConfidence()
	case message.FieldRiskLevel:
		return m.RiskLevel()
	case message.FieldRiskKeywords:
		return m.RiskKeywords()
	case message.FieldIntent:
		return m.Intent()
	case message.FieldIntentConfidence:
		return m.IntentConfidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldSender:
		return m.OldSender(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldDetectedEmotion:
		return m.OldDetectedEmotion(ctx)
	case message.FieldEmotionConfidence:
		return m.OldEmotionConfidence(ctx)
	case message.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case message.FieldRiskKeywords:
		return m.OldRiskKeywords(ctx)
	case message.FieldIntent:
		return m.OldIntent(ctx)
	case message.FieldIntentConfidence:
		return m.OldIntentConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case message.FieldConversationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldSender:
		v, ok := value.(message.Sender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldDetectedEmotion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedEmotion(v)
		return nil
	case message.FieldEmotionConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmotionConfidence(v)
		return nil
	case message.FieldRiskLevel:
		v, ok := value.(message.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case message.FieldRiskKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskKeywords(v)
		return nil
	case message.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case message.FieldIntentConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addemotion_confidence != nil {
		fields = append(fields, message.FieldEmotionConfidence)
	}
	if m.addintent_confidence != nil {
		fields = append(fields, message.FieldIntentConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldEmotionConfidence:
		return m.AddedEmotionConfidence()
	case message.FieldIntentConfidence:
		return m.AddedIntentConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldEmotionConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmotionConfidence(v)
		return nil
	case message.FieldIntentConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntentConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldDetectedEmotion) {
		fields = append(fields, message.FieldDetectedEmotion)
	}
	if m.FieldCleared(message.FieldEmotionConfidence) {
		fields = append(fields, message.FieldEmotionConfidence)
	}
	if m.FieldCleared(message.FieldRiskLevel) {
		fields = append(fields, message.FieldRiskLevel)
	}
	if m.FieldCleared(message.FieldRiskKeywords) {
		fields = append(fields, message.FieldRiskKeywords)
	}
	if m.FieldCleared(message.FieldIntent) {
		fields = append(fields, message.FieldIntent)
	}
	if m.FieldCleared(message.FieldIntentConfidence) {
		fields = append(fields, message.FieldIntentConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldDetectedEmotion:
		m.ClearDetectedEmotion()
		return nil
	case message.FieldEmotionConfidence:
		m.ClearEmotionConfidence()
		return nil
	case message.FieldRiskLevel:
		m.ClearRiskLevel()
		return nil
	case message.FieldRiskKeywords:
		m.ClearRiskKeywords()
		return nil
	case message.FieldIntent:
		m.ClearIntent()
		return nil
	case message.FieldIntentConfidence:
		m.ClearIntentConfidence()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldSender:
		m.ResetSender()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldDetectedEmotion:
		m.ResetDetectedEmotion()
		return nil
	case message.FieldEmotionConfidence:
		m.ResetEmotionConfidence()
		return nil
	case message.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case message.FieldRiskKeywords:
		m.ResetRiskKeywords()
		return nil
	case message.FieldIntent:
		m.ResetIntent()
		return nil
	case message.FieldIntentConfidence:
		m.ResetIntentConfidence()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// MoodEntryMutation represents an operation that mutates the MoodEntry nodes in the graph.
type MoodEntryMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	mood             *int
	addmood          *int
	energy           *int
	addenergy        *int
	sleep_quality    *int
	addsleep_quality *int
	stress           *int
	addstress        *int
	notes            *string
	clearedFields    map[string]struct{}
	patient          *uuid.UUID
	clearedpatient   bool
	done             bool
	oldValue         func(context.Context) (*MoodEntry, error)
	predicates       []predicate.MoodEntry
}

var _ ent.Mutation = (*MoodEntryMutation)(nil)

// moodentryOption allows management of the mutation configuration using functional options.
type moodentryOption func(*MoodEntryMutation)

// newMoodEntryMutation creates new mutation for the MoodEntry entity.
func newMoodEntryMutation(c config, op Op, opts ...moodentryOption) *MoodEntryMutation {
	m := &MoodEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeMoodEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMoodEntryID sets the ID field of the mutation.
func withMoodEntryID(id uuid.UUID) moodentryOption {
	return func(m *MoodEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *MoodEntry
		)
		m.oldValue = func(ctx context.Context) (*MoodEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MoodEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMoodEntry sets the old MoodEntry of the mutation.
func withMoodEntry(node *MoodEntry) moodentryOption {
	return func(m *MoodEntryMutation) {
		m.oldValue = func(context.Context) (*MoodEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MoodEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MoodEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MoodEntry entities.
func (m *MoodEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MoodEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MoodEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MoodEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MoodEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MoodEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MoodEntry entity.
// If the MoodEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoodEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MoodEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *MoodEntryMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *MoodEntryMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the MoodEntry entity.
// If the MoodEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoodEntryMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *MoodEntryMutation) ResetPatientID() {
	m.patient = nil
}

// SetMood sets the "mood" field.
func (m *MoodEntryMutation) SetMood(i int) {
	m.mood = &i
	m.addmood = nil
}

// Mood returns the value of the "mood" field in the mutation.
func (m *MoodEntryMutation) Mood() (r int, exists bool) {
	v := m.mood
	if v == nil {
		return
	}
	return *v, true
}

// OldMood returns the old "mood" field's value of the MoodEntry entity.
// If the MoodEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoodEntryMutation) OldMood(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMood: %w", err)
	}
	return oldValue.Mood, nil
}

// AddMood adds i to the "mood" field.
func (m *MoodEntryMutation) AddMood(i int) {
	if m.addmood != nil {
		*m.addmood += i
	} else {
		m.addmood = &i
	}
}

// AddedMood returns the value that was added to the "mood" field in this mutation.
func (m *MoodEntryMutation) AddedMood() (r int, exists bool) {
	v := m.addmood
	if v == nil {
		return
	}
	return *v, true
}

// ResetMood resets all changes to the "mood" field.
func (m *MoodEntryMutation) ResetMood() {
	m.mood = nil
	m.addmood = nil
}

// SetEnergy sets the "energy" field.
func (m *MoodEntryMutation) SetEnergy(i int) {
	m.energy = &i
	m.addenergy = nil
}

// Energy returns the value of the "energy" field in the mutation.
func (m *MoodEntryMutation) Energy() (r int, exists bool) {
	v := m.energy
	if v == nil {
		return
	}
	return *v, true
}

// OldEnergy returns the old "energy" field's value of the MoodEntry entity.
// If the MoodEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoodEntryMutation) OldEnergy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnergy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnergy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnergy: %w", err)
	}
	return oldValue.Energy, nil
}

// AddEnergy adds i to the "energy" field.
func (m *MoodEntryMutation) AddEnergy(i int) {
	if m.addenergy != nil {
		*m.addenergy += i
	} else {
		m.addenergy = &i
	}
}

// AddedEnergy returns the value that was added to the "energy" field in this mutation.
func (m *MoodEntryMutation) AddedEnergy() (r int, exists bool) {
	v := m.addenergy
	if v == nil {
		return
	}
	return *v, true
}

// ResetEnergy resets all changes to the "energy" field.
func (m *MoodEntryMutation) ResetEnergy() {
	m.energy = nil
	m.addenergy = nil
}

// SetSleepQuality sets the "sleep_quality" field.
func (m *MoodEntryMutation) SetSleepQuality(i int) {
	m.sleep_quality = &i
	m.addsleep_quality = nil
}

// SleepQuality returns the value of the "sleep_quality" field in the mutation.
func (m *MoodEntryMutation) SleepQuality() (r int, exists bool) {
	v := m.sleep_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldSleepQuality returns the old "sleep_quality" field's value of the MoodEntry entity.
// If the MoodEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoodEntryMutation) OldSleepQuality(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSleepQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSleepQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSleepQuality: %w", err)
	}
	return oldValue.SleepQuality, nil
}

// AddSleepQuality adds i to the "sleep_quality" field.
func (m *MoodEntryMutation) AddSleepQuality(i int) {
	if m.addsleep_quality != nil {
		*m.addsleep_quality += i
	} else {
		m.addsleep_quality = &i
	}
}

// AddedSleepQuality returns the value that was added to the "sleep_quality" field in this mutation.
func (m *MoodEntryMutation) AddedSleepQuality() (r int, exists bool) {
	v := m.addsleep_quality
	if v == nil {
		return
	}
	return *v, true
}

// ResetSleepQuality resets all changes to the "sleep_quality" field.
func (m *MoodEntryMutation) ResetSleepQuality() {
	m.sleep_quality = nil
	m.addsleep_quality = nil
}

// SetStress sets the "stress" field.
func (m *MoodEntryMutation) SetStress(i int) {
	m.stress = &i
	m.addstress = nil
}

// Stress returns the value of the "stress" field in the mutation.
func (m *MoodEntryMutation) Stress() (r int, exists bool) {
	v := m.stress
	if v == nil {
		return
	}
	return *v, true
}

// OldStress returns the old "stress" field's value of the MoodEntry entity.
// If the MoodEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoodEntryMutation) OldStress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStress: %w", err)
	}
	return oldValue.Stress, nil
}

// AddStress adds i to the "stress" field.
func (m *MoodEntryMutation) AddStress(i int) {
	if m.addstress != nil {
		*m.addstress += i
	} else {
		m.addstress = &i
	}
}

// AddedStress returns the value that was added to the "stress" field in this mutation.
func (m *MoodEntryMutation) AddedStress() (r int, exists bool) {
	v := m.addstress
	if v == nil {
		return
	}
	return *v, true
}

// ResetStress resets all changes to the "stress" field.
func (m *MoodEntryMutation) ResetStress() {
	m.stress = nil
	m.addstress = nil
}

// SetNotes sets the "notes" field.
func (m *MoodEntryMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *MoodEntryMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the MoodEntry entity.
// If the MoodEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoodEntryMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *MoodEntryMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[moodentry.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *MoodEntryMutation) NotesCleared() bool {
	_, ok := m.clearedFields[moodentry.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *MoodEntryMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, moodentry.FieldNotes)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *MoodEntryMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[moodentry.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *MoodEntryMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *MoodEntryMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *MoodEntryMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the MoodEntryMutation builder.
func (m *MoodEntryMutation) Where(ps ...predicate.MoodEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MoodEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MoodEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MoodEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MoodEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MoodEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MoodEntry).
func (m *MoodEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MoodEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, moodentry.FieldCreatedAt)
	}
	if m.patient != nil {
		fields = append(fields, moodentry.FieldPatientID)
	}
	if m.mood != nil {
		fields = append(fields, moodentry.FieldMood)
	}
	if m.energy != nil {
		fields = append(fields, moodentry.FieldEnergy)
	}
	if m.sleep_quality != nil {
		fields = append(fields, moodentry.FieldSleepQuality)
	}
	if m.stress != nil {
		fields = append(fields, moodentry.FieldStress)
	}
	if m.notes != nil {
		fields = append(fields, moodentry.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MoodEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case moodentry.FieldCreatedAt:
		return m.CreatedAt()
	case moodentry.FieldPatientID:
		return m.PatientID()
	case moodentry.FieldMood:
		return m.Mood()
	case moodentry.FieldEnergy:
		return m.Energy()
	case moodentry.FieldSleepQuality:
		return m.SleepQuality()
	case moodentry.FieldStress:
		return m.Stress()
	case moodentry.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MoodEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case moodentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case moodentry.FieldPatientID:
		return m.OldPatientID(ctx)
	case moodentry.FieldMood:
		return m.OldMood(ctx)
	case moodentry.FieldEnergy:
		return m.OldEnergy(ctx)
	case moodentry.FieldSleepQuality:
		return m.OldSleepQuality(ctx)
	case moodentry.FieldStress:
		return m.OldStress(ctx)
	case moodentry.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown MoodEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MoodEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case moodentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case moodentry.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case moodentry.FieldMood:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMood(v)
		return nil
	case moodentry.FieldEnergy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnergy(v)
		return nil
	case moodentry.FieldSleepQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSleepQuality(v)
		return nil
	case moodentry.FieldStress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStress(v)
		return nil
	case moodentry.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown MoodEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MoodEntryMutation) AddedFields() []string {
	var fields []string
	if m.addmood != nil {
		fields = append(fields, moodentry.FieldMood)
	}
	if m.addenergy != nil {
		fields = append(fields, moodentry.FieldEnergy)
	}
	if m.addsleep_quality != nil {
		fields = append(fields, moodentry.FieldSleepQuality)
	}
	if m.addstress != nil {
		fields = append(fields, moodentry.FieldStress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MoodEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case moodentry.FieldMood:
		return m.AddedMood()
	case moodentry.FieldEnergy:
		return m.AddedEnergy()
	case moodentry.FieldSleepQuality:
		return m.AddedSleepQuality()
	case moodentry.FieldStress:
		return m.AddedStress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MoodEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case moodentry.FieldMood:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMood(v)
		return nil
	case moodentry.FieldEnergy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnergy(v)
		return nil
	case moodentry.FieldSleepQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSleepQuality(v)
		return nil
	case moodentry.FieldStress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStress(v)
		return nil
	}
	return fmt.Errorf("unknown MoodEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MoodEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(moodentry.FieldNotes) {
		fields = append(fields, moodentry.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MoodEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MoodEntryMutation) ClearField(name string) error {
	switch name {
	case moodentry.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown MoodEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MoodEntryMutation) ResetField(name string) error {
	switch name {
	case moodentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case moodentry.FieldPatientID:
		m.ResetPatientID()
		return nil
	case moodentry.FieldMood:
		m.ResetMood()
		return nil
	case moodentry.FieldEnergy:
		m.ResetEnergy()
		return nil
	case moodentry.FieldSleepQuality:
		m.ResetSleepQuality()
		return nil
	case moodentry.FieldStress:
		m.ResetStress()
		return nil
	case moodentry.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown MoodEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MoodEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, moodentry.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MoodEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case moodentry.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MoodEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MoodEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MoodEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, moodentry.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MoodEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case moodentry.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MoodEntryMutation) ClearEdge(name string) error {
	switch name {
	case moodentry.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown MoodEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MoodEntryMutation) ResetEdge(name string) error {
	switch name {
	case moodentry.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown MoodEntry edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	user_id       *uuid.UUID
	_type         *string
	title         *string
	body          *string
	data          *map[string]interface{}
	is_read       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id uuid.UUID) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationMutation) ResetUserID() {
	m.user_id = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *NotificationMutation) ClearBody() {
	m.body = nil
	m.clearedFields[notification.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *NotificationMutation) BodyCleared() bool {
	_, ok := m.clearedFields[notification.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, notification.FieldBody)
}

// SetData sets the "data" field.
func (m *NotificationMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *NotificationMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *NotificationMutation) ClearData() {
	m.data = nil
	m.clearedFields[notification.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *NotificationMutation) DataCleared() bool {
	_, ok := m.clearedFields[notification.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *NotificationMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, notification.FieldData)
}

// SetIsRead sets the "is_read" field.
func (m *NotificationMutation) SetIsRead(b bool) {
	m.is_read = &b
}

// IsRead returns the value of the "is_read" field in the mutation.
func (m *NotificationMutation) IsRead() (r bool, exists bool) {
	v := m.is_read
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRead returns the old "is_read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldIsRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRead: %w", err)
	}
	return oldValue.IsRead, nil
}

// ResetIsRead resets all changes to the "is_read" field.
func (m *NotificationMutation) ResetIsRead() {
	m.is_read = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.data != nil {
		fields = append(fields, notification.FieldData)
	}
	if m.is_read != nil {
		fields = append(fields, notification.FieldIsRead)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldUserID:
		return m.UserID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldData:
		return m.Data()
	case notification.FieldIsRead:
		return m.IsRead()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldUserID:
		return m.OldUserID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldData:
		return m.OldData(ctx)
	case notification.FieldIsRead:
		return m.OldIsRead(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case notification.FieldIsRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRead(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldBody) {
		fields = append(fields, notification.FieldBody)
	}
	if m.FieldCleared(notification.FieldData) {
		fields = append(fields, notification.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldBody:
		m.ClearBody()
		return nil
	case notification.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldUserID:
		m.ResetUserID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldData:
		m.ResetData()
		return nil
	case notification.FieldIsRead:
		m.ResetIsRead()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	date_of_birth        *time.Time
	phone_number         *string
	emergency_contact    *string
	emergency_phone      *string
	clearedFields        map[string]struct{}
	user                 *uuid.UUID
	cleareduser          bool
	screenings           map[uuid.UUID]struct{}
	removedscreenings    map[uuid.UUID]struct{}
	clearedscreenings    bool
	alerts               map[uuid.UUID]struct{}
	removedalerts        map[uuid.UUID]struct{}
	clearedalerts        bool
	referrals            map[uuid.UUID]struct{}
	removedreferrals     map[uuid.UUID]struct{}
	clearedreferrals     bool
	conversations        map[uuid.UUID]struct{}
	removedconversations map[uuid.UUID]struct{}
	clearedconversations bool
	mood_entries         map[uuid.UUID]struct{}
	removedmood_entries  map[uuid.UUID]struct{}
	clearedmood_entries  bool
	done                 bool
	oldValue             func(context.Context) (*Patient, error)
	predicates           []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PatientMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PatientMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PatientMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[patient.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PatientMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[patient.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PatientMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, patient.FieldDeletedAt)
}

// SetUserID sets the "user_id" field.
func (m *PatientMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientMutation) ResetUserID() {
	m.user = nil
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *PatientMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *PatientMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *PatientMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[patient.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *PatientMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[patient.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *PatientMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, patient.FieldDateOfBirth)
}

// SetPhoneNumber sets the "phone_number" field.
func (m *PatientMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *PatientMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPhoneNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *PatientMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[patient.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *PatientMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[patient.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *PatientMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, patient.FieldPhoneNumber)
}

// SetEmergencyContact sets the "emergency_contact" field.
func (m *PatientMutation) SetEmergencyContact(s string) {
	m.emergency_contact = &s
}

// EmergencyContact returns the value of the "emergency_contact" field in the mutation.
func (m *PatientMutation) EmergencyContact() (r string, exists bool) {
	v := m.emergency_contact
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContact returns the old "emergency_contact" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmergencyContact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContact: %w", err)
	}
	return oldValue.EmergencyContact, nil
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (m *PatientMutation) ClearEmergencyContact() {
	m.emergency_contact = nil
	m.clearedFields[patient.FieldEmergencyContact] = struct{}{}
}

// EmergencyContactCleared returns if the "emergency_contact" field was cleared in this mutation.
func (m *PatientMutation) EmergencyContactCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmergencyContact]
	return ok
}

// ResetEmergencyContact resets all changes to the "emergency_contact" field.
func (m *PatientMutation) ResetEmergencyContact() {
	m.emergency_contact = nil
	delete(m.clearedFields, patient.FieldEmergencyContact)
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (m *PatientMutation) SetEmergencyPhone(s string) {
	m.emergency_phone = &s
}

// EmergencyPhone returns the value of the "emergency_phone" field in the mutation.
func (m *PatientMutation) EmergencyPhone() (r string, exists bool) {
	v := m.emergency_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyPhone returns the old "emergency_phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmergencyPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyPhone: %w", err)
	}
	return oldValue.EmergencyPhone, nil
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (m *PatientMutation) ClearEmergencyPhone() {
	m.emergency_phone = nil
	m.clearedFields[patient.FieldEmergencyPhone] = struct{}{}
}

// EmergencyPhoneCleared returns if the "emergency_phone" field was cleared in this mutation.
func (m *PatientMutation) EmergencyPhoneCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmergencyPhone]
	return ok
}

// ResetEmergencyPhone resets all changes to the "emergency_phone" field.
func (m *PatientMutation) ResetEmergencyPhone() {
	m.emergency_phone = nil
	delete(m.clearedFields, patient.FieldEmergencyPhone)
}

// ClearUser clears the "user" edge to the User entity.
func (m *PatientMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PatientMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PatientMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddScreeningIDs adds the "screenings" edge to the ScreeningResult entity by ids.
func (m *PatientMutation) AddScreeningIDs(ids ...uuid.UUID) {
	if m.screenings == nil {
		m.screenings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.screenings[ids[i]] = struct{}{}
	}
}

// ClearScreenings clears the "screenings" edge to the ScreeningResult entity.
func (m *PatientMutation) ClearScreenings() {
	m.clearedscreenings = true
}

// ScreeningsCleared reports if the "screenings" edge to the ScreeningResult entity was cleared.
func (m *PatientMutation) ScreeningsCleared() bool {
	return m.clearedscreenings
}

// RemoveScreeningIDs removes the "screenings" edge to the ScreeningResult entity by IDs.
func (m *PatientMutation) RemoveScreeningIDs(ids ...uuid.UUID) {
	if m.removedscreenings == nil {
		m.removedscreenings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.screenings, ids[i])
		m.removedscreenings[ids[i]] = struct{}{}
	}
}

// RemovedScreenings returns the removed IDs of the "screenings" edge to the ScreeningResult entity.
func (m *PatientMutation) RemovedScreeningsIDs() (ids []uuid.UUID) {
	for id := range m.removedscreenings {
		ids = append(ids, id)
	}
	return
}

// ScreeningsIDs returns the "screenings" edge IDs in the mutation.
func (m *PatientMutation) ScreeningsIDs() (ids []uuid.UUID) {
	for id := range m.screenings {
		ids = append(ids, id)
	}
	return
}

// ResetScreenings resets all changes to the "screenings" edge.
func (m *PatientMutation) ResetScreenings() {
	m.screenings = nil
	m.clearedscreenings = false
	m.removedscreenings = nil
}

// AddAlertIDs adds the "alerts" edge to the ScreeningAlert entity by ids.
func (m *PatientMutation) AddAlertIDs(ids ...uuid.UUID) {
	if m.alerts == nil {
		m.alerts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the ScreeningAlert entity.
func (m *PatientMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the ScreeningAlert entity was cleared.
func (m *PatientMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the ScreeningAlert entity by IDs.
func (m *PatientMutation) RemoveAlertIDs(ids ...uuid.UUID) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the ScreeningAlert entity.
func (m *PatientMutation) RemovedAlertsIDs() (ids []uuid.UUID) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *PatientMutation) AlertsIDs() (ids []uuid.UUID) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *PatientMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// AddReferralIDs adds the "referrals" edge to the TeleconsultReferral entity by ids.
func (m *PatientMutation) AddReferralIDs(ids ...uuid.UUID) {
	if m.referrals == nil {
		m.referrals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.referrals[ids[i]] = struct{}{}
	}
}

// ClearReferrals clears the "referrals" edge to the TeleconsultReferral entity.
func (m *PatientMutation) ClearReferrals() {
	m.clearedreferrals = true
}

// ReferralsCleared reports if the "referrals" edge to the TeleconsultReferral entity was cleared.
func (m *PatientMutation) ReferralsCleared() bool {
	return m.clearedreferrals
}

// RemoveReferralIDs removes the "referrals" edge to the TeleconsultReferral entity by IDs.
func (m *PatientMutation) RemoveReferralIDs(ids ...uuid.UUID) {
	if m.removedreferrals == nil {
		m.removedreferrals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.referrals, ids[i])
		m.removedreferrals[ids[i]] = struct{}{}
	}
}

// RemovedReferrals returns the removed IDs of the "referrals" edge to the TeleconsultReferral entity.
func (m *PatientMutation) RemovedReferralsIDs() (ids []uuid.UUID) {
	for id := range m.removedreferrals {
		ids = append(ids, id)
	}
	return
}

// ReferralsIDs returns the "referrals" edge IDs in the mutation.
func (m *PatientMutation) ReferralsIDs() (ids []uuid.UUID) {
	for id := range m.referrals {
		ids = append(ids, id)
	}
	return
}

// ResetReferrals resets all changes to the "referrals" edge.
func (m *PatientMutation) ResetReferrals() {
	m.referrals = nil
	m.clearedreferrals = false
	m.removedreferrals = nil
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *PatientMutation) AddConversationIDs(ids ...uuid.UUID) {
	if m.conversations == nil {
		m.conversations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *PatientMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *PatientMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *PatientMutation) RemoveConversationIDs(ids ...uuid.UUID) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *PatientMutation) RemovedConversationsIDs() (ids []uuid.UUID) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *PatientMutation) ConversationsIDs() (ids []uuid.UUID) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *PatientMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// AddMoodEntryIDs adds the "mood_entries" edge to the MoodEntry entity by ids.
func (m *PatientMutation) AddMoodEntryIDs(ids ...uuid.UUID) {
	if m.mood_entries == nil {
		m.mood_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mood_entries[ids[i]] = struct{}{}
	}
}

// ClearMoodEntries clears the "mood_entries" edge to the MoodEntry entity.
func (m *PatientMutation) ClearMoodEntries() {
	m.clearedmood_entries = true
}

// MoodEntriesCleared reports if the "mood_entries" edge to the MoodEntry entity was cleared.
func (m *PatientMutation) MoodEntriesCleared() bool {
	return m.clearedmood_entries
}

// RemoveMoodEntryIDs removes the "mood_entries" edge to the MoodEntry entity by IDs.
func (m *PatientMutation) RemoveMoodEntryIDs(ids ...uuid.UUID) {
	if m.removedmood_entries == nil {
		m.removedmood_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mood_entries, ids[i])
		m.removedmood_entries[ids[i]] = struct{}{}
	}
}

// RemovedMoodEntries returns the removed IDs of the "mood_entries" edge to the MoodEntry entity.
func (m *PatientMutation) RemovedMoodEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedmood_entries {
		ids = append(ids, id)
	}
	return
}

// MoodEntriesIDs returns the "mood_entries" edge IDs in the mutation.
func (m *PatientMutation) MoodEntriesIDs() (ids []uuid.UUID) {
	for id := range m.mood_entries {
		ids = append(ids, id)
	}
	return
}

// ResetMoodEntries resets all changes to the "mood_entries" edge.
func (m *PatientMutation) ResetMoodEntries() {
	m.mood_entries = nil
	m.clearedmood_entries = false
	m.removedmood_entries = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.user != nil {
		fields = append(fields, patient.FieldUserID)
	}
	if m.date_of_birth != nil {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.phone_number != nil {
		fields = append(fields, patient.FieldPhoneNumber)
	}
	if m.emergency_contact != nil {
		fields = append(fields, patient.FieldEmergencyContact)
	}
	if m.emergency_phone != nil {
		fields = append(fields, patient.FieldEmergencyPhone)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldDeletedAt:
		return m.DeletedAt()
	case patient.FieldUserID:
		return m.UserID()
	case patient.FieldDateOfBirth:
		return m.DateOfBirth()
	case patient.FieldPhoneNumber:
		return m.PhoneNumber()
	case patient.FieldEmergencyContact:
		return m.EmergencyContact()
	case patient.FieldEmergencyPhone:
		return m.EmergencyPhone()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case patient.FieldUserID:
		return m.OldUserID(ctx)
	case patient.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case patient.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case patient.FieldEmergencyContact:
		return m.OldEmergencyContact(ctx)
	case patient.FieldEmergencyPhone:
		return m.OldEmergencyPhone(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case patient.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patient.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case patient.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case patient.FieldEmergencyContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContact(v)
		return nil
	case patient.FieldEmergencyPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyPhone(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldDeletedAt) {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.FieldCleared(patient.FieldDateOfBirth) {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.FieldCleared(patient.FieldPhoneNumber) {
		fields = append(fields, patient.FieldPhoneNumber)
	}
	if m.FieldCleared(patient.FieldEmergencyContact) {
		fields = append(fields, patient.FieldEmergencyContact)
	}
	if m.FieldCleared(patient.FieldEmergencyPhone) {
		fields = append(fields, patient.FieldEmergencyPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case patient.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case patient.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	case patient.FieldEmergencyContact:
		m.ClearEmergencyContact()
		return nil
	case patient.FieldEmergencyPhone:
		m.ClearEmergencyPhone()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case patient.FieldUserID:
		m.ResetUserID()
		return nil
	case patient.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case patient.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case patient.FieldEmergencyContact:
		m.ResetEmergencyContact()
		return nil
	case patient.FieldEmergencyPhone:
		m.ResetEmergencyPhone()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.user != nil {
		edges = append(edges, patient.EdgeUser)
	}
	if m.screenings != nil {
		edges = append(edges, patient.EdgeScreenings)
	}
	if m.alerts != nil {
		edges = append(edges, patient.EdgeAlerts)
	}
	if m.referrals != nil {
		edges = append(edges, patient.EdgeReferrals)
	}
	if m.conversations != nil {
		edges = append(edges, patient.EdgeConversations)
	}
	if m.mood_entries != nil {
		edges = append(edges, patient.EdgeMoodEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeScreenings:
		ids := make([]ent.Value, 0, len(m.screenings))
		for id := range m.screenings {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeReferrals:
		ids := make([]ent.Value, 0, len(m.referrals))
		for id := range m.referrals {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeMoodEntries:
		ids := make([]ent.Value, 0, len(m.mood_entries))
		for id := range m.mood_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedscreenings != nil {
		edges = append(edges, patient.EdgeScreenings)
	}
	if m.removedalerts != nil {
		edges = append(edges, patient.EdgeAlerts)
	}
	if m.removedreferrals != nil {
		edges = append(edges, patient.EdgeReferrals)
	}
	if m.removedconversations != nil {
		edges = append(edges, patient.EdgeConversations)
	}
	if m.removedmood_entries != nil {
		edges = append(edges, patient.EdgeMoodEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeScreenings:
		ids := make([]ent.Value, 0, len(m.removedscreenings))
		for id := range m.removedscreenings {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeReferrals:
		ids := make([]ent.Value, 0, len(m.removedreferrals))
		for id := range m.removedreferrals {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeMoodEntries:
		ids := make([]ent.Value, 0, len(m.removedmood_entries))
		for id := range m.removedmood_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.cleareduser {
		edges = append(edges, patient.EdgeUser)
	}
	if m.clearedscreenings {
		edges = append(edges, patient.EdgeScreenings)
	}
	if m.clearedalerts {
		edges = append(edges, patient.EdgeAlerts)
	}
	if m.clearedreferrals {
		edges = append(edges, patient.EdgeReferrals)
	}
	if m.clearedconversations {
		edges = append(edges, patient.EdgeConversations)
	}
	if m.clearedmood_entries {
		edges = append(edges, patient.EdgeMoodEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeUser:
		return m.cleareduser
	case patient.EdgeScreenings:
		return m.clearedscreenings
	case patient.EdgeAlerts:
		return m.clearedalerts
	case patient.EdgeReferrals:
		return m.clearedreferrals
	case patient.EdgeConversations:
		return m.clearedconversations
	case patient.EdgeMoodEntries:
		return m.clearedmood_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ResetUser()
		return nil
	case patient.EdgeScreenings:
		m.ResetScreenings()
		return nil
	case patient.EdgeAlerts:
		m.ResetAlerts()
		return nil
	case patient.EdgeReferrals:
		m.ResetReferrals()
		return nil
	case patient.EdgeConversations:
		m.ResetConversations()
		return nil
	case patient.EdgeMoodEntries:
		m.ResetMoodEntries()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// ScreeningAlertMutation represents an operation that mutates the ScreeningAlert nodes in the graph.
type ScreeningAlertMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	alert_type       *screeningalert.AlertType
	message          *string
	delta_score      *int
	adddelta_score   *int
	window_days      *int
	addwindow_days   *int
	is_resolved      *bool
	resolved_at      *time.Time
	clearedFields    map[string]struct{}
	patient          *uuid.UUID
	clearedpatient   bool
	screening        *uuid.UUID
	clearedscreening bool
	done             bool
	oldValue         func(context.Context) (*ScreeningAlert, error)
	predicates       []predicate.ScreeningAlert
}

var _ ent.Mutation = (*ScreeningAlertMutation)(nil)

// screeningalertOption allows management of the mutation configuration using functional options.
type screeningalertOption func(*ScreeningAlertMutation)

// newScreeningAlertMutation creates new mutation for the ScreeningAlert entity.
func newScreeningAlertMutation(c config, op Op, opts ...screeningalertOption) *ScreeningAlertMutation {
	m := &ScreeningAlertMutation{
		config:        c,
		op:            op,
		typ:           TypeScreeningAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScreeningAlertID sets the ID field of the mutation.
func withScreeningAlertID(id uuid.UUID) screeningalertOption {
	return func(m *ScreeningAlertMutation) {
		var (
			err   error
			once  sync.Once
			value *ScreeningAlert
		)
		m.oldValue = func(ctx context.Context) (*ScreeningAlert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScreeningAlert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScreeningAlert sets the old ScreeningAlert of the mutation.
func withScreeningAlert(node *ScreeningAlert) screeningalertOption {
	return func(m *ScreeningAlertMutation) {
		m.oldValue = func(context.Context) (*ScreeningAlert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScreeningAlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScreeningAlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScreeningAlert entities.
func (m *ScreeningAlertMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScreeningAlertMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScreeningAlertMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScreeningAlert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ScreeningAlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScreeningAlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScreeningAlert entity.
// If the ScreeningAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningAlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScreeningAlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *ScreeningAlertMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *ScreeningAlertMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the ScreeningAlert entity.
// If the ScreeningAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningAlertMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *ScreeningAlertMutation) ResetPatientID() {
	m.patient = nil
}

// SetScreeningResultID sets the "screening_result_id" field.
func (m *ScreeningAlertMutation) SetScreeningResultID(u uuid.UUID) {
	m.screening = &u
}

// ScreeningResultID returns the value of the "screening_result_id" field in the mutation.
func (m *ScreeningAlertMutation) ScreeningResultID() (r uuid.UUID, exists bool) {
	v := m.screening
	if v == nil {
		return
	}
	return *v, true
}

// OldScreeningResultID returns the old "screening_result_id" field's value of the ScreeningAlert entity.
// If the ScreeningAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningAlertMutation) OldScreeningResultID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreeningResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreeningResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreeningResultID: %w", err)
	}
	return oldValue.ScreeningResultID, nil
}

// ClearScreeningResultID clears the value of the "screening_result_id" field.
func (m *ScreeningAlertMutation) ClearScreeningResultID() {
	m.screening = nil
	m.clearedFields[screeningalert.FieldScreeningResultID] = struct{}{}
}

// ScreeningResultIDCleared returns if the "screening_result_id" field was cleared in this mutation.
func (m *ScreeningAlertMutation) ScreeningResultIDCleared() bool {
	_, ok := m.clearedFields[screeningalert.FieldScreeningResultID]
	return ok
}

// ResetScreeningResultID resets all changes to the "screening_result_id" field.
func (m *ScreeningAlertMutation) ResetScreeningResultID() {
	m.screening = nil
	delete(m.clearedFields, screeningalert.FieldScreeningResultID)
}

// SetAlertType sets the "alert_type" field.
func (m *ScreeningAlertMutation) SetAlertType(st screeningalert.AlertType) {
	m.alert_type = &st
}

// AlertType returns the value of the "alert_type" field in the mutation.
func (m *ScreeningAlertMutation) AlertType() (r screeningalert.AlertType, exists bool) {
	v := m.alert_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertType returns the old "alert_type" field's value of the ScreeningAlert entity.
// If the ScreeningAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningAlertMutation) OldAlertType(ctx context.Context) (v screeningalert.AlertType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertType: %w", err)
	}
	return oldValue.AlertType, nil
}

// ResetAlertType resets all changes to the "alert_type" field.
func (m *ScreeningAlertMutation) ResetAlertType() {
	m.alert_type = nil
}

// SetMessage sets the "message" field.
func (m *ScreeningAlertMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ScreeningAlertMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ScreeningAlert entity.
// If the ScreeningAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningAlertMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ScreeningAlertMutation) ResetMessage() {
	m.message = nil
}

// SetDeltaScore sets the "delta_score" field.
func (m *ScreeningAlertMutation) SetDeltaScore(i int) {
	m.delta_score = &i
	m.adddelta_score = nil
}

// DeltaScore returns the value of the "delta_score" field in the mutation.
func (m *ScreeningAlertMutation) DeltaScore() (r int, exists bool) {
	v := m.delta_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDeltaScore returns the old "delta_score" field's value of the ScreeningAlert entity.
// If the ScreeningAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningAlertMutation) OldDeltaScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeltaScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeltaScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeltaScore: %w", err)
	}
	return oldValue.DeltaScore, nil
}

// AddDeltaScore adds i to the "delta_score" field.
func (m *ScreeningAlertMutation) AddDeltaScore(i int) {
	if m.adddelta_score != nil {
		*m.adddelta_score += i
	} else {
		m.adddelta_score = &i
	}
}

// AddedDeltaScore returns the value that was added to the "delta_score" field in this mutation.
func (m *ScreeningAlertMutation) AddedDeltaScore() (r int, exists bool) {
	v := m.adddelta_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeltaScore clears the value of the "delta_score" field.
func (m *ScreeningAlertMutation) ClearDeltaScore() {
	m.delta_score = nil
	m.adddelta_score = nil
	m.clearedFields[screeningalert.FieldDeltaScore] = struct{}{}
}

// DeltaScoreCleared returns if the "delta_score" field was cleared in this mutation.
func (m *ScreeningAlertMutation) DeltaScoreCleared() bool {
	_, ok := m.clearedFields[screeningalert.FieldDeltaScore]
	return ok
}

// ResetDeltaScore resets all changes to the "delta_score" field.
func (m *ScreeningAlertMutation) ResetDeltaScore() {
	m.delta_score = nil
	m.adddelta_score = nil
	delete(m.clearedFields, screeningalert.FieldDeltaScore)
}

// SetWindowDays sets the "window_days" field.
func (m *ScreeningAlertMutation) SetWindowDays(i int) {
	m.window_days = &i
	m.addwindow_days = nil
}

// WindowDays returns the value of the "window_days" field in the mutation.
func (m *ScreeningAlertMutation) WindowDays() (r int, exists bool) {
	v := m.window_days
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowDays returns the old "window_days" field's value of the ScreeningAlert entity.
// If the ScreeningAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningAlertMutation) OldWindowDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowDays: %w", err)
	}
	return oldValue.WindowDays, nil
}

// AddWindowDays adds i to the "window_days" field.
func (m *ScreeningAlertMutation) AddWindowDays(i int) {
	if m.addwindow_days != nil {
		*m.addwindow_days += i
	} else {
		m.addwindow_days = &i
	}
}

// AddedWindowDays returns the value that was added to the "window_days" field in this mutation.
func (m *ScreeningAlertMutation) AddedWindowDays() (r int, exists bool) {
	v := m.addwindow_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearWindowDays clears the value of the "window_days" field.
func (m *ScreeningAlertMutation) ClearWindowDays() {
	m.window_days = nil
	m.addwindow_days = nil
	m.clearedFields[screeningalert.FieldWindowDays] = struct{}{}
}

// WindowDaysCleared returns if the "window_days" field was cleared in this mutation.
func (m *ScreeningAlertMutation) WindowDaysCleared() bool {
	_, ok := m.clearedFields[screeningalert.FieldWindowDays]
	return ok
}

// ResetWindowDays resets all changes to the "window_days" field.
func (m *ScreeningAlertMutation) ResetWindowDays() {
	m.window_days = nil
	m.addwindow_days = nil
	delete(m.clearedFields, screeningalert.FieldWindowDays)
}

// SetIsResolved sets the "is_resolved" field.
func (m *ScreeningAlertMutation) SetIsResolved(b bool) {
	m.is_resolved = &b
}

// IsResolved returns the value of the "is_resolved" field in the mutation.
func (m *ScreeningAlertMutation) IsResolved() (r bool, exists bool) {
	v := m.is_resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldIsResolved returns the old "is_resolved" field's value of the ScreeningAlert entity.
// If the ScreeningAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningAlertMutation) OldIsResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsResolved: %w", err)
	}
	return oldValue.IsResolved, nil
}

// ResetIsResolved resets all changes to the "is_resolved" field.
func (m *ScreeningAlertMutation) ResetIsResolved() {
	m.is_resolved = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ScreeningAlertMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ScreeningAlertMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ScreeningAlert entity.
// If the ScreeningAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningAlertMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ScreeningAlertMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[screeningalert.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ScreeningAlertMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[screeningalert.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ScreeningAlertMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, screeningalert.FieldResolvedAt)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *ScreeningAlertMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[screeningalert.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *ScreeningAlertMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *ScreeningAlertMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *ScreeningAlertMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// SetScreeningID sets the "screening" edge to the ScreeningResult entity by id.
func (m *ScreeningAlertMutation) SetScreeningID(id uuid.UUID) {
	m.screening = &id
}

// ClearScreening clears the "screening" edge to the ScreeningResult entity.
func (m *ScreeningAlertMutation) ClearScreening() {
	m.clearedscreening = true
	m.clearedFields[screeningalert.FieldScreeningResultID] = struct{}{}
}

// ScreeningCleared reports if the "screening" edge to the ScreeningResult entity was cleared.
func (m *ScreeningAlertMutation) ScreeningCleared() bool {
	return m.ScreeningResultIDCleared() || m.clearedscreening
}

// ScreeningID returns the "screening" edge ID in the mutation.
func (m *ScreeningAlertMutation) ScreeningID() (id uuid.UUID, exists bool) {
	if m.screening != nil {
		return *m.screening, true
	}
	return
}

// ScreeningIDs returns the "screening" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScreeningID instead. It exists only for internal usage by the builders.
func (m *ScreeningAlertMutation) ScreeningIDs() (ids []uuid.UUID) {
	if id := m.screening; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScreening resets all changes to the "screening" edge.
func (m *ScreeningAlertMutation) ResetScreening() {
	m.screening = nil
	m.clearedscreening = false
}

// Where appends a list predicates to the ScreeningAlertMutation builder.
func (m *ScreeningAlertMutation) Where(ps ...predicate.ScreeningAlert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScreeningAlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScreeningAlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScreeningAlert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScreeningAlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScreeningAlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScreeningAlert).
func (m *ScreeningAlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScreeningAlertMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, screeningalert.FieldCreatedAt)
	}
	if m.patient != nil {
		fields = append(fields, screeningalert.FieldPatientID)
	}
	if m.screening != nil {
		fields = append(fields, screeningalert.FieldScreeningResultID)
	}
	if m.alert_type != nil {
		fields = append(fields, screeningalert.FieldAlertType)
	}
	if m.message != nil {
		fields = append(fields, screeningalert.FieldMessage)
	}
	if m.delta_score != nil {
		fields = append(fields, screeningalert.FieldDeltaScore)
	}
	if m.window_days != nil {
		fields = append(fields, screeningalert.FieldWindowDays)
	}
	if m.is_resolved != nil {
		fields = append(fields, screeningalert.FieldIsResolved)
	}
	if m.resolved_at != nil {
		fields = append(fields, screeningalert.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScreeningAlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case screeningalert.FieldCreatedAt:
		return m.CreatedAt()
	case screeningalert.FieldPatientID:
		return m.PatientID()
	case screeningalert.FieldScreeningResultID:
		return m.ScreeningResultID()
	case screeningalert.FieldAlertType:
		return m.AlertType()
	case screeningalert.FieldMessage:
		return m.Message()
	case screeningalert.FieldDeltaScore:
		return m.DeltaScore()
	case screeningalert.FieldWindowDays:
		return m.WindowDays()
	case screeningalert.FieldIsResolved:
		return m.IsResolved()
	case screeningalert.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScreeningAlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case screeningalert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case screeningalert.FieldPatientID:
		return m.OldPatientID(ctx)
	case screeningalert.FieldScreeningResultID:
		return m.OldScreeningResultID(ctx)
	case screeningalert.FieldAlertType:
		return m.OldAlertType(ctx)
	case screeningalert.FieldMessage:
		return m.OldMessage(ctx)
	case screeningalert.FieldDeltaScore:
		return m.OldDeltaScore(ctx)
	case screeningalert.FieldWindowDays:
		return m.OldWindowDays(ctx)
	case screeningalert.FieldIsResolved:
		return m.OldIsResolved(ctx)
	case screeningalert.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScreeningAlert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreeningAlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case screeningalert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case screeningalert.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case screeningalert.FieldScreeningResultID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreeningResultID(v)
		return nil
	case screeningalert.FieldAlertType:
		v, ok := value.(screeningalert.AlertType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertType(v)
		return nil
	case screeningalert.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case screeningalert.FieldDeltaScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeltaScore(v)
		return nil
	case screeningalert.FieldWindowDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowDays(v)
		return nil
	case screeningalert.FieldIsResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsResolved(v)
		return nil
	case screeningalert.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScreeningAlert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScreeningAlertMutation) AddedFields() []string {
	var fields []string
	if m.adddelta_score != nil {
		fields = append(fields, screeningalert.FieldDeltaScore)
	}
	if m.addwindow_days != nil {
		fields = append(fields, screeningalert.FieldWindowDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScreeningAlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case screeningalert.FieldDeltaScore:
		return m.AddedDeltaScore()
	case screeningalert.FieldWindowDays:
		return m.AddedWindowDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreeningAlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	case screeningalert.FieldDeltaScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeltaScore(v)
		return nil
	case screeningalert.FieldWindowDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWindowDays(v)
		return nil
	}
	return fmt.Errorf("unknown ScreeningAlert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScreeningAlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(screeningalert.FieldScreeningResultID) {
		fields = append(fields, screeningalert.FieldScreeningResultID)
	}
	if m.FieldCleared(screeningalert.FieldDeltaScore) {
		fields = append(fields, screeningalert.FieldDeltaScore)
	}
	if m.FieldCleared(screeningalert.FieldWindowDays) {
		fields = append(fields, screeningalert.FieldWindowDays)
	}
	if m.FieldCleared(screeningalert.FieldResolvedAt) {
		fields = append(fields, screeningalert.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScreeningAlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScreeningAlertMutation) ClearField(name string) error {
	switch name {
	case screeningalert.FieldScreeningResultID:
		m.ClearScreeningResultID()
		return nil
	case screeningalert.FieldDeltaScore:
		m.ClearDeltaScore()
		return nil
	case screeningalert.FieldWindowDays:
		m.ClearWindowDays()
		return nil
	case screeningalert.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ScreeningAlert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScreeningAlertMutation) ResetField(name string) error {
	switch name {
	case screeningalert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case screeningalert.FieldPatientID:
		m.ResetPatientID()
		return nil
	case screeningalert.FieldScreeningResultID:
		m.ResetScreeningResultID()
		return nil
	case screeningalert.FieldAlertType:
		m.ResetAlertType()
		return nil
	case screeningalert.FieldMessage:
		m.ResetMessage()
		return nil
	case screeningalert.FieldDeltaScore:
		m.ResetDeltaScore()
		return nil
	case screeningalert.FieldWindowDays:
		m.ResetWindowDays()
		return nil
	case screeningalert.FieldIsResolved:
		m.ResetIsResolved()
		return nil
	case screeningalert.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ScreeningAlert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScreeningAlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, screeningalert.EdgePatient)
	}
	if m.screening != nil {
		edges = append(edges, screeningalert.EdgeScreening)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScreeningAlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case screeningalert.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case screeningalert.EdgeScreening:
		if id := m.screening; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScreeningAlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScreeningAlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScreeningAlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, screeningalert.EdgePatient)
	}
	if m.clearedscreening {
		edges = append(edges, screeningalert.EdgeScreening)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScreeningAlertMutation) EdgeCleared(name string) bool {
	switch name {
	case screeningalert.EdgePatient:
		return m.clearedpatient
	case screeningalert.EdgeScreening:
		return m.clearedscreening
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScreeningAlertMutation) ClearEdge(name string) error {
	switch name {
	case screeningalert.EdgePatient:
		m.ClearPatient()
		return nil
	case screeningalert.EdgeScreening:
		m.ClearScreening()
		return nil
	}
	return fmt.Errorf("unknown ScreeningAlert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScreeningAlertMutation) ResetEdge(name string) error {
	switch name {
	case screeningalert.EdgePatient:
		m.ResetPatient()
		return nil
	case screeningalert.EdgeScreening:
		m.ResetScreening()
		return nil
	}
	return fmt.Errorf("unknown ScreeningAlert edge %s", name)
}

// ScreeningResultMutation represents an operation that mutates the ScreeningResult nodes in the graph.
type ScreeningResultMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	instrument         *screeningresult.Instrument
	answers            *[]int
	appendanswers      []int
	total_score        *int
	addtotal_score     *int
	severity_band      *screeningresult.SeverityBand
	risk_level         *screeningresult.RiskLevel
	triage_action      *screeningresult.TriageAction
	recommended_module *string
	clearedFields      map[string]struct{}
	patient            *uuid.UUID
	clearedpatient     bool
	alert              map[uuid.UUID]struct{}
	removedalert       map[uuid.UUID]struct{}
	clearedalert       bool
	referral           map[uuid.UUID]struct{}
	removedreferral    map[uuid.UUID]struct{}
	clearedreferral    bool
	done               bool
	oldValue           func(context.Context) (*ScreeningResult, error)
	predicates         []predicate.ScreeningResult
}

var _ ent.Mutation = (*ScreeningResultMutation)(nil)

// screeningresultOption allows management of the mutation configuration using functional options.
type screeningresultOption func(*ScreeningResultMutation)

// newScreeningResultMutation creates new mutation for the ScreeningResult entity.
func newScreeningResultMutation(c config, op Op, opts ...screeningresultOption) *ScreeningResultMutation {
	m := &ScreeningResultMutation{
		config:        c,
		op:            op,
		typ:           TypeScreeningResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScreeningResultID sets the ID field of the mutation.
func withScreeningResultID(id uuid.UUID) screeningresultOption {
	return func(m *ScreeningResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ScreeningResult
		)
		m.oldValue = func(ctx context.Context) (*ScreeningResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScreeningResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScreeningResult sets the old ScreeningResult of the mutation.
func withScreeningResult(node *ScreeningResult) screeningresultOption {
	return func(m *ScreeningResultMutation) {
		m.oldValue = func(context.Context) (*ScreeningResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScreeningResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScreeningResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScreeningResult entities.
func (m *ScreeningResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScreeningResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScreeningResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScreeningResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ScreeningResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScreeningResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScreeningResult entity.
// If the ScreeningResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScreeningResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *ScreeningResultMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *ScreeningResultMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the ScreeningResult entity.
// If the ScreeningResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningResultMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *ScreeningResultMutation) ResetPatientID() {
	m.patient = nil
}

// SetInstrument sets the "instrument" field.
func (m *ScreeningResultMutation) SetInstrument(s screeningresult.Instrument) {
	m.instrument = &s
}

// Instrument returns the value of the "instrument" field in the mutation.
func (m *ScreeningResultMutation) Instrument() (r screeningresult.Instrument, exists bool) {
	v := m.instrument
	if v == nil {
		return
	}
	return *v, true
}

// OldInstrument returns the old "instrument" field's value of the ScreeningResult entity.
// If the ScreeningResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningResultMutation) OldInstrument(ctx context.Context) (v screeningresult.Instrument, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstrument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstrument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstrument: %w", err)
	}
	return oldValue.Instrument, nil
}

// ResetInstrument resets all changes to the "instrument" field.
func (m *ScreeningResultMutation) ResetInstrument() {
	m.instrument = nil
}

// SetAnswers sets the "answers" field.
func (m *ScreeningResultMutation) SetAnswers(i []int) {
	m.answers = &i
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *ScreeningResultMutation) Answers() (r []int, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the ScreeningResult entity.
// If the ScreeningResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningResultMutation) OldAnswers(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds i to the "answers" field.
func (m *ScreeningResultMutation) AppendAnswers(i []int) {
	m.appendanswers = append(m.appendanswers, i...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *ScreeningResultMutation) AppendedAnswers() ([]int, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ResetAnswers resets all changes to the "answers" field.
func (m *ScreeningResultMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
}

// SetTotalScore sets the "total_score" field.
func (m *ScreeningResultMutation) SetTotalScore(i int) {
	m.total_score = &i
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *ScreeningResultMutation) TotalScore() (r int, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the ScreeningResult entity.
// If the ScreeningResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningResultMutation) OldTotalScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds i to the "total_score" field.
func (m *ScreeningResultMutation) AddTotalScore(i int) {
	if m.addtotal_score != nil {
		*m.addtotal_score += i
	} else {
		m.addtotal_score = &i
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *ScreeningResultMutation) AddedTotalScore() (r int, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *ScreeningResultMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetSeverityBand sets the "severity_band" field.
func (m *ScreeningResultMutation) SetSeverityBand(sb screeningresult.SeverityBand) {
	m.severity_band = &sb
}

// SeverityBand returns the value of the "severity_band" field in the mutation.
func (m *ScreeningResultMutation) SeverityBand() (r screeningresult.SeverityBand, exists bool) {
	v := m.severity_band
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityBand returns the old "severity_band" field's value of the ScreeningResult entity.
// If the ScreeningResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningResultMutation) OldSeverityBand(ctx context.Context) (v screeningresult.SeverityBand, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityBand: %w", err)
	}
	return oldValue.SeverityBand, nil
}

// ResetSeverityBand resets all changes to the "severity_band" field.
func (m *ScreeningResultMutation) ResetSeverityBand() {
	m.severity_band = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *ScreeningResultMutation) SetRiskLevel(sl screeningresult.RiskLevel) {
	m.risk_level = &sl
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *ScreeningResultMutation) RiskLevel() (r screeningresult.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the ScreeningResult entity.
// If the ScreeningResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningResultMutation) OldRiskLevel(ctx context.Context) (v screeningresult.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *ScreeningResultMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetTriageAction sets the "triage_action" field.
func (m *ScreeningResultMutation) SetTriageAction(sa screeningresult.TriageAction) {
	m.triage_action = &sa
}

// TriageAction returns the value of the "triage_action" field in the mutation.
func (m *ScreeningResultMutation) TriageAction() (r screeningresult.TriageAction, exists bool) {
	v := m.triage_action
	if v == nil {
		return
	}
	return *v, true
}

// OldTriageAction returns the old "triage_action" field's value of the ScreeningResult entity.
// If the ScreeningResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningResultMutation) OldTriageAction(ctx context.Context) (v screeningresult.TriageAction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriageAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriageAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriageAction: %w", err)
	}
	return oldValue.TriageAction, nil
}

// ResetTriageAction resets all changes to the "triage_action" field.
func (m *ScreeningResultMutation) ResetTriageAction() {
	m.triage_action = nil
}

// SetRecommendedModule sets the "recommended_module" field.
func (m *ScreeningResultMutation) SetRecommendedModule(s string) {
	m.recommended_module = &s
}

// RecommendedModule returns the value of the "recommended_module" field in the mutation.
func (m *ScreeningResultMutation) RecommendedModule() (r string, exists bool) {
	v := m.recommended_module
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedModule returns the old "recommended_module" field's value of the ScreeningResult entity.
// If the ScreeningResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScreeningResultMutation) OldRecommendedModule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedModule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedModule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedModule: %w", err)
	}
	return oldValue.RecommendedModule, nil
}

// ClearRecommendedModule clears the value of the "recommended_module" field.
func (m *ScreeningResultMutation) ClearRecommendedModule() {
	m.recommended_module = nil
	m.clearedFields[screeningresult.FieldRecommendedModule] = struct{}{}
}

// RecommendedModuleCleared returns if the "recommended_module" field was cleared in this mutation.
func (m *ScreeningResultMutation) RecommendedModuleCleared() bool {
	_, ok := m.clearedFields[screeningresult.FieldRecommendedModule]
	return ok
}

// ResetRecommendedModule resets all changes to the "recommended_module" field.
func (m *ScreeningResultMutation) ResetRecommendedModule() {
	m.recommended_module = nil
	delete(m.clearedFields, screeningresult.FieldRecommendedModule)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *ScreeningResultMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[screeningresult.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *ScreeningResultMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *ScreeningResultMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *ScreeningResultMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// AddAlertIDs adds the "alert" edge to the ScreeningAlert entity by ids.
func (m *ScreeningResultMutation) AddAlertIDs(ids ...uuid.UUID) {
	if m.alert == nil {
		m.alert = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.alert[ids[i]] = struct{}{}
	}
}

// ClearAlert clears the "alert" edge to the ScreeningAlert entity.
func (m *ScreeningResultMutation) ClearAlert() {
	m.clearedalert = true
}

// AlertCleared reports if the "alert" edge to the ScreeningAlert entity was cleared.
func (m *ScreeningResultMutation) AlertCleared() bool {
	return m.clearedalert
}

// RemoveAlertIDs removes the "alert" edge to the ScreeningAlert entity by IDs.
func (m *ScreeningResultMutation) RemoveAlertIDs(ids ...uuid.UUID) {
	if m.removedalert == nil {
		m.removedalert = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.alert, ids[i])
		m.removedalert[ids[i]] = struct{}{}
	}
}

// RemovedAlert returns the removed IDs of the "alert" edge to the ScreeningAlert entity.
func (m *ScreeningResultMutation) RemovedAlertIDs() (ids []uuid.UUID) {
	for id := range m.removedalert {
		ids = append(ids, id)
	}
	return
}

// AlertIDs returns the "alert" edge IDs in the mutation.
func (m *ScreeningResultMutation) AlertIDs() (ids []uuid.UUID) {
	for id := range m.alert {
		ids = append(ids, id)
	}
	return
}

// ResetAlert resets all changes to the "alert" edge.
func (m *ScreeningResultMutation) ResetAlert() {
	m.alert = nil
	m.clearedalert = false
	m.removedalert = nil
}

// AddReferralIDs adds the "referral" edge to the TeleconsultReferral entity by ids.
func (m *ScreeningResultMutation) AddReferralIDs(ids ...uuid.UUID) {
	if m.referral == nil {
		m.referral = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.referral[ids[i]] = struct{}{}
	}
}

// ClearReferral clears the "referral" edge to the TeleconsultReferral entity.
func (m *ScreeningResultMutation) ClearReferral() {
	m.clearedreferral = true
}

// ReferralCleared reports if the "referral" edge to the TeleconsultReferral entity was cleared.
func (m *ScreeningResultMutation) ReferralCleared() bool {
	return m.clearedreferral
}

// RemoveReferralIDs removes the "referral" edge to the TeleconsultReferral entity by IDs.
func (m *ScreeningResultMutation) RemoveReferralIDs(ids ...uuid.UUID) {
	if m.removedreferral == nil {
		m.removedreferral = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.referral, ids[i])
		m.removedreferral[ids[i]] = struct{}{}
	}
}

// RemovedReferral returns the removed IDs of the "referral" edge to the TeleconsultReferral entity.
func (m *ScreeningResultMutation) RemovedReferralIDs() (ids []uuid.UUID) {
	for id := range m.removedreferral {
		ids = append(ids, id)
	}
	return
}

// ReferralIDs returns the "referral" edge IDs in the mutation.
func (m *ScreeningResultMutation) ReferralIDs() (ids []uuid.UUID) {
	for id := range m.referral {
		ids = append(ids, id)
	}
	return
}

// ResetReferral resets all changes to the "referral" edge.
func (m *ScreeningResultMutation) ResetReferral() {
	m.referral = nil
	m.clearedreferral = false
	m.removedreferral = nil
}

// Where appends a list predicates to the ScreeningResultMutation builder.
func (m *ScreeningResultMutation) Where(ps ...predicate.ScreeningResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScreeningResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScreeningResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScreeningResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScreeningResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScreeningResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScreeningResult).
func (m *ScreeningResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScreeningResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, screeningresult.FieldCreatedAt)
	}
	if m.patient != nil {
		fields = append(fields, screeningresult.FieldPatientID)
	}
	if m.instrument != nil {
		fields = append(fields, screeningresult.FieldInstrument)
	}
	if m.answers != nil {
		fields = append(fields, screeningresult.FieldAnswers)
	}
	if m.total_score != nil {
		fields = append(fields, screeningresult.FieldTotalScore)
	}
	if m.severity_band != nil {
		fields = append(fields, screeningresult.FieldSeverityBand)
	}
	if m.risk_level != nil {
		fields = append(fields, screeningresult.FieldRiskLevel)
	}
	if m.triage_action != nil {
		fields = append(fields, screeningresult.FieldTriageAction)
	}
	if m.recommended_module != nil {
		fields = append(fields, screeningresult.FieldRecommendedModule)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScreeningResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case screeningresult.FieldCreatedAt:
		return m.CreatedAt()
	case screeningresult.FieldPatientID:
		return m.PatientID()
	case screeningresult.FieldInstrument:
		return m.Instrument()
	case screeningresult.FieldAnswers:
		return m.Answers()
	case screeningresult.FieldTotalScore:
		return m.TotalScore()
	case screeningresult.FieldSeverityBand:
		return m.SeverityBand()
	case screeningresult.FieldRiskLevel:
		return m.RiskLevel()
	case screeningresult.FieldTriageAction:
		return m.TriageAction()
	case screeningresult.FieldRecommendedModule:
		return m.RecommendedModule()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScreeningResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case screeningresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case screeningresult.FieldPatientID:
		return m.OldPatientID(ctx)
	case screeningresult.FieldInstrument:
		return m.OldInstrument(ctx)
	case screeningresult.FieldAnswers:
		return m.OldAnswers(ctx)
	case screeningresult.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case screeningresult.FieldSeverityBand:
		return m.OldSeverityBand(ctx)
	case screeningresult.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case screeningresult.FieldTriageAction:
		return m.OldTriageAction(ctx)
	case screeningresult.FieldRecommendedModule:
		return m.OldRecommendedModule(ctx)
	}
	return nil, fmt.Errorf("unknown ScreeningResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreeningResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case screeningresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case screeningresult.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case screeningresult.FieldInstrument:
		v, ok := value.(screeningresult.Instrument)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstrument(v)
		return nil
	case screeningresult.FieldAnswers:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case screeningresult.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case screeningresult.FieldSeverityBand:
		v, ok := value.(screeningresult.SeverityBand)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityBand(v)
		return nil
	case screeningresult.FieldRiskLevel:
		v, ok := value.(screeningresult.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case screeningresult.FieldTriageAction:
		v, ok := value.(screeningresult.TriageAction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriageAction(v)
		return nil
	case screeningresult.FieldRecommendedModule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedModule(v)
		return nil
	}
	return fmt.Errorf("unknown ScreeningResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScreeningResultMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_score != nil {
		fields = append(fields, screeningresult.FieldTotalScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScreeningResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case screeningresult.FieldTotalScore:
		return m.AddedTotalScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScreeningResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case screeningresult.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	}
	return fmt.Errorf("unknown ScreeningResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScreeningResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(screeningresult.FieldRecommendedModule) {
		fields = append(fields, screeningresult.FieldRecommendedModule)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScreeningResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScreeningResultMutation) ClearField(name string) error {
	switch name {
	case screeningresult.FieldRecommendedModule:
		m.ClearRecommendedModule()
		return nil
	}
	return fmt.Errorf("unknown ScreeningResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScreeningResultMutation) ResetField(name string) error {
	switch name {
	case screeningresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case screeningresult.FieldPatientID:
		m.ResetPatientID()
		return nil
	case screeningresult.FieldInstrument:
		m.ResetInstrument()
		return nil
	case screeningresult.FieldAnswers:
		m.ResetAnswers()
		return nil
	case screeningresult.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case screeningresult.FieldSeverityBand:
		m.ResetSeverityBand()
		return nil
	case screeningresult.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case screeningresult.FieldTriageAction:
		m.ResetTriageAction()
		return nil
	case screeningresult.FieldRecommendedModule:
		m.ResetRecommendedModule()
		return nil
	}
	return fmt.Errorf("unknown ScreeningResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScreeningResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.patient != nil {
		edges = append(edges, screeningresult.EdgePatient)
	}
	if m.alert != nil {
		edges = append(edges, screeningresult.EdgeAlert)
	}
	if m.referral != nil {
		edges = append(edges, screeningresult.EdgeReferral)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScreeningResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case screeningresult.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case screeningresult.EdgeAlert:
		ids := make([]ent.Value, 0, len(m.alert))
		for id := range m.alert {
			ids = append(ids, id)
		}
		return ids
	case screeningresult.EdgeReferral:
		ids := make([]ent.Value, 0, len(m.referral))
		for id := range m.referral {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScreeningResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedalert != nil {
		edges = append(edges, screeningresult.EdgeAlert)
	}
	if m.removedreferral != nil {
		edges = append(edges, screeningresult.EdgeReferral)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScreeningResultMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case screeningresult.EdgeAlert:
		ids := make([]ent.Value, 0, len(m.removedalert))
		for id := range m.removedalert {
			ids = append(ids, id)
		}
		return ids
	case screeningresult.EdgeReferral:
		ids := make([]ent.Value, 0, len(m.removedreferral))
		for id := range m.removedreferral {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScreeningResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpatient {
		edges = append(edges, screeningresult.EdgePatient)
	}
	if m.clearedalert {
		edges = append(edges, screeningresult.EdgeAlert)
	}
	if m.clearedreferral {
		edges = append(edges, screeningresult.EdgeReferral)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScreeningResultMutation) EdgeCleared(name string) bool {
	switch name {
	case screeningresult.EdgePatient:
		return m.clearedpatient
	case screeningresult.EdgeAlert:
		return m.clearedalert
	case screeningresult.EdgeReferral:
		return m.clearedreferral
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScreeningResultMutation) ClearEdge(name string) error {
	switch name {
	case screeningresult.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown ScreeningResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScreeningResultMutation) ResetEdge(name string) error {
	switch name {
	case screeningresult.EdgePatient:
		m.ResetPatient()
		return nil
	case screeningresult.EdgeAlert:
		m.ResetAlert()
		return nil
	case screeningresult.EdgeReferral:
		m.ResetReferral()
		return nil
	}
	return fmt.Errorf("unknown ScreeningResult edge %s", name)
}

// SelfCareExerciseMutation represents an operation that mutates the SelfCareExercise nodes in the graph.
type SelfCareExerciseMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	slug                *string
	name                *string
	description         *string
	exercise_type       *selfcareexercise.ExerciseType
	duration_minutes    *int
	addduration_minutes *int
	difficulty          *selfcareexercise.Difficulty
	instructions        *string
	benefits            *string
	is_active           *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SelfCareExercise, error)
	predicates          []predicate.SelfCareExercise
}

var _ ent.Mutation = (*SelfCareExerciseMutation)(nil)

// selfcareexerciseOption allows management of the mutation configuration using functional options.
type selfcareexerciseOption func(*SelfCareExerciseMutation)

// newSelfCareExerciseMutation creates new mutation for the SelfCareExercise entity.
func newSelfCareExerciseMutation(c config, op Op, opts ...selfcareexerciseOption) *SelfCareExerciseMutation {
	m := &SelfCareExerciseMutation{
		config:        c,
		op:            op,
		typ:           TypeSelfCareExercise,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSelfCareExerciseID sets the ID field of the mutation.
func withSelfCareExerciseID(id uuid.UUID) selfcareexerciseOption {
	return func(m *SelfCareExerciseMutation) {
		var (
			err   error
			once  sync.Once
			value *SelfCareExercise
		)
		m.oldValue = func(ctx context.Context) (*SelfCareExercise, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SelfCareExercise.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSelfCareExercise sets the old SelfCareExercise of the mutation.
func withSelfCareExercise(node *SelfCareExercise) selfcareexerciseOption {
	return func(m *SelfCareExerciseMutation) {
		m.oldValue = func(context.Context) (*SelfCareExercise, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SelfCareExerciseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SelfCareExerciseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SelfCareExercise entities.
func (m *SelfCareExerciseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SelfCareExerciseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SelfCareExerciseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SelfCareExercise.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SelfCareExerciseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SelfCareExerciseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SelfCareExerciseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SelfCareExerciseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SelfCareExerciseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SelfCareExerciseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSlug sets the "slug" field.
func (m *SelfCareExerciseMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *SelfCareExerciseMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *SelfCareExerciseMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *SelfCareExerciseMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SelfCareExerciseMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SelfCareExerciseMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SelfCareExerciseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SelfCareExerciseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SelfCareExerciseMutation) ResetDescription() {
	m.description = nil
}

// SetExerciseType sets the "exercise_type" field.
func (m *SelfCareExerciseMutation) SetExerciseType(st selfcareexercise.ExerciseType) {
	m.exercise_type = &st
}

// ExerciseType returns the value of the "exercise_type" field in the mutation.
func (m *SelfCareExerciseMutation) ExerciseType() (r selfcareexercise.ExerciseType, exists bool) {
	v := m.exercise_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseType returns the old "exercise_type" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldExerciseType(ctx context.Context) (v selfcareexercise.ExerciseType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseType: %w", err)
	}
	return oldValue.ExerciseType, nil
}

// ResetExerciseType resets all changes to the "exercise_type" field.
func (m *SelfCareExerciseMutation) ResetExerciseType() {
	m.exercise_type = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *SelfCareExerciseMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *SelfCareExerciseMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *SelfCareExerciseMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *SelfCareExerciseMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *SelfCareExerciseMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *SelfCareExerciseMutation) SetDifficulty(s selfcareexercise.Difficulty) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *SelfCareExerciseMutation) Difficulty() (r selfcareexercise.Difficulty, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldDifficulty(ctx context.Context) (v selfcareexercise.Difficulty, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *SelfCareExerciseMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetInstructions sets the "instructions" field.
func (m *SelfCareExerciseMutation) SetInstructions(s string) {
	m.instructions = &s
}

// Instructions returns the value of the "instructions" field in the mutation.
func (m *SelfCareExerciseMutation) Instructions() (r string, exists bool) {
	v := m.instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructions returns the old "instructions" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructions: %w", err)
	}
	return oldValue.Instructions, nil
}

// ResetInstructions resets all changes to the "instructions" field.
func (m *SelfCareExerciseMutation) ResetInstructions() {
	m.instructions = nil
}

// SetBenefits sets the "benefits" field.
func (m *SelfCareExerciseMutation) SetBenefits(s string) {
	m.benefits = &s
}

// Benefits returns the value of the "benefits" field in the mutation.
func (m *SelfCareExerciseMutation) Benefits() (r string, exists bool) {
	v := m.benefits
	if v == nil {
		return
	}
	return *v, true
}

// OldBenefits returns the old "benefits" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldBenefits(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBenefits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBenefits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBenefits: %w", err)
	}
	return oldValue.Benefits, nil
}

// ClearBenefits clears the value of the "benefits" field.
func (m *SelfCareExerciseMutation) ClearBenefits() {
	m.benefits = nil
	m.clearedFields[selfcareexercise.FieldBenefits] = struct{}{}
}

// BenefitsCleared returns if the "benefits" field was cleared in this mutation.
func (m *SelfCareExerciseMutation) BenefitsCleared() bool {
	_, ok := m.clearedFields[selfcareexercise.FieldBenefits]
	return ok
}

// ResetBenefits resets all changes to the "benefits" field.
func (m *SelfCareExerciseMutation) ResetBenefits() {
	m.benefits = nil
	delete(m.clearedFields, selfcareexercise.FieldBenefits)
}

// SetIsActive sets the "is_active" field.
func (m *SelfCareExerciseMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *SelfCareExerciseMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the SelfCareExercise entity.
// If the SelfCareExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SelfCareExerciseMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *SelfCareExerciseMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the SelfCareExerciseMutation builder.
func (m *SelfCareExerciseMutation) Where(ps ...predicate.SelfCareExercise) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SelfCareExerciseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SelfCareExerciseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SelfCareExercise, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SelfCareExerciseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SelfCareExerciseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SelfCareExercise).
func (m *SelfCareExerciseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SelfCareExerciseMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, selfcareexercise.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, selfcareexercise.FieldUpdatedAt)
	}
	if m.slug != nil {
		fields = append(fields, selfcareexercise.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, selfcareexercise.FieldName)
	}
	if m.description != nil {
		fields = append(fields, selfcareexercise.FieldDescription)
	}
	if m.exercise_type != nil {
		fields = append(fields, selfcareexercise.FieldExerciseType)
	}
	if m.duration_minutes != nil {
		fields = append(fields, selfcareexercise.FieldDurationMinutes)
	}
	if m.difficulty != nil {
		fields = append(fields, selfcareexercise.FieldDifficulty)
	}
	if m.instructions != nil {
		fields = append(fields, selfcareexercise.FieldInstructions)
	}
	if m.benefits != nil {
		fields = append(fields, selfcareexercise.FieldBenefits)
	}
	if m.is_active != nil {
		fields = append(fields, selfcareexercise.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SelfCareExerciseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case selfcareexercise.FieldCreatedAt:
		return m.CreatedAt()
	case selfcareexercise.FieldUpdatedAt:
		return m.UpdatedAt()
	case selfcareexercise.FieldSlug:
		return m.Slug()
	case selfcareexercise.FieldName:
		return m.Name()
	case selfcareexercise.FieldDescription:
		return m.Description()
	case selfcareexercise.FieldExerciseType:
		return m.ExerciseType()
	case selfcareexercise.FieldDurationMinutes:
		return m.DurationMinutes()
	case selfcareexercise.FieldDifficulty:
		return m.Difficulty()
	case selfcareexercise.FieldInstructions:
		return m.Instructions()
	case selfcareexercise.FieldBenefits:
		return m.Benefits()
	case selfcareexercise.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SelfCareExerciseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case selfcareexercise.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case selfcareexercise.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case selfcareexercise.FieldSlug:
		return m.OldSlug(ctx)
	case selfcareexercise.FieldName:
		return m.OldName(ctx)
	case selfcareexercise.FieldDescription:
		return m.OldDescription(ctx)
	case selfcareexercise.FieldExerciseType:
		return m.OldExerciseType(ctx)
	case selfcareexercise.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case selfcareexercise.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case selfcareexercise.FieldInstructions:
		return m.OldInstructions(ctx)
	case selfcareexercise.FieldBenefits:
		return m.OldBenefits(ctx)
	case selfcareexercise.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown SelfCareExercise field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SelfCareExerciseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case selfcareexercise.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case selfcareexercise.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case selfcareexercise.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case selfcareexercise.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case selfcareexercise.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case selfcareexercise.FieldExerciseType:
		v, ok := value.(selfcareexercise.ExerciseType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseType(v)
		return nil
	case selfcareexercise.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case selfcareexercise.FieldDifficulty:
		v, ok := value.(selfcareexercise.Difficulty)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case selfcareexercise.FieldInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructions(v)
		return nil
	case selfcareexercise.FieldBenefits:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBenefits(v)
		return nil
	case selfcareexercise.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown SelfCareExercise field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SelfCareExerciseMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, selfcareexercise.FieldDurationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SelfCareExerciseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case selfcareexercise.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SelfCareExerciseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case selfcareexercise.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown SelfCareExercise numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SelfCareExerciseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(selfcareexercise.FieldBenefits) {
		fields = append(fields, selfcareexercise.FieldBenefits)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SelfCareExerciseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SelfCareExerciseMutation) ClearField(name string) error {
	switch name {
	case selfcareexercise.FieldBenefits:
		m.ClearBenefits()
		return nil
	}
	return fmt.Errorf("unknown SelfCareExercise nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SelfCareExerciseMutation) ResetField(name string) error {
	switch name {
	case selfcareexercise.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case selfcareexercise.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case selfcareexercise.FieldSlug:
		m.ResetSlug()
		return nil
	case selfcareexercise.FieldName:
		m.ResetName()
		return nil
	case selfcareexercise.FieldDescription:
		m.ResetDescription()
		return nil
	case selfcareexercise.FieldExerciseType:
		m.ResetExerciseType()
		return nil
	case selfcareexercise.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case selfcareexercise.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case selfcareexercise.FieldInstructions:
		m.ResetInstructions()
		return nil
	case selfcareexercise.FieldBenefits:
		m.ResetBenefits()
		return nil
	case selfcareexercise.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown SelfCareExercise field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SelfCareExerciseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SelfCareExerciseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SelfCareExerciseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SelfCareExerciseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SelfCareExerciseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SelfCareExerciseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SelfCareExerciseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SelfCareExercise unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SelfCareExerciseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SelfCareExercise edge %s", name)
}

// TeleconsultReferralMutation represents an operation that mutates the TeleconsultReferral nodes in the graph.
type TeleconsultReferralMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	reason           *string
	priority         *teleconsultreferral.Priority
	status           *teleconsultreferral.Status
	scheduled_date   *time.Time
	clinician_notes  *string
	clearedFields    map[string]struct{}
	patient          *uuid.UUID
	clearedpatient   bool
	screening        *uuid.UUID
	clearedscreening bool
	done             bool
	oldValue         func(context.Context) (*TeleconsultReferral, error)
	predicates       []predicate.TeleconsultReferral
}

var _ ent.Mutation = (*TeleconsultReferralMutation)(nil)

// teleconsultreferralOption allows management of the mutation configuration using functional options.
type teleconsultreferralOption func(*TeleconsultReferralMutation)

// newTeleconsultReferralMutation creates new mutation for the TeleconsultReferral entity.
func newTeleconsultReferralMutation(c config, op Op, opts ...teleconsultreferralOption) *TeleconsultReferralMutation {
	m := &TeleconsultReferralMutation{
		config:        c,
		op:            op,
		typ:           TypeTeleconsultReferral,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeleconsultReferralID sets the ID field of the mutation.
func withTeleconsultReferralID(id uuid.UUID) teleconsultreferralOption {
	return func(m *TeleconsultReferralMutation) {
		var (
			err   error
			once  sync.Once
			value *TeleconsultReferral
		)
		m.oldValue = func(ctx context.Context) (*TeleconsultReferral, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TeleconsultReferral.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeleconsultReferral sets the old TeleconsultReferral of the mutation.
func withTeleconsultReferral(node *TeleconsultReferral) teleconsultreferralOption {
	return func(m *TeleconsultReferralMutation) {
		m.oldValue = func(context.Context) (*TeleconsultReferral, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeleconsultReferralMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeleconsultReferralMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TeleconsultReferral entities.
func (m *TeleconsultReferralMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeleconsultReferralMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeleconsultReferralMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TeleconsultReferral.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TeleconsultReferralMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeleconsultReferralMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TeleconsultReferral entity.
// If the TeleconsultReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeleconsultReferralMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeleconsultReferralMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TeleconsultReferralMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TeleconsultReferralMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TeleconsultReferral entity.
// If the TeleconsultReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeleconsultReferralMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TeleconsultReferralMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *TeleconsultReferralMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *TeleconsultReferralMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the TeleconsultReferral entity.
// If the TeleconsultReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeleconsultReferralMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *TeleconsultReferralMutation) ResetPatientID() {
	m.patient = nil
}

// SetScreeningResultID sets the "screening_result_id" field.
func (m *TeleconsultReferralMutation) SetScreeningResultID(u uuid.UUID) {
	m.screening = &u
}

// ScreeningResultID returns the value of the "screening_result_id" field in the mutation.
func (m *TeleconsultReferralMutation) ScreeningResultID() (r uuid.UUID, exists bool) {
	v := m.screening
	if v == nil {
		return
	}
	return *v, true
}

// OldScreeningResultID returns the old "screening_result_id" field's value of the TeleconsultReferral entity.
// If the TeleconsultReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeleconsultReferralMutation) OldScreeningResultID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreeningResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreeningResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreeningResultID: %w", err)
	}
	return oldValue.ScreeningResultID, nil
}

// ResetScreeningResultID resets all changes to the "screening_result_id" field.
func (m *TeleconsultReferralMutation) ResetScreeningResultID() {
	m.screening = nil
}

// SetReason sets the "reason" field.
func (m *TeleconsultReferralMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *TeleconsultReferralMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the TeleconsultReferral entity.
// If the TeleconsultReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeleconsultReferralMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *TeleconsultReferralMutation) ResetReason() {
	m.reason = nil
}

// SetPriority sets the "priority" field.
func (m *TeleconsultReferralMutation) SetPriority(t teleconsultreferral.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TeleconsultReferralMutation) Priority() (r teleconsultreferral.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the TeleconsultReferral entity.
// If the TeleconsultReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeleconsultReferralMutation) OldPriority(ctx context.Context) (v teleconsultreferral.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TeleconsultReferralMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *TeleconsultReferralMutation) SetStatus(t teleconsultreferral.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TeleconsultReferralMutation) Status() (r teleconsultreferral.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TeleconsultReferral entity.
// If the TeleconsultReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeleconsultReferralMutation) OldStatus(ctx context.Context) (v teleconsultreferral.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TeleconsultReferralMutation) ResetStatus() {
	m.status = nil
}

// SetScheduledDate sets the "scheduled_date" field.
func (m *TeleconsultReferralMutation) SetScheduledDate(t time.Time) {
	m.scheduled_date = &t
}

// ScheduledDate returns the value of the "scheduled_date" field in the mutation.
func (m *TeleconsultReferralMutation) ScheduledDate() (r time.Time, exists bool) {
	v := m.scheduled_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledDate returns the old "scheduled_date" field's value of the TeleconsultReferral entity.
// If the TeleconsultReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeleconsultReferralMutation) OldScheduledDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledDate: %w", err)
	}
	return oldValue.ScheduledDate, nil
}

// ClearScheduledDate clears the value of the "scheduled_date" field.
func (m *TeleconsultReferralMutation) ClearScheduledDate() {
	m.scheduled_date = nil
	m.clearedFields[teleconsultreferral.FieldScheduledDate] = struct{}{}
}

// ScheduledDateCleared returns if the "scheduled_date" field was cleared in this mutation.
func (m *TeleconsultReferralMutation) ScheduledDateCleared() bool {
	_, ok := m.clearedFields[teleconsultreferral.FieldScheduledDate]
	return ok
}

// ResetScheduledDate resets all changes to the "scheduled_date" field.
func (m *TeleconsultReferralMutation) ResetScheduledDate() {
	m.scheduled_date = nil
	delete(m.clearedFields, teleconsultreferral.FieldScheduledDate)
}

// SetClinicianNotes sets the "clinician_notes" field.
func (m *TeleconsultReferralMutation) SetClinicianNotes(s string) {
	m.clinician_notes = &s
}

// ClinicianNotes returns the value of the "clinician_notes" field in the mutation.
func (m *TeleconsultReferralMutation) ClinicianNotes() (r string, exists bool) {
	v := m.clinician_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicianNotes returns the old "clinician_notes" field's value of the TeleconsultReferral entity.
// If the TeleconsultReferral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeleconsultReferralMutation) OldClinicianNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicianNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicianNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicianNotes: %w", err)
	}
	return oldValue.ClinicianNotes, nil
}

// ClearClinicianNotes clears the value of the "clinician_notes" field.
func (m *TeleconsultReferralMutation) ClearClinicianNotes() {
	m.clinician_notes = nil
	m.clearedFields[teleconsultreferral.FieldClinicianNotes] = struct{}{}
}

// ClinicianNotesCleared returns if the "clinician_notes" field was cleared in this mutation.
func (m *TeleconsultReferralMutation) ClinicianNotesCleared() bool {
	_, ok := m.clearedFields[teleconsultreferral.FieldClinicianNotes]
	return ok
}

// ResetClinicianNotes resets all changes to the "clinician_notes" field.
func (m *TeleconsultReferralMutation) ResetClinicianNotes() {
	m.clinician_notes = nil
	delete(m.clearedFields, teleconsultreferral.FieldClinicianNotes)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *TeleconsultReferralMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[teleconsultreferral.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *TeleconsultReferralMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *TeleconsultReferralMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *TeleconsultReferralMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// SetScreeningID sets the "screening" edge to the ScreeningResult entity by id.
func (m *TeleconsultReferralMutation) SetScreeningID(id uuid.UUID) {
	m.screening = &id
}

// ClearScreening clears the "screening" edge to the ScreeningResult entity.
func (m *TeleconsultReferralMutation) ClearScreening() {
	m.clearedscreening = true
	m.clearedFields[teleconsultreferral.FieldScreeningResultID] = struct{}{}
}

// ScreeningCleared reports if the "screening" edge to the ScreeningResult entity was cleared.
func (m *TeleconsultReferralMutation) ScreeningCleared() bool {
	return m.clearedscreening
}

// ScreeningID returns the "screening" edge ID in the mutation.
func (m *TeleconsultReferralMutation) ScreeningID() (id uuid.UUID, exists bool) {
	if m.screening != nil {
		return *m.screening, true
	}
	return
}

// ScreeningIDs returns the "screening" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScreeningID instead. It exists only for internal usage by the builders.
func (m *TeleconsultReferralMutation) ScreeningIDs() (ids []uuid.UUID) {
	if id := m.screening; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScreening resets all changes to the "screening" edge.
func (m *TeleconsultReferralMutation) ResetScreening() {
	m.screening = nil
	m.clearedscreening = false
}

// Where appends a list predicates to the TeleconsultReferralMutation builder.
func (m *TeleconsultReferralMutation) Where(ps ...predicate.TeleconsultReferral) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeleconsultReferralMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeleconsultReferralMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TeleconsultReferral, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeleconsultReferralMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeleconsultReferralMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TeleconsultReferral).
func (m *TeleconsultReferralMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeleconsultReferralMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, teleconsultreferral.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, teleconsultreferral.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, teleconsultreferral.FieldPatientID)
	}
	if m.screening != nil {
		fields = append(fields, teleconsultreferral.FieldScreeningResultID)
	}
	if m.reason != nil {
		fields = append(fields, teleconsultreferral.FieldReason)
	}
	if m.priority != nil {
		fields = append(fields, teleconsultreferral.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, teleconsultreferral.FieldStatus)
	}
	if m.scheduled_date != nil {
		fields = append(fields, teleconsultreferral.FieldScheduledDate)
	}
	if m.clinician_notes != nil {
		fields = append(fields, teleconsultreferral.FieldClinicianNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeleconsultReferralMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case teleconsultreferral.FieldCreatedAt:
		return m.CreatedAt()
	case teleconsultreferral.FieldUpdatedAt:
		return m.UpdatedAt()
	case teleconsultreferral.FieldPatientID:
		return m.PatientID()
	case teleconsultreferral.FieldScreeningResultID:
		return m.ScreeningResultID()
	case teleconsultreferral.FieldReason:
		return m.Reason()
	case teleconsultreferral.FieldPriority:
		return m.Priority()
	case teleconsultreferral.FieldStatus:
		return m.Status()
	case teleconsultreferral.FieldScheduledDate:
		return m.ScheduledDate()
	case teleconsultreferral.FieldClinicianNotes:
		return m.ClinicianNotes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeleconsultReferralMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case teleconsultreferral.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case teleconsultreferral.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case teleconsultreferral.FieldPatientID:
		return m.OldPatientID(ctx)
	case teleconsultreferral.FieldScreeningResultID:
		return m.OldScreeningResultID(ctx)
	case teleconsultreferral.FieldReason:
		return m.OldReason(ctx)
	case teleconsultreferral.FieldPriority:
		return m.OldPriority(ctx)
	case teleconsultreferral.FieldStatus:
		return m.OldStatus(ctx)
	case teleconsultreferral.FieldScheduledDate:
		return m.OldScheduledDate(ctx)
	case teleconsultreferral.FieldClinicianNotes:
		return m.OldClinicianNotes(ctx)
	}
	return nil, fmt.Errorf("unknown TeleconsultReferral field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeleconsultReferralMutation) SetField(name string, value ent.Value) error {
	switch name {
	case teleconsultreferral.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case teleconsultreferral.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case teleconsultreferral.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case teleconsultreferral.FieldScreeningResultID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreeningResultID(v)
		return nil
	case teleconsultreferral.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case teleconsultreferral.FieldPriority:
		v, ok := value.(teleconsultreferral.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case teleconsultreferral.FieldStatus:
		v, ok := value.(teleconsultreferral.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case teleconsultreferral.FieldScheduledDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledDate(v)
		return nil
	case teleconsultreferral.FieldClinicianNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicianNotes(v)
		return nil
	}
	return fmt.Errorf("unknown TeleconsultReferral field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeleconsultReferralMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeleconsultReferralMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeleconsultReferralMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TeleconsultReferral numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeleconsultReferralMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(teleconsultreferral.FieldScheduledDate) {
		fields = append(fields, teleconsultreferral.FieldScheduledDate)
	}
	if m.FieldCleared(teleconsultreferral.FieldClinicianNotes) {
		fields = append(fields, teleconsultreferral.FieldClinicianNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeleconsultReferralMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeleconsultReferralMutation) ClearField(name string) error {
	switch name {
	case teleconsultreferral.FieldScheduledDate:
		m.ClearScheduledDate()
		return nil
	case teleconsultreferral.FieldClinicianNotes:
		m.ClearClinicianNotes()
		return nil
	}
	return fmt.Errorf("unknown TeleconsultReferral nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeleconsultReferralMutation) ResetField(name string) error {
	switch name {
	case teleconsultreferral.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case teleconsultreferral.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case teleconsultreferral.FieldPatientID:
		m.ResetPatientID()
		return nil
	case teleconsultreferral.FieldScreeningResultID:
		m.ResetScreeningResultID()
		return nil
	case teleconsultreferral.FieldReason:
		m.ResetReason()
		return nil
	case teleconsultreferral.FieldPriority:
		m.ResetPriority()
		return nil
	case teleconsultreferral.FieldStatus:
		m.ResetStatus()
		return nil
	case teleconsultreferral.FieldScheduledDate:
		m.ResetScheduledDate()
		return nil
	case teleconsultreferral.FieldClinicianNotes:
		m.ResetClinicianNotes()
		return nil
	}
	return fmt.Errorf("unknown TeleconsultReferral field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeleconsultReferralMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, teleconsultreferral.EdgePatient)
	}
	if m.screening != nil {
		edges = append(edges, teleconsultreferral.EdgeScreening)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeleconsultReferralMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case teleconsultreferral.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case teleconsultreferral.EdgeScreening:
		if id := m.screening; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeleconsultReferralMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeleconsultReferralMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeleconsultReferralMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, teleconsultreferral.EdgePatient)
	}
	if m.clearedscreening {
		edges = append(edges, teleconsultreferral.EdgeScreening)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeleconsultReferralMutation) EdgeCleared(name string) bool {
	switch name {
	case teleconsultreferral.EdgePatient:
		return m.clearedpatient
	case teleconsultreferral.EdgeScreening:
		return m.clearedscreening
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeleconsultReferralMutation) ClearEdge(name string) error {
	switch name {
	case teleconsultreferral.EdgePatient:
		m.ClearPatient()
		return nil
	case teleconsultreferral.EdgeScreening:
		m.ClearScreening()
		return nil
	}
	return fmt.Errorf("unknown TeleconsultReferral unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeleconsultReferralMutation) ResetEdge(name string) error {
	switch name {
	case teleconsultreferral.EdgePatient:
		m.ResetPatient()
		return nil
	case teleconsultreferral.EdgeScreening:
		m.ResetScreening()
		return nil
	}
	return fmt.Errorf("unknown TeleconsultReferral edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	email                    *string
	full_name                *string
	password_hash            *string
	role                     *user.Role
	status                   *user.Status
	last_login_at            *time.Time
	failed_login_attempts    *int
	addfailed_login_attempts *int
	locked_until             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*User, error)
	predicates               []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetFullName sets the "full_name" field.
func (m *UserMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *UserMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFullName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *UserMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[user.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *UserMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *UserMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, user.FieldFullName)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *UserMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *UserMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *UserMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *UserMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *UserMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *UserMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *UserMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *UserMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[user.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *UserMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[user.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *UserMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, user.FieldLockedUntil)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.full_name != nil {
		fields = append(fields, user.FieldFullName)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, user.FieldLockedUntil)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldEmail:
		return m.Email()
	case user.FieldFullName:
		return m.FullName()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldStatus:
		return m.Status()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case user.FieldLockedUntil:
		return m.LockedUntil()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldFullName:
		return m.OldFullName(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case user.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case user.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldFullName) {
		fields = append(fields, user.FieldFullName)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.FieldCleared(user.FieldLockedUntil) {
		fields = append(fields, user.FieldLockedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldFullName:
		m.ClearFullName()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case user.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldFullName:
		m.ResetFullName()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case user.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	last_used_at       *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	done               bool
	oldValue           func(context.Context) (*UserSession, error)
	predicates         []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id uuid.UUID) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserSessionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSessionMutation) ResetUserID() {
	m.user = nil
}

// SetSessionID sets the "session_id" field.
func (m *UserSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *UserSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *UserSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRefreshTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (m *UserSessionMutation) ClearRefreshTokenHash() {
	m.refresh_token_hash = nil
	m.clearedFields[usersession.FieldRefreshTokenHash] = struct{}{}
}

// RefreshTokenHashCleared returns if the "refresh_token_hash" field was cleared in this mutation.
func (m *UserSessionMutation) RefreshTokenHashCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRefreshTokenHash]
	return ok
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *UserSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
	delete(m.clearedFields, usersession.FieldRefreshTokenHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *UserSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *UserSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *UserSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[usersession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *UserSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[usersession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *UserSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, usersession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *UserSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *UserSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *UserSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[usersession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *UserSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[usersession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *UserSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, usersession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UserSessionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UserSessionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UserSessionMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[usersession.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UserSessionMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UserSessionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, usersession.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *UserSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *UserSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *UserSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[usersession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *UserSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *UserSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, usersession.FieldRevokedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usersession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserSessionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersession.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, usersession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usersession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	case usersession.FieldUpdatedAt:
		return m.UpdatedAt()
	case usersession.FieldUserID:
		return m.UserID()
	case usersession.FieldSessionID:
		return m.SessionID()
	case usersession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case usersession.FieldUserAgent:
		return m.UserAgent()
	case usersession.FieldIPAddress:
		return m.IPAddress()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldLastUsedAt:
		return m.LastUsedAt()
	case usersession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usersession.FieldUserID:
		return m.OldUserID(ctx)
	case usersession.FieldSessionID:
		return m.OldSessionID(ctx)
	case usersession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case usersession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case usersession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case usersession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usersession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usersession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case usersession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case usersession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case usersession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersession.FieldRefreshTokenHash) {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.FieldCleared(usersession.FieldUserAgent) {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.FieldCleared(usersession.FieldIPAddress) {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.FieldCleared(usersession.FieldLastUsedAt) {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.FieldCleared(usersession.FieldRevokedAt) {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	switch name {
	case usersession.FieldRefreshTokenHash:
		m.ClearRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case usersession.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usersession.FieldUserID:
		m.ResetUserID()
		return nil
	case usersession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usersession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usersession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case usersession.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession edge %s", name)
}
