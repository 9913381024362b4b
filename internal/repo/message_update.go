// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/message"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDetectedEmotion sets the "detected_emotion" field.
func (_u *MessageUpdate) SetDetectedEmotion(v string) *MessageUpdate {
	_u.mutation.SetDetectedEmotion(v)
	return _u
}

// SetNillableDetectedEmotion sets the "detected_emotion" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableDetectedEmotion(v *string) *MessageUpdate {
	if v != nil {
		_u.SetDetectedEmotion(*v)
	}
	return _u
}

// ClearDetectedEmotion clears the value of the "detected_emotion" field.
func (_u *MessageUpdate) ClearDetectedEmotion() *MessageUpdate {
	_u.mutation.ClearDetectedEmotion()
	return _u
}

// SetEmotionConfidence sets the "emotion_confidence" field.
func (_u *MessageUpdate) SetEmotionConfidence(v float64) *MessageUpdate {
	_u.mutation.ResetEmotionConfidence()
	_u.mutation.SetEmotionConfidence(v)
	return _u
}

// SetNillableEmotionConfidence sets the "emotion_confidence" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableEmotionConfidence(v *float64) *MessageUpdate {
	if v != nil {
		_u.SetEmotionConfidence(*v)
	}
	return _u
}

// AddEmotionConfidence adds value to the "emotion_confidence" field.
func (_u *MessageUpdate) AddEmotionConfidence(v float64) *MessageUpdate {
	_u.mutation.AddEmotionConfidence(v)
	return _u
}

// ClearEmotionConfidence clears the value of the "emotion_confidence" field.
func (_u *MessageUpdate) ClearEmotionConfidence() *MessageUpdate {
	_u.mutation.ClearEmotionConfidence()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *MessageUpdate) SetRiskLevel(v message.RiskLevel) *MessageUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRiskLevel(v *message.RiskLevel) *MessageUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *MessageUpdate) ClearRiskLevel() *MessageUpdate {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetRiskKeywords sets the "risk_keywords" field.
func (_u *MessageUpdate) SetRiskKeywords(v []string) *MessageUpdate {
	_u.mutation.SetRiskKeywords(v)
	return _u
}

// AppendRiskKeywords appends value to the "risk_keywords" field.
func (_u *MessageUpdate) AppendRiskKeywords(v []string) *MessageUpdate {
	_u.mutation.AppendRiskKeywords(v)
	return _u
}

// ClearRiskKeywords clears the value of the "risk_keywords" field.
func (_u *MessageUpdate) ClearRiskKeywords() *MessageUpdate {
	_u.mutation.ClearRiskKeywords()
	return _u
}

// SetIntent sets the "intent" field.
func (_u *MessageUpdate) SetIntent(v string) *MessageUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableIntent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *MessageUpdate) ClearIntent() *MessageUpdate {
	_u.mutation.ClearIntent()
	return _u
}

// SetIntentConfidence sets the "intent_confidence" field.
func (_u *MessageUpdate) SetIntentConfidence(v float64) *MessageUpdate {
	_u.mutation.ResetIntentConfidence()
	_u.mutation.SetIntentConfidence(v)
	return _u
}

// SetNillableIntentConfidence sets the "intent_confidence" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableIntentConfidence(v *float64) *MessageUpdate {
	if v != nil {
		_u.SetIntentConfidence(*v)
	}
	return _u
}

// AddIntentConfidence adds value to the "intent_confidence" field.
func (_u *MessageUpdate) AddIntentConfidence(v float64) *MessageUpdate {
	_u.mutation.AddIntentConfidence(v)
	return _u
}

// ClearIntentConfidence clears the value of the "intent_confidence" field.
func (_u *MessageUpdate) ClearIntentConfidence() *MessageUpdate {
	_u.mutation.ClearIntentConfidence()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.DetectedEmotion(); ok {
		if err := message.DetectedEmotionValidator(v); err != nil {
			return &ValidationError{Name: "detected_emotion", err: fmt.Errorf(`repo: validator failed for field "Message.detected_emotion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := message.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "Message.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Intent(); ok {
		if err := message.IntentValidator(v); err != nil {
			return &ValidationError{Name: "intent", err: fmt.Errorf(`repo: validator failed for field "Message.intent": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DetectedEmotion(); ok {
		_spec.SetField(message.FieldDetectedEmotion, field.TypeString, value)
	}
	if _u.mutation.DetectedEmotionCleared() {
		_spec.ClearField(message.FieldDetectedEmotion, field.TypeString)
	}
	if value, ok := _u.mutation.EmotionConfidence(); ok {
		_spec.SetField(message.FieldEmotionConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmotionConfidence(); ok {
		_spec.AddField(message.FieldEmotionConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.EmotionConfidenceCleared() {
		_spec.ClearField(message.FieldEmotionConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(message.FieldRiskLevel, field.TypeEnum, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(message.FieldRiskLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.RiskKeywords(); ok {
		_spec.SetField(message.FieldRiskKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldRiskKeywords, value)
		})
	}
	if _u.mutation.RiskKeywordsCleared() {
		_spec.ClearField(message.FieldRiskKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(message.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(message.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.IntentConfidence(); ok {
		_spec.SetField(message.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntentConfidence(); ok {
		_spec.AddField(message.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.IntentConfidenceCleared() {
		_spec.ClearField(message.FieldIntentConfidence, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetDetectedEmotion sets the "detected_emotion" field.
func (_u *MessageUpdateOne) SetDetectedEmotion(v string) *MessageUpdateOne {
	_u.mutation.SetDetectedEmotion(v)
	return _u
}

// SetNillableDetectedEmotion sets the "detected_emotion" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableDetectedEmotion(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetDetectedEmotion(*v)
	}
	return _u
}

// ClearDetectedEmotion clears the value of the "detected_emotion" field.
func (_u *MessageUpdateOne) ClearDetectedEmotion() *MessageUpdateOne {
	_u.mutation.ClearDetectedEmotion()
	return _u
}

// SetEmotionConfidence sets the "emotion_confidence" field.
func (_u *MessageUpdateOne) SetEmotionConfidence(v float64) *MessageUpdateOne {
	_u.mutation.ResetEmotionConfidence()
	_u.mutation.SetEmotionConfidence(v)
	return _u
}

// SetNillableEmotionConfidence sets the "emotion_confidence" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableEmotionConfidence(v *float64) *MessageUpdateOne {
	if v != nil {
		_u.SetEmotionConfidence(*v)
	}
	return _u
}

// AddEmotionConfidence adds value to the "emotion_confidence" field.
func (_u *MessageUpdateOne) AddEmotionConfidence(v float64) *MessageUpdateOne {
	_u.mutation.AddEmotionConfidence(v)
	return _u
}

// ClearEmotionConfidence clears the value of the "emotion_confidence" field.
func (_u *MessageUpdateOne) ClearEmotionConfidence() *MessageUpdateOne {
	_u.mutation.ClearEmotionConfidence()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *MessageUpdateOne) SetRiskLevel(v message.RiskLevel) *MessageUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRiskLevel(v *message.RiskLevel) *MessageUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *MessageUpdateOne) ClearRiskLevel() *MessageUpdateOne {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetRiskKeywords sets the "risk_keywords" field.
func (_u *MessageUpdateOne) SetRiskKeywords(v []string) *MessageUpdateOne {
	_u.mutation.SetRiskKeywords(v)
	return _u
}

// AppendRiskKeywords appends value to the "risk_keywords" field.
func (_u *MessageUpdateOne) AppendRiskKeywords(v []string) *MessageUpdateOne {
	_u.mutation.AppendRiskKeywords(v)
	return _u
}

// ClearRiskKeywords clears the value of the "risk_keywords" field.
func (_u *MessageUpdateOne) ClearRiskKeywords() *MessageUpdateOne {
	_u.mutation.ClearRiskKeywords()
	return _u
}

// SetIntent sets the "intent" field.
func (_u *MessageUpdateOne) SetIntent(v string) *MessageUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableIntent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *MessageUpdateOne) ClearIntent() *MessageUpdateOne {
	_u.mutation.ClearIntent()
	return _u
}

// SetIntentConfidence sets the "intent_confidence" field.
func (_u *MessageUpdateOne) SetIntentConfidence(v float64) *MessageUpdateOne {
	_u.mutation.ResetIntentConfidence()
	_u.mutation.SetIntentConfidence(v)
	return _u
}

// SetNillableIntentConfidence sets the "intent_confidence" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableIntentConfidence(v *float64) *MessageUpdateOne {
	if v != nil {
		_u.SetIntentConfidence(*v)
	}
	return _u
}

// AddIntentConfidence adds value to the "intent_confidence" field.
func (_u *MessageUpdateOne) AddIntentConfidence(v float64) *MessageUpdateOne {
	_u.mutation.AddIntentConfidence(v)
	return _u
}

// ClearIntentConfidence clears the value of the "intent_confidence" field.
func (_u *MessageUpdateOne) ClearIntentConfidence() *MessageUpdateOne {
	_u.mutation.ClearIntentConfidence()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.DetectedEmotion(); ok {
		if err := message.DetectedEmotionValidator(v); err != nil {
			return &ValidationError{Name: "detected_emotion", err: fmt.Errorf(`repo: validator failed for field "Message.detected_emotion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := message.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "Message.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Intent(); ok {
		if err := message.IntentValidator(v); err != nil {
			return &ValidationError{Name: "intent", err: fmt.Errorf(`repo: validator failed for field "Message.intent": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != message.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DetectedEmotion(); ok {
		_spec.SetField(message.FieldDetectedEmotion, field.TypeString, value)
	}
	if _u.mutation.DetectedEmotionCleared() {
		_spec.ClearField(message.FieldDetectedEmotion, field.TypeString)
	}
	if value, ok := _u.mutation.EmotionConfidence(); ok {
		_spec.SetField(message.FieldEmotionConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmotionConfidence(); ok {
		_spec.AddField(message.FieldEmotionConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.EmotionConfidenceCleared() {
		_spec.ClearField(message.FieldEmotionConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(message.FieldRiskLevel, field.TypeEnum, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(message.FieldRiskLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.RiskKeywords(); ok {
		_spec.SetField(message.FieldRiskKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldRiskKeywords, value)
		})
	}
	if _u.mutation.RiskKeywordsCleared() {
		_spec.ClearField(message.FieldRiskKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(message.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(message.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.IntentConfidence(); ok {
		_spec.SetField(message.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntentConfidence(); ok {
		_spec.AddField(message.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.IntentConfidenceCleared() {
		_spec.ClearField(message.FieldIntentConfidence, field.TypeFloat64)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
