// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/conversation"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/message"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *MessageCreate) SetConversationID(v uuid.UUID) *MessageCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetSender sets the "sender" field.
func (_c *MessageCreate) SetSender(v message.Sender) *MessageCreate {
	_c.mutation.SetSender(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetDetectedEmotion sets the "detected_emotion" field.
func (_c *MessageCreate) SetDetectedEmotion(v string) *MessageCreate {
	_c.mutation.SetDetectedEmotion(v)
	return _c
}

// SetNillableDetectedEmotion sets the "detected_emotion" field if the given value is not nil.
func (_c *MessageCreate) SetNillableDetectedEmotion(v *string) *MessageCreate {
	if v != nil {
		_c.SetDetectedEmotion(*v)
	}
	return _c
}

// SetEmotionConfidence sets the "emotion_confidence" field.
func (_c *MessageCreate) SetEmotionConfidence(v float64) *MessageCreate {
	_c.mutation.SetEmotionConfidence(v)
	return _c
}

// SetNillableEmotionConfidence sets the "emotion_confidence" field if the given value is not nil.
func (_c *MessageCreate) SetNillableEmotionConfidence(v *float64) *MessageCreate {
	if v != nil {
		_c.SetEmotionConfidence(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *MessageCreate) SetRiskLevel(v message.RiskLevel) *MessageCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *MessageCreate) SetNillableRiskLevel(v *message.RiskLevel) *MessageCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetRiskKeywords sets the "risk_keywords" field.
func (_c *MessageCreate) SetRiskKeywords(v []string) *MessageCreate {
	_c.mutation.SetRiskKeywords(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *MessageCreate) SetIntent(v string) *MessageCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_c *MessageCreate) SetNillableIntent(v *string) *MessageCreate {
	if v != nil {
		_c.SetIntent(*v)
	}
	return _c
}

// SetIntentConfidence sets the "intent_confidence" field.
func (_c *MessageCreate) SetIntentConfidence(v float64) *MessageCreate {
	_c.mutation.SetIntentConfidence(v)
	return _c
}

// SetNillableIntentConfidence sets the "intent_confidence" field if the given value is not nil.
func (_c *MessageCreate) SetNillableIntentConfidence(v *float64) *MessageCreate {
	if v != nil {
		_c.SetIntentConfidence(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v uuid.UUID) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableID(v *uuid.UUID) *MessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *MessageCreate) SetConversation(v *Conversation) *MessageCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := message.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Message.created_at"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`repo: missing required field "Message.conversation_id"`)}
	}
	if _, ok := _c.mutation.Sender(); !ok {
		return &ValidationError{Name: "sender", err: errors.New(`repo: missing required field "Message.sender"`)}
	}
	if v, ok := _c.mutation.Sender(); ok {
		if err := message.SenderValidator(v); err != nil {
			return &ValidationError{Name: "sender", err: fmt.Errorf(`repo: validator failed for field "Message.sender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "Message.content"`)}
	}
	if v, ok := _c.mutation.DetectedEmotion(); ok {
		if err := message.DetectedEmotionValidator(v); err != nil {
			return &ValidationError{Name: "detected_emotion", err: fmt.Errorf(`repo: validator failed for field "Message.detected_emotion": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := message.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "Message.risk_level": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Intent(); ok {
		if err := message.IntentValidator(v); err != nil {
			return &ValidationError{Name: "intent", err: fmt.Errorf(`repo: validator failed for field "Message.intent": %w`, err)}
		}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`repo: missing required edge "Message.conversation"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Sender(); ok {
		_spec.SetField(message.FieldSender, field.TypeEnum, value)
		_node.Sender = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.DetectedEmotion(); ok {
		_spec.SetField(message.FieldDetectedEmotion, field.TypeString, value)
		_node.DetectedEmotion = value
	}
	if value, ok := _c.mutation.EmotionConfidence(); ok {
		_spec.SetField(message.FieldEmotionConfidence, field.TypeFloat64, value)
		_node.EmotionConfidence = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(message.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.RiskKeywords(); ok {
		_spec.SetField(message.FieldRiskKeywords, field.TypeJSON, value)
		_node.RiskKeywords = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(message.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.IntentConfidence(); ok {
		_spec.SetField(message.FieldIntentConfidence, field.TypeFloat64, value)
		_node.IntentConfidence = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ConversationTable,
			Columns: []string{message.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
