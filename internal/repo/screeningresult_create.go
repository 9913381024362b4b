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
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
)

// ScreeningResultCreate is the builder for creating a ScreeningResult entity.
type ScreeningResultCreate struct {
	config
	mutation *ScreeningResultMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScreeningResultCreate) SetCreatedAt(v time.Time) *ScreeningResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScreeningResultCreate) SetNillableCreatedAt(v *time.Time) *ScreeningResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *ScreeningResultCreate) SetPatientID(v uuid.UUID) *ScreeningResultCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetInstrument sets the "instrument" field.
func (_c *ScreeningResultCreate) SetInstrument(v screeningresult.Instrument) *ScreeningResultCreate {
	_c.mutation.SetInstrument(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *ScreeningResultCreate) SetAnswers(v []int) *ScreeningResultCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *ScreeningResultCreate) SetTotalScore(v int) *ScreeningResultCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetSeverityBand sets the "severity_band" field.
func (_c *ScreeningResultCreate) SetSeverityBand(v screeningresult.SeverityBand) *ScreeningResultCreate {
	_c.mutation.SetSeverityBand(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *ScreeningResultCreate) SetRiskLevel(v screeningresult.RiskLevel) *ScreeningResultCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetTriageAction sets the "triage_action" field.
func (_c *ScreeningResultCreate) SetTriageAction(v screeningresult.TriageAction) *ScreeningResultCreate {
	_c.mutation.SetTriageAction(v)
	return _c
}

// SetRecommendedModule sets the "recommended_module" field.
func (_c *ScreeningResultCreate) SetRecommendedModule(v string) *ScreeningResultCreate {
	_c.mutation.SetRecommendedModule(v)
	return _c
}

// SetNillableRecommendedModule sets the "recommended_module" field if the given value is not nil.
func (_c *ScreeningResultCreate) SetNillableRecommendedModule(v *string) *ScreeningResultCreate {
	if v != nil {
		_c.SetRecommendedModule(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScreeningResultCreate) SetID(v uuid.UUID) *ScreeningResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScreeningResultCreate) SetNillableID(v *uuid.UUID) *ScreeningResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *ScreeningResultCreate) SetPatient(v *Patient) *ScreeningResultCreate {
	return _c.SetPatientID(v.ID)
}

// AddAlertIDs adds the "alert" edge to the ScreeningAlert entity by IDs.
func (_c *ScreeningResultCreate) AddAlertIDs(ids ...uuid.UUID) *ScreeningResultCreate {
	_c.mutation.AddAlertIDs(ids...)
	return _c
}

// AddAlert adds the "alert" edges to the ScreeningAlert entity.
func (_c *ScreeningResultCreate) AddAlert(v ...*ScreeningAlert) *ScreeningResultCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertIDs(ids...)
}

// AddReferralIDs adds the "referral" edge to the TeleconsultReferral entity by IDs.
func (_c *ScreeningResultCreate) AddReferralIDs(ids ...uuid.UUID) *ScreeningResultCreate {
	_c.mutation.AddReferralIDs(ids...)
	return _c
}

// AddReferral adds the "referral" edges to the TeleconsultReferral entity.
func (_c *ScreeningResultCreate) AddReferral(v ...*TeleconsultReferral) *ScreeningResultCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReferralIDs(ids...)
}

// Mutation returns the ScreeningResultMutation object of the builder.
func (_c *ScreeningResultCreate) Mutation() *ScreeningResultMutation {
	return _c.mutation
}

// Save creates the ScreeningResult in the database.
func (_c *ScreeningResultCreate) Save(ctx context.Context) (*ScreeningResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScreeningResultCreate) SaveX(ctx context.Context) *ScreeningResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreeningResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreeningResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScreeningResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := screeningresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := screeningresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScreeningResultCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ScreeningResult.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "ScreeningResult.patient_id"`)}
	}
	if _, ok := _c.mutation.Instrument(); !ok {
		return &ValidationError{Name: "instrument", err: errors.New(`repo: missing required field "ScreeningResult.instrument"`)}
	}
	if v, ok := _c.mutation.Instrument(); ok {
		if err := screeningresult.InstrumentValidator(v); err != nil {
			return &ValidationError{Name: "instrument", err: fmt.Errorf(`repo: validator failed for field "ScreeningResult.instrument": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`repo: missing required field "ScreeningResult.answers"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`repo: missing required field "ScreeningResult.total_score"`)}
	}
	if v, ok := _c.mutation.TotalScore(); ok {
		if err := screeningresult.TotalScoreValidator(v); err != nil {
			return &ValidationError{Name: "total_score", err: fmt.Errorf(`repo: validator failed for field "ScreeningResult.total_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeverityBand(); !ok {
		return &ValidationError{Name: "severity_band", err: errors.New(`repo: missing required field "ScreeningResult.severity_band"`)}
	}
	if v, ok := _c.mutation.SeverityBand(); ok {
		if err := screeningresult.SeverityBandValidator(v); err != nil {
			return &ValidationError{Name: "severity_band", err: fmt.Errorf(`repo: validator failed for field "ScreeningResult.severity_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`repo: missing required field "ScreeningResult.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := screeningresult.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "ScreeningResult.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriageAction(); !ok {
		return &ValidationError{Name: "triage_action", err: errors.New(`repo: missing required field "ScreeningResult.triage_action"`)}
	}
	if v, ok := _c.mutation.TriageAction(); ok {
		if err := screeningresult.TriageActionValidator(v); err != nil {
			return &ValidationError{Name: "triage_action", err: fmt.Errorf(`repo: validator failed for field "ScreeningResult.triage_action": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RecommendedModule(); ok {
		if err := screeningresult.RecommendedModuleValidator(v); err != nil {
			return &ValidationError{Name: "recommended_module", err: fmt.Errorf(`repo: validator failed for field "ScreeningResult.recommended_module": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "ScreeningResult.patient"`)}
	}
	return nil
}

func (_c *ScreeningResultCreate) sqlSave(ctx context.Context) (*ScreeningResult, error) {
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

func (_c *ScreeningResultCreate) createSpec() (*ScreeningResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ScreeningResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(screeningresult.Table, sqlgraph.NewFieldSpec(screeningresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(screeningresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Instrument(); ok {
		_spec.SetField(screeningresult.FieldInstrument, field.TypeEnum, value)
		_node.Instrument = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(screeningresult.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(screeningresult.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.SeverityBand(); ok {
		_spec.SetField(screeningresult.FieldSeverityBand, field.TypeEnum, value)
		_node.SeverityBand = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(screeningresult.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.TriageAction(); ok {
		_spec.SetField(screeningresult.FieldTriageAction, field.TypeEnum, value)
		_node.TriageAction = value
	}
	if value, ok := _c.mutation.RecommendedModule(); ok {
		_spec.SetField(screeningresult.FieldRecommendedModule, field.TypeString, value)
		_node.RecommendedModule = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   screeningresult.PatientTable,
			Columns: []string{screeningresult.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.AlertTable,
			Columns: []string{screeningresult.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReferralIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.ReferralTable,
			Columns: []string{screeningresult.ReferralColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScreeningResultCreateBulk is the builder for creating many ScreeningResult entities in bulk.
type ScreeningResultCreateBulk struct {
	config
	err      error
	builders []*ScreeningResultCreate
}

// Save creates the ScreeningResult entities in the database.
func (_c *ScreeningResultCreateBulk) Save(ctx context.Context) ([]*ScreeningResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScreeningResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScreeningResultMutation)
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
func (_c *ScreeningResultCreateBulk) SaveX(ctx context.Context) []*ScreeningResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreeningResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreeningResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
