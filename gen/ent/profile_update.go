// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kunle-oseni/resume-ingest/gen/ent/experience"
	"github.com/kunle-oseni/resume-ingest/gen/ent/predicate"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profile"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profilereadiness"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profileskill"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProfileUpdate) SetUserID(v uuid.UUID) *ProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableUserID(v *uuid.UUID) *ProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ProfileUpdate) SetSummary(v string) *ProfileUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSummary(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ProfileUpdate) ClearSummary() *ProfileUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetEducation sets the "education" field.
func (_u *ProfileUpdate) SetEducation(v json.RawMessage) *ProfileUpdate {
	_u.mutation.SetEducation(v)
	return _u
}

// AppendEducation appends value to the "education" field.
func (_u *ProfileUpdate) AppendEducation(v json.RawMessage) *ProfileUpdate {
	_u.mutation.AppendEducation(v)
	return _u
}

// ClearEducation clears the value of the "education" field.
func (_u *ProfileUpdate) ClearEducation() *ProfileUpdate {
	_u.mutation.ClearEducation()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProfileUpdate) SetCreatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCreatedAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExperienceIDs adds the "experiences" edge to the Experience entity by IDs.
func (_u *ProfileUpdate) AddExperienceIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddExperienceIDs(ids...)
	return _u
}

// AddExperiences adds the "experiences" edges to the Experience entity.
func (_u *ProfileUpdate) AddExperiences(v ...*Experience) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExperienceIDs(ids...)
}

// AddSkillLinkIDs adds the "skill_links" edge to the ProfileSkill entity by IDs.
func (_u *ProfileUpdate) AddSkillLinkIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddSkillLinkIDs(ids...)
	return _u
}

// AddSkillLinks adds the "skill_links" edges to the ProfileSkill entity.
func (_u *ProfileUpdate) AddSkillLinks(v ...*ProfileSkill) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSkillLinkIDs(ids...)
}

// AddReadinesIDs adds the "readiness" edge to the ProfileReadiness entity by IDs.
func (_u *ProfileUpdate) AddReadinesIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddReadinesIDs(ids...)
	return _u
}

// AddReadiness adds the "readiness" edges to the ProfileReadiness entity.
func (_u *ProfileUpdate) AddReadiness(v ...*ProfileReadiness) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReadinesIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearExperiences clears all "experiences" edges to the Experience entity.
func (_u *ProfileUpdate) ClearExperiences() *ProfileUpdate {
	_u.mutation.ClearExperiences()
	return _u
}

// RemoveExperienceIDs removes the "experiences" edge to Experience entities by IDs.
func (_u *ProfileUpdate) RemoveExperienceIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveExperienceIDs(ids...)
	return _u
}

// RemoveExperiences removes "experiences" edges to Experience entities.
func (_u *ProfileUpdate) RemoveExperiences(v ...*Experience) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExperienceIDs(ids...)
}

// ClearSkillLinks clears all "skill_links" edges to the ProfileSkill entity.
func (_u *ProfileUpdate) ClearSkillLinks() *ProfileUpdate {
	_u.mutation.ClearSkillLinks()
	return _u
}

// RemoveSkillLinkIDs removes the "skill_links" edge to ProfileSkill entities by IDs.
func (_u *ProfileUpdate) RemoveSkillLinkIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveSkillLinkIDs(ids...)
	return _u
}

// RemoveSkillLinks removes "skill_links" edges to ProfileSkill entities.
func (_u *ProfileUpdate) RemoveSkillLinks(v ...*ProfileSkill) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSkillLinkIDs(ids...)
}

// ClearReadiness clears all "readiness" edges to the ProfileReadiness entity.
func (_u *ProfileUpdate) ClearReadiness() *ProfileUpdate {
	_u.mutation.ClearReadiness()
	return _u
}

// RemoveReadinesIDs removes the "readiness" edge to ProfileReadiness entities by IDs.
func (_u *ProfileUpdate) RemoveReadinesIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveReadinesIDs(ids...)
	return _u
}

// RemoveReadiness removes "readiness" edges to ProfileReadiness entities.
func (_u *ProfileUpdate) RemoveReadiness(v ...*ProfileReadiness) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReadinesIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(profile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(profile.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(profile.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(profile.FieldEducation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEducation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldEducation, value)
		})
	}
	if _u.mutation.EducationCleared() {
		_spec.ClearField(profile.FieldEducation, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExperiencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExperiencesTable,
			Columns: []string{profile.ExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experience.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExperiencesIDs(); len(nodes) > 0 && !_u.mutation.ExperiencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExperiencesTable,
			Columns: []string{profile.ExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experience.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperiencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExperiencesTable,
			Columns: []string{profile.ExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experience.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SkillLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillLinksTable,
			Columns: []string{profile.SkillLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profileskill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSkillLinksIDs(); len(nodes) > 0 && !_u.mutation.SkillLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillLinksTable,
			Columns: []string{profile.SkillLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profileskill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SkillLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillLinksTable,
			Columns: []string{profile.SkillLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profileskill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReadinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReadinessTable,
			Columns: []string{profile.ReadinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profilereadiness.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReadinessIDs(); len(nodes) > 0 && !_u.mutation.ReadinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReadinessTable,
			Columns: []string{profile.ReadinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profilereadiness.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReadinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReadinessTable,
			Columns: []string{profile.ReadinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profilereadiness.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProfileUpdateOne) SetUserID(v uuid.UUID) *ProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *ProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ProfileUpdateOne) SetSummary(v string) *ProfileUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSummary(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ProfileUpdateOne) ClearSummary() *ProfileUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetEducation sets the "education" field.
func (_u *ProfileUpdateOne) SetEducation(v json.RawMessage) *ProfileUpdateOne {
	_u.mutation.SetEducation(v)
	return _u
}

// AppendEducation appends value to the "education" field.
func (_u *ProfileUpdateOne) AppendEducation(v json.RawMessage) *ProfileUpdateOne {
	_u.mutation.AppendEducation(v)
	return _u
}

// ClearEducation clears the value of the "education" field.
func (_u *ProfileUpdateOne) ClearEducation() *ProfileUpdateOne {
	_u.mutation.ClearEducation()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProfileUpdateOne) SetCreatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCreatedAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExperienceIDs adds the "experiences" edge to the Experience entity by IDs.
func (_u *ProfileUpdateOne) AddExperienceIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddExperienceIDs(ids...)
	return _u
}

// AddExperiences adds the "experiences" edges to the Experience entity.
func (_u *ProfileUpdateOne) AddExperiences(v ...*Experience) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExperienceIDs(ids...)
}

// AddSkillLinkIDs adds the "skill_links" edge to the ProfileSkill entity by IDs.
func (_u *ProfileUpdateOne) AddSkillLinkIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddSkillLinkIDs(ids...)
	return _u
}

// AddSkillLinks adds the "skill_links" edges to the ProfileSkill entity.
func (_u *ProfileUpdateOne) AddSkillLinks(v ...*ProfileSkill) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSkillLinkIDs(ids...)
}

// AddReadinesIDs adds the "readiness" edge to the ProfileReadiness entity by IDs.
func (_u *ProfileUpdateOne) AddReadinesIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddReadinesIDs(ids...)
	return _u
}

// AddReadiness adds the "readiness" edges to the ProfileReadiness entity.
func (_u *ProfileUpdateOne) AddReadiness(v ...*ProfileReadiness) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReadinesIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearExperiences clears all "experiences" edges to the Experience entity.
func (_u *ProfileUpdateOne) ClearExperiences() *ProfileUpdateOne {
	_u.mutation.ClearExperiences()
	return _u
}

// RemoveExperienceIDs removes the "experiences" edge to Experience entities by IDs.
func (_u *ProfileUpdateOne) RemoveExperienceIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveExperienceIDs(ids...)
	return _u
}

// RemoveExperiences removes "experiences" edges to Experience entities.
func (_u *ProfileUpdateOne) RemoveExperiences(v ...*Experience) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExperienceIDs(ids...)
}

// ClearSkillLinks clears all "skill_links" edges to the ProfileSkill entity.
func (_u *ProfileUpdateOne) ClearSkillLinks() *ProfileUpdateOne {
	_u.mutation.ClearSkillLinks()
	return _u
}

// RemoveSkillLinkIDs removes the "skill_links" edge to ProfileSkill entities by IDs.
func (_u *ProfileUpdateOne) RemoveSkillLinkIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveSkillLinkIDs(ids...)
	return _u
}

// RemoveSkillLinks removes "skill_links" edges to ProfileSkill entities.
func (_u *ProfileUpdateOne) RemoveSkillLinks(v ...*ProfileSkill) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSkillLinkIDs(ids...)
}

// ClearReadiness clears all "readiness" edges to the ProfileReadiness entity.
func (_u *ProfileUpdateOne) ClearReadiness() *ProfileUpdateOne {
	_u.mutation.ClearReadiness()
	return _u
}

// RemoveReadinesIDs removes the "readiness" edge to ProfileReadiness entities by IDs.
func (_u *ProfileUpdateOne) RemoveReadinesIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveReadinesIDs(ids...)
	return _u
}

// RemoveReadiness removes "readiness" edges to ProfileReadiness entities.
func (_u *ProfileUpdateOne) RemoveReadiness(v ...*ProfileReadiness) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReadinesIDs(ids...)
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(profile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(profile.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(profile.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(profile.FieldEducation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEducation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldEducation, value)
		})
	}
	if _u.mutation.EducationCleared() {
		_spec.ClearField(profile.FieldEducation, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExperiencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExperiencesTable,
			Columns: []string{profile.ExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experience.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExperiencesIDs(); len(nodes) > 0 && !_u.mutation.ExperiencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExperiencesTable,
			Columns: []string{profile.ExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experience.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperiencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExperiencesTable,
			Columns: []string{profile.ExperiencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experience.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SkillLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillLinksTable,
			Columns: []string{profile.SkillLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profileskill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSkillLinksIDs(); len(nodes) > 0 && !_u.mutation.SkillLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillLinksTable,
			Columns: []string{profile.SkillLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profileskill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SkillLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SkillLinksTable,
			Columns: []string{profile.SkillLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profileskill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReadinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReadinessTable,
			Columns: []string{profile.ReadinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profilereadiness.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReadinessIDs(); len(nodes) > 0 && !_u.mutation.ReadinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReadinessTable,
			Columns: []string{profile.ReadinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profilereadiness.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReadinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ReadinessTable,
			Columns: []string{profile.ReadinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profilereadiness.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
