// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profile"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profileskill"
	"github.com/kunle-oseni/resume-ingest/gen/ent/skill"
)

// ProfileSkillCreate is the builder for creating a ProfileSkill entity.
type ProfileSkillCreate struct {
	config
	mutation *ProfileSkillMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProfileID sets the "profile_id" field.
func (_c *ProfileSkillCreate) SetProfileID(v uuid.UUID) *ProfileSkillCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *ProfileSkillCreate) SetSkillID(v uuid.UUID) *ProfileSkillCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileSkillCreate) SetID(v uuid.UUID) *ProfileSkillCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProfileSkillCreate) SetNillableID(v *uuid.UUID) *ProfileSkillCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ProfileSkillCreate) SetProfile(v *Profile) *ProfileSkillCreate {
	return _c.SetProfileID(v.ID)
}

// SetSkill sets the "skill" edge to the Skill entity.
func (_c *ProfileSkillCreate) SetSkill(v *Skill) *ProfileSkillCreate {
	return _c.SetSkillID(v.ID)
}

// Mutation returns the ProfileSkillMutation object of the builder.
func (_c *ProfileSkillCreate) Mutation() *ProfileSkillMutation {
	return _c.mutation
}

// Save creates the ProfileSkill in the database.
func (_c *ProfileSkillCreate) Save(ctx context.Context) (*ProfileSkill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileSkillCreate) SaveX(ctx context.Context) *ProfileSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileSkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileSkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileSkillCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := profileskill.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileSkillCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ProfileSkill.profile_id"`)}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "ProfileSkill.skill_id"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "ProfileSkill.profile"`)}
	}
	if len(_c.mutation.SkillIDs()) == 0 {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required edge "ProfileSkill.skill"`)}
	}
	return nil
}

func (_c *ProfileSkillCreate) sqlSave(ctx context.Context) (*ProfileSkill, error) {
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

func (_c *ProfileSkillCreate) createSpec() (*ProfileSkill, *sqlgraph.CreateSpec) {
	var (
		_node = &ProfileSkill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profileskill.Table, sqlgraph.NewFieldSpec(profileskill.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   profileskill.ProfileTable,
			Columns: []string{profileskill.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SkillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   profileskill.SkillTable,
			Columns: []string{profileskill.SkillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SkillID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProfileSkill.Create().
//		SetProfileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileSkillUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileSkillCreate) OnConflict(opts ...sql.ConflictOption) *ProfileSkillUpsertOne {
	_c.conflict = opts
	return &ProfileSkillUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProfileSkill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileSkillCreate) OnConflictColumns(columns ...string) *ProfileSkillUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileSkillUpsertOne{
		create: _c,
	}
}

type (
	// ProfileSkillUpsertOne is the builder for "upsert"-ing
	//  one ProfileSkill node.
	ProfileSkillUpsertOne struct {
		create *ProfileSkillCreate
	}

	// ProfileSkillUpsert is the "OnConflict" setter.
	ProfileSkillUpsert struct {
		*sql.UpdateSet
	}
)

// SetProfileID sets the "profile_id" field.
func (u *ProfileSkillUpsert) SetProfileID(v uuid.UUID) *ProfileSkillUpsert {
	u.Set(profileskill.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ProfileSkillUpsert) UpdateProfileID() *ProfileSkillUpsert {
	u.SetExcluded(profileskill.FieldProfileID)
	return u
}

// SetSkillID sets the "skill_id" field.
func (u *ProfileSkillUpsert) SetSkillID(v uuid.UUID) *ProfileSkillUpsert {
	u.Set(profileskill.FieldSkillID, v)
	return u
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *ProfileSkillUpsert) UpdateSkillID() *ProfileSkillUpsert {
	u.SetExcluded(profileskill.FieldSkillID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProfileSkill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profileskill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileSkillUpsertOne) UpdateNewValues() *ProfileSkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(profileskill.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProfileSkill.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProfileSkillUpsertOne) Ignore() *ProfileSkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileSkillUpsertOne) DoNothing() *ProfileSkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileSkillCreate.OnConflict
// documentation for more info.
func (u *ProfileSkillUpsertOne) Update(set func(*ProfileSkillUpsert)) *ProfileSkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileSkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *ProfileSkillUpsertOne) SetProfileID(v uuid.UUID) *ProfileSkillUpsertOne {
	return u.Update(func(s *ProfileSkillUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ProfileSkillUpsertOne) UpdateProfileID() *ProfileSkillUpsertOne {
	return u.Update(func(s *ProfileSkillUpsert) {
		s.UpdateProfileID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *ProfileSkillUpsertOne) SetSkillID(v uuid.UUID) *ProfileSkillUpsertOne {
	return u.Update(func(s *ProfileSkillUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *ProfileSkillUpsertOne) UpdateSkillID() *ProfileSkillUpsertOne {
	return u.Update(func(s *ProfileSkillUpsert) {
		s.UpdateSkillID()
	})
}

// Exec executes the query.
func (u *ProfileSkillUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileSkillCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileSkillUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProfileSkillUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProfileSkillUpsertOne.ID is not supported by MySQL driver. Use ProfileSkillUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProfileSkillUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileSkillCreateBulk is the builder for creating many ProfileSkill entities in bulk.
type ProfileSkillCreateBulk struct {
	config
	err      error
	builders []*ProfileSkillCreate
	conflict []sql.ConflictOption
}

// Save creates the ProfileSkill entities in the database.
func (_c *ProfileSkillCreateBulk) Save(ctx context.Context) ([]*ProfileSkill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProfileSkill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileSkillMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ProfileSkillCreateBulk) SaveX(ctx context.Context) []*ProfileSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileSkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileSkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProfileSkill.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileSkillUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileSkillCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProfileSkillUpsertBulk {
	_c.conflict = opts
	return &ProfileSkillUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProfileSkill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileSkillCreateBulk) OnConflictColumns(columns ...string) *ProfileSkillUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileSkillUpsertBulk{
		create: _c,
	}
}

// ProfileSkillUpsertBulk is the builder for "upsert"-ing
// a bulk of ProfileSkill nodes.
type ProfileSkillUpsertBulk struct {
	create *ProfileSkillCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProfileSkill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profileskill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileSkillUpsertBulk) UpdateNewValues() *ProfileSkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(profileskill.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProfileSkill.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProfileSkillUpsertBulk) Ignore() *ProfileSkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileSkillUpsertBulk) DoNothing() *ProfileSkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileSkillCreateBulk.OnConflict
// documentation for more info.
func (u *ProfileSkillUpsertBulk) Update(set func(*ProfileSkillUpsert)) *ProfileSkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileSkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *ProfileSkillUpsertBulk) SetProfileID(v uuid.UUID) *ProfileSkillUpsertBulk {
	return u.Update(func(s *ProfileSkillUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ProfileSkillUpsertBulk) UpdateProfileID() *ProfileSkillUpsertBulk {
	return u.Update(func(s *ProfileSkillUpsert) {
		s.UpdateProfileID()
	})
}

// SetSkillID sets the "skill_id" field.
func (u *ProfileSkillUpsertBulk) SetSkillID(v uuid.UUID) *ProfileSkillUpsertBulk {
	return u.Update(func(s *ProfileSkillUpsert) {
		s.SetSkillID(v)
	})
}

// UpdateSkillID sets the "skill_id" field to the value that was provided on create.
func (u *ProfileSkillUpsertBulk) UpdateSkillID() *ProfileSkillUpsertBulk {
	return u.Update(func(s *ProfileSkillUpsert) {
		s.UpdateSkillID()
	})
}

// Exec executes the query.
func (u *ProfileSkillUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProfileSkillCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileSkillCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileSkillUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
