// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profile"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profilereadiness"
)

// ProfileReadinessCreate is the builder for creating a ProfileReadiness entity.
type ProfileReadinessCreate struct {
	config
	mutation *ProfileReadinessMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProfileID sets the "profile_id" field.
func (_c *ProfileReadinessCreate) SetProfileID(v uuid.UUID) *ProfileReadinessCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProfileReadinessCreate) SetStatus(v string) *ProfileReadinessCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileReadinessCreate) SetUpdatedAt(v time.Time) *ProfileReadinessCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileReadinessCreate) SetNillableUpdatedAt(v *time.Time) *ProfileReadinessCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileReadinessCreate) SetID(v uuid.UUID) *ProfileReadinessCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProfileReadinessCreate) SetNillableID(v *uuid.UUID) *ProfileReadinessCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ProfileReadinessCreate) SetProfile(v *Profile) *ProfileReadinessCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the ProfileReadinessMutation object of the builder.
func (_c *ProfileReadinessCreate) Mutation() *ProfileReadinessMutation {
	return _c.mutation
}

// Save creates the ProfileReadiness in the database.
func (_c *ProfileReadinessCreate) Save(ctx context.Context) (*ProfileReadiness, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileReadinessCreate) SaveX(ctx context.Context) *ProfileReadiness {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileReadinessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileReadinessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileReadinessCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profilereadiness.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := profilereadiness.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileReadinessCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ProfileReadiness.profile_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProfileReadiness.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := profilereadiness.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProfileReadiness.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProfileReadiness.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "ProfileReadiness.profile"`)}
	}
	return nil
}

func (_c *ProfileReadinessCreate) sqlSave(ctx context.Context) (*ProfileReadiness, error) {
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

func (_c *ProfileReadinessCreate) createSpec() (*ProfileReadiness, *sqlgraph.CreateSpec) {
	var (
		_node = &ProfileReadiness{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profilereadiness.Table, sqlgraph.NewFieldSpec(profilereadiness.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(profilereadiness.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profilereadiness.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   profilereadiness.ProfileTable,
			Columns: []string{profilereadiness.ProfileColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProfileReadiness.Create().
//		SetProfileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileReadinessUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileReadinessCreate) OnConflict(opts ...sql.ConflictOption) *ProfileReadinessUpsertOne {
	_c.conflict = opts
	return &ProfileReadinessUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProfileReadiness.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileReadinessCreate) OnConflictColumns(columns ...string) *ProfileReadinessUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileReadinessUpsertOne{
		create: _c,
	}
}

type (
	// ProfileReadinessUpsertOne is the builder for "upsert"-ing
	//  one ProfileReadiness node.
	ProfileReadinessUpsertOne struct {
		create *ProfileReadinessCreate
	}

	// ProfileReadinessUpsert is the "OnConflict" setter.
	ProfileReadinessUpsert struct {
		*sql.UpdateSet
	}
)

// SetProfileID sets the "profile_id" field.
func (u *ProfileReadinessUpsert) SetProfileID(v uuid.UUID) *ProfileReadinessUpsert {
	u.Set(profilereadiness.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ProfileReadinessUpsert) UpdateProfileID() *ProfileReadinessUpsert {
	u.SetExcluded(profilereadiness.FieldProfileID)
	return u
}

// SetStatus sets the "status" field.
func (u *ProfileReadinessUpsert) SetStatus(v string) *ProfileReadinessUpsert {
	u.Set(profilereadiness.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProfileReadinessUpsert) UpdateStatus() *ProfileReadinessUpsert {
	u.SetExcluded(profilereadiness.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileReadinessUpsert) SetUpdatedAt(v time.Time) *ProfileReadinessUpsert {
	u.Set(profilereadiness.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileReadinessUpsert) UpdateUpdatedAt() *ProfileReadinessUpsert {
	u.SetExcluded(profilereadiness.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProfileReadiness.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profilereadiness.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileReadinessUpsertOne) UpdateNewValues() *ProfileReadinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(profilereadiness.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProfileReadiness.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProfileReadinessUpsertOne) Ignore() *ProfileReadinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileReadinessUpsertOne) DoNothing() *ProfileReadinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileReadinessCreate.OnConflict
// documentation for more info.
func (u *ProfileReadinessUpsertOne) Update(set func(*ProfileReadinessUpsert)) *ProfileReadinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileReadinessUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *ProfileReadinessUpsertOne) SetProfileID(v uuid.UUID) *ProfileReadinessUpsertOne {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ProfileReadinessUpsertOne) UpdateProfileID() *ProfileReadinessUpsertOne {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.UpdateProfileID()
	})
}

// SetStatus sets the "status" field.
func (u *ProfileReadinessUpsertOne) SetStatus(v string) *ProfileReadinessUpsertOne {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProfileReadinessUpsertOne) UpdateStatus() *ProfileReadinessUpsertOne {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileReadinessUpsertOne) SetUpdatedAt(v time.Time) *ProfileReadinessUpsertOne {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileReadinessUpsertOne) UpdateUpdatedAt() *ProfileReadinessUpsertOne {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileReadinessUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileReadinessCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileReadinessUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProfileReadinessUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProfileReadinessUpsertOne.ID is not supported by MySQL driver. Use ProfileReadinessUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProfileReadinessUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileReadinessCreateBulk is the builder for creating many ProfileReadiness entities in bulk.
type ProfileReadinessCreateBulk struct {
	config
	err      error
	builders []*ProfileReadinessCreate
	conflict []sql.ConflictOption
}

// Save creates the ProfileReadiness entities in the database.
func (_c *ProfileReadinessCreateBulk) Save(ctx context.Context) ([]*ProfileReadiness, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProfileReadiness, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileReadinessMutation)
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
func (_c *ProfileReadinessCreateBulk) SaveX(ctx context.Context) []*ProfileReadiness {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileReadinessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileReadinessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProfileReadiness.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileReadinessUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileReadinessCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProfileReadinessUpsertBulk {
	_c.conflict = opts
	return &ProfileReadinessUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProfileReadiness.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileReadinessCreateBulk) OnConflictColumns(columns ...string) *ProfileReadinessUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileReadinessUpsertBulk{
		create: _c,
	}
}

// ProfileReadinessUpsertBulk is the builder for "upsert"-ing
// a bulk of ProfileReadiness nodes.
type ProfileReadinessUpsertBulk struct {
	create *ProfileReadinessCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProfileReadiness.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profilereadiness.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileReadinessUpsertBulk) UpdateNewValues() *ProfileReadinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(profilereadiness.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProfileReadiness.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProfileReadinessUpsertBulk) Ignore() *ProfileReadinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileReadinessUpsertBulk) DoNothing() *ProfileReadinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileReadinessCreateBulk.OnConflict
// documentation for more info.
func (u *ProfileReadinessUpsertBulk) Update(set func(*ProfileReadinessUpsert)) *ProfileReadinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileReadinessUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *ProfileReadinessUpsertBulk) SetProfileID(v uuid.UUID) *ProfileReadinessUpsertBulk {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ProfileReadinessUpsertBulk) UpdateProfileID() *ProfileReadinessUpsertBulk {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.UpdateProfileID()
	})
}

// SetStatus sets the "status" field.
func (u *ProfileReadinessUpsertBulk) SetStatus(v string) *ProfileReadinessUpsertBulk {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProfileReadinessUpsertBulk) UpdateStatus() *ProfileReadinessUpsertBulk {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileReadinessUpsertBulk) SetUpdatedAt(v time.Time) *ProfileReadinessUpsertBulk {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileReadinessUpsertBulk) UpdateUpdatedAt() *ProfileReadinessUpsertBulk {
	return u.Update(func(s *ProfileReadinessUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileReadinessUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProfileReadinessCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileReadinessCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileReadinessUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
