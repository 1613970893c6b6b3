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
	"github.com/kunle-oseni/resume-ingest/gen/ent/experience"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profile"
)

// ExperienceCreate is the builder for creating a Experience entity.
type ExperienceCreate struct {
	config
	mutation *ExperienceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProfileID sets the "profile_id" field.
func (_c *ExperienceCreate) SetProfileID(v uuid.UUID) *ExperienceCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *ExperienceCreate) SetCompanyName(v string) *ExperienceCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ExperienceCreate) SetRole(v string) *ExperienceCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ExperienceCreate) SetStartDate(v string) *ExperienceCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ExperienceCreate) SetEndDate(v string) *ExperienceCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *ExperienceCreate) SetNillableEndDate(v *string) *ExperienceCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExperienceCreate) SetDescription(v string) *ExperienceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExperienceCreate) SetNillableDescription(v *string) *ExperienceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExperienceCreate) SetCreatedAt(v time.Time) *ExperienceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExperienceCreate) SetNillableCreatedAt(v *time.Time) *ExperienceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExperienceCreate) SetID(v uuid.UUID) *ExperienceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExperienceCreate) SetNillableID(v *uuid.UUID) *ExperienceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ExperienceCreate) SetProfile(v *Profile) *ExperienceCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the ExperienceMutation object of the builder.
func (_c *ExperienceCreate) Mutation() *ExperienceMutation {
	return _c.mutation
}

// Save creates the Experience in the database.
func (_c *ExperienceCreate) Save(ctx context.Context) (*Experience, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExperienceCreate) SaveX(ctx context.Context) *Experience {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperienceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperienceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExperienceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := experience.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := experience.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExperienceCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Experience.profile_id"`)}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Experience.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := experience.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Experience.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Experience.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := experience.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Experience.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Experience.start_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Experience.created_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Experience.profile"`)}
	}
	return nil
}

func (_c *ExperienceCreate) sqlSave(ctx context.Context) (*Experience, error) {
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

func (_c *ExperienceCreate) createSpec() (*Experience, *sqlgraph.CreateSpec) {
	var (
		_node = &Experience{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(experience.Table, sqlgraph.NewFieldSpec(experience.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(experience.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(experience.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(experience.FieldStartDate, field.TypeString, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(experience.FieldEndDate, field.TypeString, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(experience.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(experience.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experience.ProfileTable,
			Columns: []string{experience.ProfileColumn},
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
//	client.Experience.Create().
//		SetProfileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExperienceUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExperienceCreate) OnConflict(opts ...sql.ConflictOption) *ExperienceUpsertOne {
	_c.conflict = opts
	return &ExperienceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExperienceCreate) OnConflictColumns(columns ...string) *ExperienceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExperienceUpsertOne{
		create: _c,
	}
}

type (
	// ExperienceUpsertOne is the builder for "upsert"-ing
	//  one Experience node.
	ExperienceUpsertOne struct {
		create *ExperienceCreate
	}

	// ExperienceUpsert is the "OnConflict" setter.
	ExperienceUpsert struct {
		*sql.UpdateSet
	}
)

// SetProfileID sets the "profile_id" field.
func (u *ExperienceUpsert) SetProfileID(v uuid.UUID) *ExperienceUpsert {
	u.Set(experience.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateProfileID() *ExperienceUpsert {
	u.SetExcluded(experience.FieldProfileID)
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *ExperienceUpsert) SetCompanyName(v string) *ExperienceUpsert {
	u.Set(experience.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateCompanyName() *ExperienceUpsert {
	u.SetExcluded(experience.FieldCompanyName)
	return u
}

// SetRole sets the "role" field.
func (u *ExperienceUpsert) SetRole(v string) *ExperienceUpsert {
	u.Set(experience.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateRole() *ExperienceUpsert {
	u.SetExcluded(experience.FieldRole)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *ExperienceUpsert) SetStartDate(v string) *ExperienceUpsert {
	u.Set(experience.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateStartDate() *ExperienceUpsert {
	u.SetExcluded(experience.FieldStartDate)
	return u
}

// SetEndDate sets the "end_date" field.
func (u *ExperienceUpsert) SetEndDate(v string) *ExperienceUpsert {
	u.Set(experience.FieldEndDate, v)
	return u
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateEndDate() *ExperienceUpsert {
	u.SetExcluded(experience.FieldEndDate)
	return u
}

// ClearEndDate clears the value of the "end_date" field.
func (u *ExperienceUpsert) ClearEndDate() *ExperienceUpsert {
	u.SetNull(experience.FieldEndDate)
	return u
}

// SetDescription sets the "description" field.
func (u *ExperienceUpsert) SetDescription(v string) *ExperienceUpsert {
	u.Set(experience.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateDescription() *ExperienceUpsert {
	u.SetExcluded(experience.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ExperienceUpsert) ClearDescription() *ExperienceUpsert {
	u.SetNull(experience.FieldDescription)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ExperienceUpsert) SetCreatedAt(v time.Time) *ExperienceUpsert {
	u.Set(experience.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateCreatedAt() *ExperienceUpsert {
	u.SetExcluded(experience.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(experience.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExperienceUpsertOne) UpdateNewValues() *ExperienceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(experience.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Experience.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExperienceUpsertOne) Ignore() *ExperienceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExperienceUpsertOne) DoNothing() *ExperienceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExperienceCreate.OnConflict
// documentation for more info.
func (u *ExperienceUpsertOne) Update(set func(*ExperienceUpsert)) *ExperienceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExperienceUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *ExperienceUpsertOne) SetProfileID(v uuid.UUID) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateProfileID() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateProfileID()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *ExperienceUpsertOne) SetCompanyName(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateCompanyName() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateCompanyName()
	})
}

// SetRole sets the "role" field.
func (u *ExperienceUpsertOne) SetRole(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateRole() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateRole()
	})
}

// SetStartDate sets the "start_date" field.
func (u *ExperienceUpsertOne) SetStartDate(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateStartDate() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *ExperienceUpsertOne) SetEndDate(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateEndDate() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *ExperienceUpsertOne) ClearEndDate() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearEndDate()
	})
}

// SetDescription sets the "description" field.
func (u *ExperienceUpsertOne) SetDescription(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateDescription() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExperienceUpsertOne) ClearDescription() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearDescription()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ExperienceUpsertOne) SetCreatedAt(v time.Time) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateCreatedAt() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ExperienceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExperienceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExperienceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExperienceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExperienceUpsertOne.ID is not supported by MySQL driver. Use ExperienceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExperienceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExperienceCreateBulk is the builder for creating many Experience entities in bulk.
type ExperienceCreateBulk struct {
	config
	err      error
	builders []*ExperienceCreate
	conflict []sql.ConflictOption
}

// Save creates the Experience entities in the database.
func (_c *ExperienceCreateBulk) Save(ctx context.Context) ([]*Experience, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Experience, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExperienceMutation)
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
func (_c *ExperienceCreateBulk) SaveX(ctx context.Context) []*Experience {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperienceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperienceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Experience.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExperienceUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExperienceCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExperienceUpsertBulk {
	_c.conflict = opts
	return &ExperienceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExperienceCreateBulk) OnConflictColumns(columns ...string) *ExperienceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExperienceUpsertBulk{
		create: _c,
	}
}

// ExperienceUpsertBulk is the builder for "upsert"-ing
// a bulk of Experience nodes.
type ExperienceUpsertBulk struct {
	create *ExperienceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(experience.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExperienceUpsertBulk) UpdateNewValues() *ExperienceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(experience.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExperienceUpsertBulk) Ignore() *ExperienceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExperienceUpsertBulk) DoNothing() *ExperienceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExperienceCreateBulk.OnConflict
// documentation for more info.
func (u *ExperienceUpsertBulk) Update(set func(*ExperienceUpsert)) *ExperienceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExperienceUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *ExperienceUpsertBulk) SetProfileID(v uuid.UUID) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateProfileID() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateProfileID()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *ExperienceUpsertBulk) SetCompanyName(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateCompanyName() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateCompanyName()
	})
}

// SetRole sets the "role" field.
func (u *ExperienceUpsertBulk) SetRole(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateRole() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateRole()
	})
}

// SetStartDate sets the "start_date" field.
func (u *ExperienceUpsertBulk) SetStartDate(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateStartDate() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *ExperienceUpsertBulk) SetEndDate(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateEndDate() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *ExperienceUpsertBulk) ClearEndDate() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearEndDate()
	})
}

// SetDescription sets the "description" field.
func (u *ExperienceUpsertBulk) SetDescription(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateDescription() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExperienceUpsertBulk) ClearDescription() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearDescription()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ExperienceUpsertBulk) SetCreatedAt(v time.Time) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateCreatedAt() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ExperienceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExperienceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExperienceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExperienceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
