// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/kunle-oseni/resume-ingest/db/ent/schema"
	"github.com/kunle-oseni/resume-ingest/gen/ent/experience"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profile"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profilereadiness"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profileskill"
	"github.com/kunle-oseni/resume-ingest/gen/ent/skill"
	"github.com/kunle-oseni/resume-ingest/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	experienceFields := schema.Experience{}.Fields()
	_ = experienceFields
	// experienceDescCompanyName is the schema descriptor for company_name field.
	experienceDescCompanyName := experienceFields[2].Descriptor()
	// experience.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	experience.CompanyNameValidator = experienceDescCompanyName.Validators[0].(func(string) error)
	// experienceDescRole is the schema descriptor for role field.
	experienceDescRole := experienceFields[3].Descriptor()
	// experience.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	experience.RoleValidator = experienceDescRole.Validators[0].(func(string) error)
	// experienceDescCreatedAt is the schema descriptor for created_at field.
	experienceDescCreatedAt := experienceFields[7].Descriptor()
	// experience.DefaultCreatedAt holds the default value on creation for the created_at field.
	experience.DefaultCreatedAt = experienceDescCreatedAt.Default.(func() time.Time)
	// experienceDescID is the schema descriptor for id field.
	experienceDescID := experienceFields[0].Descriptor()
	// experience.DefaultID holds the default value on creation for the id field.
	experience.DefaultID = experienceDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[4].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	profilereadinessFields := schema.ProfileReadiness{}.Fields()
	_ = profilereadinessFields
	// profilereadinessDescStatus is the schema descriptor for status field.
	profilereadinessDescStatus := profilereadinessFields[2].Descriptor()
	// profilereadiness.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	profilereadiness.StatusValidator = func() func(string) error {
		validators := profilereadinessDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profilereadinessDescUpdatedAt is the schema descriptor for updated_at field.
	profilereadinessDescUpdatedAt := profilereadinessFields[3].Descriptor()
	// profilereadiness.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profilereadiness.DefaultUpdatedAt = profilereadinessDescUpdatedAt.Default.(func() time.Time)
	// profilereadiness.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profilereadiness.UpdateDefaultUpdatedAt = profilereadinessDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profilereadinessDescID is the schema descriptor for id field.
	profilereadinessDescID := profilereadinessFields[0].Descriptor()
	// profilereadiness.DefaultID holds the default value on creation for the id field.
	profilereadiness.DefaultID = profilereadinessDescID.Default.(func() uuid.UUID)
	profileskillFields := schema.ProfileSkill{}.Fields()
	_ = profileskillFields
	// profileskillDescID is the schema descriptor for id field.
	profileskillDescID := profileskillFields[0].Descriptor()
	// profileskill.DefaultID holds the default value on creation for the id field.
	profileskill.DefaultID = profileskillDescID.Default.(func() uuid.UUID)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescName is the schema descriptor for name field.
	skillDescName := skillFields[1].Descriptor()
	// skill.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skill.NameValidator = skillDescName.Validators[0].(func(string) error)
	// skillDescCategory is the schema descriptor for category field.
	skillDescCategory := skillFields[2].Descriptor()
	// skill.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	skill.CategoryValidator = func() func(string) error {
		validators := skillDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// skillDescID is the schema descriptor for id field.
	skillDescID := skillFields[0].Descriptor()
	// skill.DefaultID holds the default value on creation for the id field.
	skill.DefaultID = skillDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
