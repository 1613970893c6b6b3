// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExperiencesColumns holds the columns for the "experiences" table.
	ExperiencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "start_date", Type: field.TypeString},
		{Name: "end_date", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ExperiencesTable holds the schema information for the "experiences" table.
	ExperiencesTable = &schema.Table{
		Name:       "experiences",
		Columns:    ExperiencesColumns,
		PrimaryKey: []*schema.Column{ExperiencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "experiences_profiles_experiences",
				Columns:    []*schema.Column{ExperiencesColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "experience_profile_id",
				Unique:  false,
				Columns: []*schema.Column{ExperiencesColumns[7]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "education", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_user_id",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// ProfileReadinessColumns holds the columns for the "profile_readiness" table.
	ProfileReadinessColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ProfileReadinessTable holds the schema information for the "profile_readiness" table.
	ProfileReadinessTable = &schema.Table{
		Name:       "profile_readiness",
		Columns:    ProfileReadinessColumns,
		PrimaryKey: []*schema.Column{ProfileReadinessColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "profile_readiness_profiles_readiness",
				Columns:    []*schema.Column{ProfileReadinessColumns[3]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "profilereadiness_profile_id",
				Unique:  true,
				Columns: []*schema.Column{ProfileReadinessColumns[3]},
			},
		},
	}
	// ProfileSkillsColumns holds the columns for the "profile_skills" table.
	ProfileSkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
		{Name: "skill_id", Type: field.TypeUUID},
	}
	// ProfileSkillsTable holds the schema information for the "profile_skills" table.
	ProfileSkillsTable = &schema.Table{
		Name:       "profile_skills",
		Columns:    ProfileSkillsColumns,
		PrimaryKey: []*schema.Column{ProfileSkillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "profile_skills_profiles_skill_links",
				Columns:    []*schema.Column{ProfileSkillsColumns[1]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "profile_skills_skills_profile_links",
				Columns:    []*schema.Column{ProfileSkillsColumns[2]},
				RefColumns: []*schema.Column{SkillsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "profileskill_profile_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{ProfileSkillsColumns[1], ProfileSkillsColumns[2]},
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "category", Type: field.TypeString},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "profile_data_id", Type: field.TypeUUID, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_profiles_profile",
				Columns:    []*schema.Column{UsersColumns[3]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExperiencesTable,
		ProfilesTable,
		ProfileReadinessTable,
		ProfileSkillsTable,
		SkillsTable,
		UsersTable,
	}
)

func init() {
	ExperiencesTable.ForeignKeys[0].RefTable = ProfilesTable
	ExperiencesTable.Annotation = &entsql.Annotation{
		Table: "experiences",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	ProfileReadinessTable.ForeignKeys[0].RefTable = ProfilesTable
	ProfileReadinessTable.Annotation = &entsql.Annotation{
		Table: "profile_readiness",
	}
	ProfileSkillsTable.ForeignKeys[0].RefTable = ProfilesTable
	ProfileSkillsTable.ForeignKeys[1].RefTable = SkillsTable
	ProfileSkillsTable.Annotation = &entsql.Annotation{
		Table: "profile_skills",
	}
	SkillsTable.Annotation = &entsql.Annotation{
		Table: "skills",
	}
	UsersTable.ForeignKeys[0].RefTable = ProfilesTable
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
