package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
	"github.com/kunle-oseni/resume-ingest/constants"
	"github.com/kunle-oseni/resume-ingest/utils"
)

// Skill is a global row shared by every profile; created lazily and never
// duplicated. Names are stored case-normalized (lowercase).
type Skill struct{ ent.Schema }

func (Skill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "skills"},
	}
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("category").NotEmpty().
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
	}
}

func (Skill) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("profile_links", ProfileSkill.Type),
	}
}
