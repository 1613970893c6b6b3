package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Experience is a child of Profile, bulk-appended per ingestion run.
// Dates are kept as the free-text values found on the résumé.
type Experience struct{ ent.Schema }

func (Experience) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "experiences"},
	}
}

func (Experience) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("company_name").NotEmpty(),
		field.String("role").NotEmpty(),
		field.String("start_date"),
		field.String("end_date").Optional().Nillable(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Experience) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("experiences").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (Experience) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
	}
}
