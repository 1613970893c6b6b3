package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/kunle-oseni/resume-ingest/constants"
	"github.com/kunle-oseni/resume-ingest/utils"
)

// ProfileReadiness is the one-row-per-profile signal the rest of the
// application polls. It reaches COMPLETE only as the final statement of
// the ingestion transaction.
type ProfileReadiness struct{ ent.Schema }

func (ProfileReadiness) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "profile_readiness"},
	}
}

func (ProfileReadiness) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.ReadinessStatuses...)),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ProfileReadiness) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("readiness").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (ProfileReadiness) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id").Unique(),
	}
}
