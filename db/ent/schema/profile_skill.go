package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ProfileSkill joins profiles to the global skills table. The pair is
// unique; concurrent jobs creating the same link rely on conflict-tolerant
// inserts rather than erroring.
type ProfileSkill struct{ ent.Schema }

func (ProfileSkill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "profile_skills"},
	}
}

func (ProfileSkill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs so we can define a composite unique index
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("skill_id", uuid.UUID{}),
	}
}

func (ProfileSkill) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("skill_links").
			Field("profile_id").
			Required().
			Unique(),
		edge.From("skill", Skill.Type).
			Ref("profile_links").
			Field("skill_id").
			Required().
			Unique(),
	}
}

func (ProfileSkill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "skill_id").Unique(),
	}
}
