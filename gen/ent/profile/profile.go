// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldEducation holds the string denoting the education field in the database.
	FieldEducation = "education"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExperiences holds the string denoting the experiences edge name in mutations.
	EdgeExperiences = "experiences"
	// EdgeSkillLinks holds the string denoting the skill_links edge name in mutations.
	EdgeSkillLinks = "skill_links"
	// EdgeReadiness holds the string denoting the readiness edge name in mutations.
	EdgeReadiness = "readiness"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
	// ExperiencesTable is the table that holds the experiences relation/edge.
	ExperiencesTable = "experiences"
	// ExperiencesInverseTable is the table name for the Experience entity.
	// It exists in this package in order to avoid circular dependency with the "experience" package.
	ExperiencesInverseTable = "experiences"
	// ExperiencesColumn is the table column denoting the experiences relation/edge.
	ExperiencesColumn = "profile_id"
	// SkillLinksTable is the table that holds the skill_links relation/edge.
	SkillLinksTable = "profile_skills"
	// SkillLinksInverseTable is the table name for the ProfileSkill entity.
	// It exists in this package in order to avoid circular dependency with the "profileskill" package.
	SkillLinksInverseTable = "profile_skills"
	// SkillLinksColumn is the table column denoting the skill_links relation/edge.
	SkillLinksColumn = "profile_id"
	// ReadinessTable is the table that holds the readiness relation/edge.
	ReadinessTable = "profile_readiness"
	// ReadinessInverseTable is the table name for the ProfileReadiness entity.
	// It exists in this package in order to avoid circular dependency with the "profilereadiness" package.
	ReadinessInverseTable = "profile_readiness"
	// ReadinessColumn is the table column denoting the readiness relation/edge.
	ReadinessColumn = "profile_id"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSummary,
	FieldEducation,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExperiencesCount orders the results by experiences count.
func ByExperiencesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExperiencesStep(), opts...)
	}
}

// ByExperiences orders the results by experiences terms.
func ByExperiences(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExperiencesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySkillLinksCount orders the results by skill_links count.
func BySkillLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSkillLinksStep(), opts...)
	}
}

// BySkillLinks orders the results by skill_links terms.
func BySkillLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSkillLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReadinessCount orders the results by readiness count.
func ByReadinessCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReadinessStep(), opts...)
	}
}

// ByReadiness orders the results by readiness terms.
func ByReadiness(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReadinessStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExperiencesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExperiencesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExperiencesTable, ExperiencesColumn),
	)
}
func newSkillLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SkillLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SkillLinksTable, SkillLinksColumn),
	)
}
func newReadinessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReadinessInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReadinessTable, ReadinessColumn),
	)
}
