// Code generated by ent, DO NOT EDIT.

package skill

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the skill type in the database.
	Label = "skill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// EdgeProfileLinks holds the string denoting the profile_links edge name in mutations.
	EdgeProfileLinks = "profile_links"
	// Table holds the table name of the skill in the database.
	Table = "skills"
	// ProfileLinksTable is the table that holds the profile_links relation/edge.
	ProfileLinksTable = "profile_skills"
	// ProfileLinksInverseTable is the table name for the ProfileSkill entity.
	// It exists in this package in order to avoid circular dependency with the "profileskill" package.
	ProfileLinksInverseTable = "profile_skills"
	// ProfileLinksColumn is the table column denoting the profile_links relation/edge.
	ProfileLinksColumn = "skill_id"
)

// Columns holds all SQL columns for skill fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCategory,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Skill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByProfileLinksCount orders the results by profile_links count.
func ByProfileLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProfileLinksStep(), opts...)
	}
}

// ByProfileLinks orders the results by profile_links terms.
func ByProfileLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProfileLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProfileLinksTable, ProfileLinksColumn),
	)
}
