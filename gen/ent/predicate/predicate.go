// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Experience is the predicate function for experience builders.
type Experience func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// ProfileReadiness is the predicate function for profilereadiness builders.
type ProfileReadiness func(*sql.Selector)

// ProfileSkill is the predicate function for profileskill builders.
type ProfileSkill func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
