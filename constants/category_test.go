package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input string
		want  SkillCategory
		ok    bool
	}{
		{"Languages", Languages, true},
		{"programming languages", Languages, true},
		{"  DevOps  ", Tools, true},
		{"datastores", Databases, true},
		{"library", Libraries, true},
		{"Frameworks", Frameworks, true},
		{"Core Competencies", OtherSkill, false},
		{"", OtherSkill, false},
	}
	for _, tt := range tests {
		got, ok := Canonicalize(tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
	}
}
