package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedProfile(t *testing.T) {
	schema := BuildResumeJSONSchema()
	payload := []byte(`{
		"name": "Jane Doe",
		"contact": {"email": "jane.doe@example.com"},
		"summary": "Backend engineer.",
		"education": [{"institution": "State University", "degree": "B.Sc", "duration": "2016-2020"}],
		"experience": [{"title": "Software Engineer", "company": "Acme Corp", "duration": "Jan 2020 - Mar 2022", "responsibilities": ["Built data pipelines"]}],
		"skills": {"languages": ["python", "go"]}
	}`)
	require.NoError(t, ValidateJSONAgainstSchema(schema, payload))
}

func TestValidateRejectsBadPayloads(t *testing.T) {
	schema := BuildResumeJSONSchema()
	tests := []struct {
		name    string
		payload string
	}{
		{"missing name", `{"skills": {}}`},
		{"missing skills", `{"name": "Jane Doe"}`},
		{"empty name", `{"name": "", "skills": {}}`},
		{"unknown top-level field", `{"name": "Jane", "skills": {}, "salary": 100}`},
		{"education entry without institution", `{"name": "Jane", "skills": {}, "education": [{"degree": "B.Sc"}]}`},
		{"skills with wrong type", `{"name": "Jane", "skills": {"languages": "go"}}`},
		{"not json", `name: Jane`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(tt.payload)))
		})
	}
}
