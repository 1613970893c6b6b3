package llm

// BuildResumeJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is sent to the model as a structured output constraint and
// also used locally to validate the returned content before it is trusted.
func BuildResumeJSONSchema() map[string]any {
	stringArray := func() map[string]any {
		return map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		}
	}

	contact := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"email":     map[string]any{"type": "string"},
			"phone":     map[string]any{"type": "string"},
			"linkedin":  map[string]any{"type": "string"},
			"github":    map[string]any{"type": "string"},
			"portfolio": map[string]any{"type": "string"},
		},
	}

	education := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"institution": map[string]any{"type": "string", "minLength": 1},
				"degree":      map[string]any{"type": "string"},
				"duration":    map[string]any{"type": "string"},
				"gpa":         map[string]any{"type": "string"},
			},
			"required": []string{"institution"},
		},
	}

	experience := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"title":            map[string]any{"type": "string", "minLength": 1},
				"company":          map[string]any{"type": "string"},
				"duration":         map[string]any{"type": "string"},
				"responsibilities": stringArray(),
			},
			"required": []string{"title"},
		},
	}

	projects := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"name":         map[string]any{"type": "string", "minLength": 1},
				"technologies": stringArray(),
				"description":  stringArray(),
				"links":        stringArray(),
			},
			"required": []string{"name"},
		},
	}

	skills := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"languages":  stringArray(),
			"frameworks": stringArray(),
			"databases":  stringArray(),
			"tools":      stringArray(),
			"libraries":  stringArray(),
			"other":      stringArray(),
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":         map[string]any{"type": "string", "minLength": 1},
			"contact":      contact,
			"summary":      map[string]any{"type": "string"},
			"education":    education,
			"experience":   experience,
			"projects":     projects,
			"skills":       skills,
			"achievements": stringArray(),
			"languages":    stringArray(),
			"interests":    stringArray(),
		},
		"required": []string{"name", "skills"},
	}
}
