package parser

import (
	"strings"

	"github.com/kunle-oseni/resume-ingest/constants"
)

// Fixed category vocabulary for skill tokens, matched case-insensitively.
// Unmatched tokens land in the "other" bucket.
var skillVocab = map[constants.SkillCategory][]string{
	constants.Languages: {
		"go", "golang", "python", "java", "javascript", "typescript", "c", "c++",
		"c#", "rust", "ruby", "php", "kotlin", "swift", "scala", "elixir", "dart",
		"sql", "html", "css", "bash", "shell", "r", "perl", "haskell", "lua",
	},
	constants.Frameworks: {
		"react", "angular", "vue", "next.js", "nextjs", "nuxt", "svelte",
		"django", "flask", "fastapi", "spring", "spring boot", "rails",
		"express", "nestjs", "nest.js", "gin", "fiber", "echo", "laravel",
		"symfony", ".net", "asp.net", "flutter", "react native",
	},
	constants.Databases: {
		"postgresql", "postgres", "mysql", "mariadb", "sqlite", "mongodb",
		"redis", "cassandra", "dynamodb", "elasticsearch", "oracle",
		"sql server", "neo4j", "couchdb", "clickhouse", "bigquery", "snowflake",
	},
	constants.Tools: {
		"docker", "kubernetes", "k8s", "git", "github", "gitlab", "jenkins",
		"terraform", "ansible", "aws", "gcp", "azure", "linux", "nginx",
		"kafka", "rabbitmq", "grafana", "prometheus", "jira", "figma",
		"webpack", "vite", "ci/cd", "helm", "vault",
	},
	constants.Libraries: {
		"numpy", "pandas", "scikit-learn", "tensorflow", "pytorch", "keras",
		"matplotlib", "opencv", "jquery", "lodash", "redux", "rxjs",
		"graphql", "grpc", "protobuf", "celery", "sqlalchemy", "gorm",
	},
}

var vocabIndex = buildVocabIndex()

func buildVocabIndex() map[string]constants.SkillCategory {
	idx := make(map[string]constants.SkillCategory)
	for cat, names := range skillVocab {
		for _, n := range names {
			idx[n] = cat
		}
	}
	return idx
}

// categorizeSkill buckets a single token; unknown tokens go to OtherSkill.
func categorizeSkill(token string) constants.SkillCategory {
	if cat, ok := vocabIndex[strings.ToLower(strings.TrimSpace(token))]; ok {
		return cat
	}
	return constants.OtherSkill
}
