package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/kunle-oseni/resume-ingest/gen/ent",
			Schema:  "github.com/kunle-oseni/resume-ingest/db/ent/schema",
			Features: []gen.Feature{
				gen.FeatureUpsert,
				gen.FeatureExecQuery,
			},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
