package graphql

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaString string

// NewSchema parses the schema and binds it to r. It panics if a resolver
// method is missing, which is caught by the tests.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(schemaString, r)
}
