package question

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed question.schema.json
var documentSchemaText string

// documentFields are the required top-level keys of a question file.
var documentFields = []string{"title", "questions"}

var documentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("question.schema.json", documentSchemaText)
})

// validateDocument checks a generically decoded question file against the
// embedded schema and reports every violation as an Issue.
func validateDocument(doc any) error {
	schema, err := documentSchema()
	if err != nil {
		return fmt.Errorf("compile question schema: %w", err)
	}
	err = schema.Validate(doc)
	if err == nil {
		return nil
	}
	var schemaErr *jsonschema.ValidationError
	if !errors.As(err, &schemaErr) {
		return fmt.Errorf("validate question file: %w", err)
	}
	collector := &issueCollector{}
	for _, leaf := range schemaLeaves(schemaErr) {
		if strings.HasSuffix(leaf.KeywordLocation, "/required") {
			fields, _ := doc.(map[string]any)
			for _, name := range documentFields {
				if _, ok := fields[name]; !ok {
					collector.add(name, "is required")
				}
			}
			continue
		}
		collector.add(issueField(leaf.InstanceLocation), leaf.Message)
	}
	return collector.result()
}

// schemaLeaves flattens a validation error tree to its most specific causes.
func schemaLeaves(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range err.Causes {
		leaves = append(leaves, schemaLeaves(cause)...)
	}
	return leaves
}

// issueField turns a JSON pointer such as /questions/Odds/q into questions.Odds.q.
func issueField(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return "document"
	}
	parts := strings.Split(pointer, "/")
	for i, part := range parts {
		parts[i] = strings.NewReplacer("~1", "/", "~0", "~").Replace(part)
	}
	return strings.Join(parts, ".")
}
