package task

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaSource string

const schemaURL = "tasks.schema.json"

var fileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	schema, err := jsonschema.CompileString(schemaURL, schemaSource)
	if err != nil {
		return nil, fmt.Errorf("compile task file schema: %w", err)
	}

	return schema, nil
})

// validateDocument checks a decoded JSON document against the task file
// schema. doc must come from encoding/json (json.Number is accepted).
func validateDocument(doc any) error {
	schema, err := fileSchema()
	if err != nil {
		return err
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}

	var leaves []string
	collectSchemaErrors(&leaves, ve)

	return fmt.Errorf("schema violation: %s", strings.Join(leaves, "; "))
}

func collectSchemaErrors(out *[]string, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*out = append(*out, jsonPointerToPath(err.InstanceLocation)+": "+err.Message)

		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(out, cause)
	}
}

// jsonPointerToPath renders "/0/status" as "[0].status".
func jsonPointerToPath(ptr string) string {
	if ptr == "" || ptr == "/" {
		return "(root)"
	}

	var b strings.Builder

	for _, part := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			b.WriteString("[" + part + "]")

			continue
		}

		if b.Len() > 0 {
			b.WriteByte('.')
		}

		b.WriteString(part)
	}

	return b.String()
}
