package lexer

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed monarch.schema.json
var monarchSchemaSource string

var monarchSchema = jsonschema.MustCompileString("monarch.schema.json", monarchSchemaSource)

// ValidateSchema checks that data is a tokenizer in the JSON shape produced by
// Definition.MarshalJSON.
func ValidateSchema(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid tokenizer schema: %w", err)
	}
	if err := monarchSchema.Validate(doc); err != nil {
		return fmt.Errorf("invalid tokenizer schema: %w", err)
	}
	return nil
}
