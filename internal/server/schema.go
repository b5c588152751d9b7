// internal/server/schema.go
package server

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"foresight/internal/common/errors"
)

// userDataSchema describes the wire shape of the user_data object. Field
// presence and types are enforced here; semantic range checks are not.
const userDataSchema = `{
	"type": "object",
	"required": [
		"age", "tenure_months", "remote_flag", "education",
		"location", "title", "industry", "avg_sleep_hours"
	],
	"properties": {
		"age": {"type": "integer"},
		"tenure_months": {"type": "integer"},
		"remote_flag": {"type": "integer", "enum": [0, 1]},
		"education": {"type": "string"},
		"location": {"type": "string"},
		"title": {"type": "string"},
		"industry": {"type": "string"},
		"avg_sleep_hours": {"type": "number"}
	}
}`

var userDataSchemaLoader = gojsonschema.NewStringLoader(userDataSchema)

// validateUserData checks a raw user_data document against the schema and
// returns a schema validation error listing every violation.
func validateUserData(raw json.RawMessage) error {
	result, err := gojsonschema.Validate(userDataSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return errors.NewSchemaValidationFailedError(err.Error())
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return errors.NewSchemaValidationFailedError(strings.Join(details, "; "))
}
