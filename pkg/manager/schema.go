package manager

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed document.schema.json
var documentSchemaJSON string

var documentSchema = jsonschema.MustCompileString("document.schema.json", documentSchemaJSON)

// validateDocument checks a decoded JSON value against the canonical
// document schema. Every leaf violation is collected into a
// *multierror.Error wrapped with ErrInvalidDocument.
func validateDocument(doc any) error {
	err := documentSchema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate document: %w", err)
	}

	var result *multierror.Error
	collectSchemaErrors(&result, ve)
	return fmt.Errorf("%w: %w", ErrInvalidDocument, result.ErrorOrNil())
}

func collectSchemaErrors(result **multierror.Error, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*result = multierror.Append(*result, fmt.Errorf("%s: %s", instancePath(err.InstanceLocation), err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// instancePath renders a JSON pointer as a dotted path, "document" for
// the root.
func instancePath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return "document"
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
