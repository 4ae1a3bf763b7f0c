// Package errors provides structured error types for input validation
// verdicts and tool failures.
//
// Every validation failure carries one of the verdict codes (SCHEMA, TYPE,
// VALUE, IDENTITY, DUPLICATE, SIZING_CONFLICT, COHERENCE, FILE_ACCESS,
// CUT_TYPE_CONFLICT) and a context locating the offending input.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeDuplicate,
//	    "candidate names have to be unique",
//	    map[string]any{
//	        "attribute": "name",
//	        "value":     "grid",
//	        "section":   "3",
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeDuplicate) {
//	    // ...
//	}
package errors
