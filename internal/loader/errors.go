package loader

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns absent from an input file. The run
// aborts before any output is written when one is raised.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s missing required columns: [%s]", e.File, strings.Join(e.Missing, ", "))
}

// ParseError reports a cell that could not be coerced to its column type.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
