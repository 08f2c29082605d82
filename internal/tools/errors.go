// In file: internal/tools/errors.go
package tools

import "fmt"

// MissingParameterError reports a required tool argument that was absent or
// empty. Tools fail construction on missing required fields; malformed but
// present numeric values coerce to defaults instead (see internal/schema).
type MissingParameterError struct {
	Tool  string
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("tool %q: missing required parameter %q", e.Tool, e.Param)
}
