// In file: internal/agent/errors.go
package agent

import (
	"errors"
	"fmt"
)

// The pipeline's error taxonomy. None of these ever cross a stage
// boundary: the answer stage degrades to a direct completion, the
// selection stage degrades to an info card. They exist so logs and
// fallback reasoning can say precisely what went wrong.
var (
	// ErrUnparseableModelOutput means the model produced neither usable
	// text nor a decodable tool result.
	ErrUnparseableModelOutput = errors.New("model output could not be parsed")

	// ErrAmbiguousRouting means neither the keyword rules nor the model
	// could name a known category.
	ErrAmbiguousRouting = errors.New("routing produced no confident category")
)

// ToolExecutionError wraps a failure inside a named tool.
type ToolExecutionError struct {
	Tool string
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool %s failed: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error { return e.Err }

// TransportError wraps a model call failure (network, provider, quota).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("model call failed during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
