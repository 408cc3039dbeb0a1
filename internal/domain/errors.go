package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrMissingCredential = errors.New("missing credential")
	ErrTimeout           = errors.New("operation timeout")
)

// NodeError wraps a failure tied to a specific node type and operation.
type NodeError struct {
	NodeType string
	Op       string
	Err      error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node[%s] %s: %v", e.NodeType, e.Op, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

func NewNodeError(nodeType, op string, err error) *NodeError {
	return &NodeError{NodeType: nodeType, Op: op, Err: err}
}

// RegistrationError reports a rejected node registration. Re-registering an
// existing type is a programmer error, not a recoverable runtime condition.
type RegistrationError struct {
	NodeType string
	Reason   string
}

func (e *RegistrationError) Error() string {
	return "node registration failed for '" + e.NodeType + "': " + e.Reason
}

// ValidationError reports a value that does not satisfy a schema, naming
// the offending path within the value.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed at %s: %s", e.Path, e.Message)
}

func NewValidationError(path, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Path: path, Message: fmt.Sprintf(format, args...)}
}

// FetchError reports an HTTP call that failed after exhausting its retry
// budget. Status is the last observed status, or zero when every attempt
// failed at the transport level.
type FetchError struct {
	URL      string
	Status   int
	Attempts int
	Message  string
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("fetch %s failed after %d attempts: status %d: %s", e.URL, e.Attempts, e.Status, e.Message)
	}
	return fmt.Sprintf("fetch %s failed after %d attempts: %s", e.URL, e.Attempts, e.Message)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
