package emissions

import "fmt"

// NotFoundError reports that the input source does not exist. It is surfaced
// to the caller immediately and never retried.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source not found: %s", e.Path)
}

// LoadError reports malformed or unreadable input data, wrapping the
// underlying cause.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load delivery data: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// CoordinateRangeError reports a coordinate outside valid angular bounds.
// It identifies the offending trip so the caller can point at the bad row;
// the whole batch is aborted rather than producing polluted aggregates.
type CoordinateRangeError struct {
	Index int
	Field string
	Value float64
}

func (e *CoordinateRangeError) Error() string {
	return fmt.Sprintf("trip %d: %s=%v is outside the valid coordinate range", e.Index, e.Field, e.Value)
}

// ConfigurationError reports an invalid pipeline configuration. It is
// raised at construction time, before any row is processed.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}
