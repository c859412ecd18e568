package application

import (
	"errors"
	"fmt"
)

var (
	// ErrTopicNotFound is returned when the target topic does not exist on the broker
	ErrTopicNotFound = errors.New("topic does not exist")

	// ErrTopicExists is returned when a topic to be created is already present
	ErrTopicExists = errors.New("topic already exists")

	// ErrEmptyTopicName is returned when a command is invoked without a topic name
	ErrEmptyTopicName = errors.New("topic name must not be empty")
)

// FilterSyntaxError reports a threshold filter value that does not match
// the [<|>|<=|>=|=]<integer> grammar. It is raised before any broker call.
type FilterSyntaxError struct {
	Field string
	Value string
}

func (e *FilterSyntaxError) Error() string {
	return fmt.Sprintf("invalid %s filter %q: expected [<|>|<=|>=|=]<integer>", e.Field, e.Value)
}
