package task

import (
	"fmt"
	"strconv"
)

// Status is the lifecycle state of a task.
//
// The zero value is not a valid status; it only appears as "no filter" in
// [ListOptions].
type Status uint8

// Status values.
const (
	StatusTodo Status = iota + 1
	StatusInProgress
	StatusDone
)

// Status names as persisted and printed.
const (
	statusNameTodo       = "todo"
	statusNameInProgress = "in-progress"
	statusNameDone       = "done"
)

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// ParseStatus parses a persisted status name.
func ParseStatus(name string) (Status, error) {
	switch name {
	case statusNameTodo:
		return StatusTodo, nil
	case statusNameInProgress:
		return StatusInProgress, nil
	case statusNameDone:
		return StatusDone, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, name)
}

// Valid reports whether s is one of the three defined statuses.
func (s Status) Valid() bool {
	return s >= StatusTodo && s <= StatusDone
}

func (s Status) String() string {
	switch s {
	case StatusTodo:
		return statusNameTodo
	case StatusInProgress:
		return statusNameInProgress
	case StatusDone:
		return statusNameDone
	}

	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, uint8(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
