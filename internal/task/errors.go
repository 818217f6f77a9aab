package task

import "errors"

// Error variables for task and config operations.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidID          = errors.New("invalid task ID")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrDescriptionEmpty   = errors.New("description cannot be empty")
	ErrMalformedStorage   = errors.New("malformed task file")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrTasksFileEmpty     = errors.New("tasks-file cannot be empty")
	ErrInvalidLogLevel    = errors.New("invalid log level")
)
