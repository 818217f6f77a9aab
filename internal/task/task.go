// Package task implements the task collection and its flat-file store.
package task

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Task is a single to-do record.
type Task struct {
	ID          int
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// touch refreshes UpdatedAt, keeping it strictly increasing even when the
// clock has not advanced past the previous value.
func (t *Task) touch(now time.Time) {
	floor := t.UpdatedAt.Add(timestampPrecision)
	if now.Before(floor) {
		now = floor
	}

	t.UpdatedAt = now
}

// NoID is what [ParseID] returns for integers too large for any stored id.
// It matches no task.
const NoID = 0

// ParseID parses a task ID as typed by the user: an optional sign, then
// decimal digits, optionally grouped with single underscores ("1_000").
// Ids that are well-formed but not positive, or too large to store, simply
// never match a task.
func ParseID(s string) (int, error) {
	digits := strings.TrimSpace(s)
	if !isIntLiteral(digits) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	id, err := strconv.Atoi(strings.ReplaceAll(digits, "_", ""))
	if errors.Is(err, strconv.ErrRange) {
		return NoID, nil
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	return id, nil
}

// isIntLiteral reports whether s is a signed decimal integer whose digits
// may be separated by single underscores.
func isIntLiteral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	afterDigit := false

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			afterDigit = true
		case c == '_' && afterDigit:
			afterDigit = false
		default:
			return false
		}
	}

	return afterDigit
}

// Collection is the full ordered set of tasks, in creation order.
type Collection struct {
	Tasks []Task
}

// Len returns the number of tasks.
func (c *Collection) Len() int {
	return len(c.Tasks)
}

// NextID returns the id the next added task will receive.
func (c *Collection) NextID() int {
	maxID := 0

	for i := range c.Tasks {
		maxID = max(maxID, c.Tasks[i].ID)
	}

	return maxID + 1
}

// Get returns a pointer to the task with id, or nil.
// The pointer is only valid until the collection is next modified.
func (c *Collection) Get(id int) *Task {
	idx := c.index(id)
	if idx < 0 {
		return nil
	}

	return &c.Tasks[idx]
}

// Append adds a new todo task stamped with now and returns it.
func (c *Collection) Append(description string, now time.Time) Task {
	tsk := Task{
		ID:          c.NextID(),
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	c.Tasks = append(c.Tasks, tsk)

	return tsk
}

// Remove deletes the task with id, preserving the order of the rest.
// Reports whether a task was removed.
func (c *Collection) Remove(id int) bool {
	idx := c.index(id)
	if idx < 0 {
		return false
	}

	c.Tasks = slices.Delete(c.Tasks, idx, idx+1)

	return true
}

// Filter returns the tasks with the given status, or all tasks when status
// is zero. The result is a copy.
func (c *Collection) Filter(status Status) []Task {
	out := make([]Task, 0, len(c.Tasks))

	for _, tsk := range c.Tasks {
		if status == 0 || tsk.Status == status {
			out = append(out, tsk)
		}
	}

	return out
}

func (c *Collection) index(id int) int {
	return slices.IndexFunc(c.Tasks, func(t Task) bool { return t.ID == id })
}
