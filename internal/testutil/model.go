package testutil

import (
	"slices"
	"strconv"
)

// Model is a minimal in-memory reference for task-cli behavior.
//
// It tracks only what the CLI output and the backing file must agree on:
// ids, descriptions, statuses and insertion order. Timestamps are checked
// separately since the model has no clock.
type Model struct {
	tasks       []ModelTask
	initialized bool
}

// ModelTask is the model's view of one stored task.
type ModelTask struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// NewModel returns an empty, uninitialized model.
func NewModel() *Model {
	return &Model{}
}

// Initialized reports whether any command has created the backing file.
func (m *Model) Initialized() bool {
	return m.initialized
}

// Tasks returns a copy of the tasks in collection order.
func (m *Model) Tasks() []ModelTask {
	return slices.Clone(m.tasks)
}

// IDs returns the ids of all tasks in collection order.
func (m *Model) IDs() []int {
	ids := make([]int, 0, len(m.tasks))
	for _, t := range m.tasks {
		ids = append(ids, t.ID)
	}

	return ids
}

// MaxID returns the highest id, or 0 for an empty collection.
func (m *Model) MaxID() int {
	maxID := 0
	for _, t := range m.tasks {
		maxID = max(maxID, t.ID)
	}

	return maxID
}

// Add appends a todo task and returns its id.
func (m *Model) Add(description string) int {
	m.initialized = true

	id := m.MaxID() + 1
	m.tasks = append(m.tasks, ModelTask{ID: id, Description: description, Status: "todo"})

	return id
}

// Update replaces a description. Reports whether the task existed.
func (m *Model) Update(id int, description string) bool {
	m.initialized = true

	i := m.index(id)
	if i < 0 {
		return false
	}

	m.tasks[i].Description = description

	return true
}

// SetStatus changes a status. Reports whether the task existed.
func (m *Model) SetStatus(id int, status string) bool {
	m.initialized = true

	i := m.index(id)
	if i < 0 {
		return false
	}

	m.tasks[i].Status = status

	return true
}

// Delete removes a task. Reports whether the task existed.
func (m *Model) Delete(id int) bool {
	m.initialized = true

	i := m.index(id)
	if i < 0 {
		return false
	}

	m.tasks = slices.Delete(m.tasks, i, i+1)

	return true
}

// List returns tasks matching status, or all tasks for "".
func (m *Model) List(status string) []ModelTask {
	m.initialized = true

	var out []ModelTask

	for _, t := range m.tasks {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}

	return out
}

// Line renders the part of a list line the model can predict.
func (t ModelTask) Line() string {
	return "ID: " + strconv.Itoa(t.ID) + ", Description: " + t.Description + ", Status: " + t.Status
}

func (m *Model) index(id int) int {
	return slices.IndexFunc(m.tasks, func(t ModelTask) bool { return t.ID == id })
}
