package testutil

import (
	"testing"

	"github.com/calvinalkan/task-tracker/internal/cli"
)

// Harness wires together the real CLI and the reference model.
type Harness struct {
	T     *testing.T
	CLI   *cli.CLI
	Model *Model
}

// NewHarness creates a harness with an empty model and a fresh temp dir.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	return &Harness{
		T:     t,
		CLI:   cli.NewCLI(t),
		Model: NewModel(),
	}
}

// Apply runs op against the real CLI, then the model.
func (h *Harness) Apply(op Op) (Result, Result) {
	realRes := ApplyReal(h.CLI, op)
	modelRes := op.ApplyModel(h.Model)

	return modelRes, realRes
}
