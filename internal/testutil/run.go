package testutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// RunConfig configures a behavior test run.
type RunConfig struct {
	// MaxOps is the maximum number of operations to execute.
	MaxOps int

	// CompareStateEveryN runs full state comparison every N operations.
	// Set to 0 to only check at the end.
	CompareStateEveryN int
}

// DefaultRunConfig returns a balanced configuration for behavior tests.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		MaxOps:             100,
		CompareStateEveryN: 10,
	}
}

// RunBehavior executes the operations derived from seed with the default
// generator config and compares the real CLI against the model after each.
func RunBehavior(t *testing.T, seed []byte, cfg RunConfig) {
	t.Helper()

	genCfg := DefaultOpGenConfig()
	RunBehaviorWithConfig(t, seed, cfg, &genCfg)
}

// RunBehaviorWithConfig is RunBehavior with an explicit generator config.
func RunBehaviorWithConfig(t *testing.T, seed []byte, cfg RunConfig, genCfg *OpGenConfig) {
	t.Helper()

	if cfg.MaxOps <= 0 {
		t.Fatalf("RunBehavior requires MaxOps > 0")
	}

	h := NewHarness(t)
	gen := NewOpGenerator(seed, h.Model, genCfg)
	history := make([]string, 0, cfg.MaxOps)

	for opIndex := 1; opIndex <= cfg.MaxOps && gen.HasMore(); opIndex++ {
		op := gen.NextOp()
		history = append(history, op.String())

		modelRes, realRes := h.Apply(op)

		err := compareResults(op, &modelRes, &realRes)
		if err != nil {
			t.Fatalf("%v\n%s", err, FormatOps(history))
		}

		if cfg.CompareStateEveryN > 0 && opIndex%cfg.CompareStateEveryN == 0 {
			err := CompareState(h)
			if err != nil {
				t.Fatalf("%v\n%s", err, FormatOps(history))
			}
		}
	}

	err := CompareState(h)
	if err != nil {
		t.Fatalf("%v\n%s", err, FormatOps(history))
	}
}

func compareResults(op Op, modelRes, realRes *Result) error {
	if realRes.ExitCode != modelRes.ExitCode {
		return fmt.Errorf("exit code mismatch: %s, model: %d, real: %d, stderr: %s",
			op.String(), modelRes.ExitCode, realRes.ExitCode, realRes.Stderr)
	}

	if strings.Contains(realRes.Stderr, "error:") {
		return fmt.Errorf("unexpected error output: %s, stderr: %s", op.String(), realRes.Stderr)
	}

	if diff := cmp.Diff(modelRes.Lines, realRes.Lines); diff != "" {
		return fmt.Errorf("output mismatch: %s (-model +real):\n%s", op.String(), diff)
	}

	return nil
}

// storedTask is a task as read back from the backing file.
type storedTask struct {
	ModelTask

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CompareState checks the backing file against the model: same tasks in
// the same order, and timestamps that never run backwards.
func CompareState(h *Harness) error {
	data, err := os.ReadFile(h.CLI.TasksFile())
	if errors.Is(err, os.ErrNotExist) {
		if h.Model.Initialized() {
			return errors.New("tasks file missing after a command that touches storage")
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("reading tasks file: %w", err)
	}

	if !h.Model.Initialized() {
		return errors.New("tasks file exists before any command touched storage")
	}

	var stored []storedTask

	err = json.Unmarshal(data, &stored)
	if err != nil {
		return fmt.Errorf("decoding tasks file: %w", err)
	}

	got := make([]ModelTask, 0, len(stored))

	var prevCreated time.Time

	for _, st := range stored {
		got = append(got, st.ModelTask)

		created, err := time.Parse(time.RFC3339Nano, st.CreatedAt)
		if err != nil {
			return fmt.Errorf("task %d: createdAt: %w", st.ID, err)
		}

		updated, err := time.Parse(time.RFC3339Nano, st.UpdatedAt)
		if err != nil {
			return fmt.Errorf("task %d: updatedAt: %w", st.ID, err)
		}

		if updated.Before(created) {
			return fmt.Errorf("task %d: updatedAt %s before createdAt %s", st.ID, st.UpdatedAt, st.CreatedAt)
		}

		if created.Before(prevCreated) {
			return fmt.Errorf("task %d: createdAt %s out of insertion order", st.ID, st.CreatedAt)
		}

		prevCreated = created
	}

	if diff := cmp.Diff(h.Model.Tasks(), got, cmpopts.EquateEmpty()); diff != "" {
		return fmt.Errorf("state mismatch (-model +real):\n%s", diff)
	}

	return nil
}
