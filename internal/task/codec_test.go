package task_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/calvinalkan/task-tracker/internal/task"

	"github.com/google/go-cmp/cmp"
)

func Test_Encode_Empty_Collection_Is_Empty_Array(t *testing.T) {
	t.Parallel()

	data, err := task.Encode(&task.Collection{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if got, want := string(data), "[]\n"; got != want {
		t.Fatalf("encoded=%q, want=%q", got, want)
	}
}

func Test_Encode_Layout(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 3, 1, 9, 30, 0, 123456000, time.UTC)
	coll := &task.Collection{Tasks: []task.Task{{
		ID:          1,
		Description: "buy milk",
		Status:      task.StatusInProgress,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}}}

	data, err := task.Encode(coll)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := `[
    {
        "id": 1,
        "description": "buy milk",
        "status": "in-progress",
        "createdAt": "2025-03-01T09:30:00.123456Z",
        "updatedAt": "2025-03-01T09:30:00.123456Z"
    }
]
`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("encoded mismatch (-want +got):\n%s", diff)
	}
}

func Test_Encode_Decode_Roundtrip(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("CEST", 2*60*60)
	coll := &task.Collection{Tasks: []task.Task{
		{ID: 1, Description: "a", Status: task.StatusTodo, CreatedAt: t0, UpdatedAt: t0},
		{ID: 3, Description: "with \"quotes\" and ünïcode", Status: task.StatusDone,
			CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(2 * time.Hour)},
		{ID: 2, Description: "b", Status: task.StatusInProgress,
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 6000, zone), UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 7000, zone)},
	}}

	data, err := task.Encode(coll)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := task.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if diff := cmp.Diff(coll, got); diff != "" {
		t.Fatalf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

// Legacy files carry zone-less timestamps, with or without fractional seconds.
func Test_Decode_Accepts_Naive_Timestamps(t *testing.T) {
	t.Parallel()

	data := `[
    {
        "id": 1,
        "description": "legacy",
        "status": "todo",
        "createdAt": "2024-05-01T10:00:00.123456",
        "updatedAt": "2024-05-01T10:00:00"
    }
]`

	coll, err := task.Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.Local)
	if got := coll.Tasks[0].CreatedAt; !got.Equal(want) {
		t.Fatalf("createdAt=%v, want=%v", got, want)
	}

	if got, want := coll.Tasks[0].UpdatedAt, time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local); !got.Equal(want) {
		t.Fatalf("updatedAt=%v, want=%v", got, want)
	}
}

// `add ""` in the old tool stored an empty description; such files still load.
func Test_Decode_Accepts_Empty_Legacy_Description(t *testing.T) {
	t.Parallel()

	data := `[{"id": 1, "description": "", "status": "todo", "createdAt": "2024-05-01T10:00:00", "updatedAt": "2024-05-01T10:00:00"}]`

	coll, err := task.Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got, want := coll.Len(), 1; got != want {
		t.Fatalf("len=%d, want=%d", got, want)
	}

	if got := coll.Tasks[0].Description; got != "" {
		t.Fatalf("description=%q, want empty", got)
	}
}

func Test_Decode_Rejects_Malformed(t *testing.T) {
	t.Parallel()

	valid := func(fields string) string {
		return `[{"id": 1, "description": "a", "status": "todo", ` + fields + `}]`
	}

	for _, tt := range []struct {
		name    string
		data    string
		wantMsg string
	}{
		{name: "empty file", data: "", wantMsg: "invalid JSON"},
		{name: "not json", data: "{oops", wantMsg: "invalid JSON"},
		{name: "object instead of array", data: `{"tasks": []}`, wantMsg: "(root)"},
		{name: "trailing data", data: `[] []`, wantMsg: "unexpected data"},
		{name: "missing field", data: `[{"id": 1, "description": "a", "status": "todo", "createdAt": "2024-01-01T00:00:00Z"}]`, wantMsg: "updatedAt"},
		{name: "unknown status", data: `[{"id": 1, "description": "a", "status": "blocked", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}]`, wantMsg: "[0].status"},
		{name: "zero id", data: `[{"id": 0, "description": "a", "status": "todo", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}]`, wantMsg: "[0].id"},
		{name: "string id", data: `[{"id": "1", "description": "a", "status": "todo", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}]`, wantMsg: "[0].id"},
		{name: "numeric description", data: `[{"id": 1, "description": 5, "status": "todo", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}]`, wantMsg: "[0].description"},
		{name: "bad timestamp", data: valid(`"createdAt": "yesterday", "updatedAt": "2024-01-01T00:00:00Z"`), wantMsg: "[0].createdAt"},
		{name: "duplicate id", data: `[
			{"id": 1, "description": "a", "status": "todo", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"},
			{"id": 1, "description": "b", "status": "todo", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}
		]`, wantMsg: "duplicate id 1"},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := task.Decode([]byte(tt.data))
			if !errors.Is(err, task.ErrMalformedStorage) {
				t.Fatalf("err=%v, want ErrMalformedStorage", err)
			}

			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("err=%q, want to contain %q", err, tt.wantMsg)
			}
		})
	}
}
