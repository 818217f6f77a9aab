package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Timestamps are persisted with microsecond precision and a zone offset.
const (
	timestampLayout    = "2006-01-02T15:04:05.000000Z07:00"
	timestampPrecision = time.Microsecond

	// naiveLayout matches zone-less ISO-8601 timestamps such as
	// "2024-05-01T10:00:00.123456". Fractional seconds are optional.
	naiveLayout = "2006-01-02T15:04:05"
)

const jsonIndent = "    "

// record is the on-disk shape of a task. Field order is the persisted order.
type record struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// FormatTimestamp renders t the way it is persisted.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// parseTimestamp accepts RFC 3339 timestamps and zone-less ISO-8601
// timestamps, which are interpreted in local time.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}

	t, naiveErr := time.ParseInLocation(naiveLayout, s, time.Local)
	if naiveErr == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
}

// Encode serializes c as a pretty-printed JSON array with a trailing newline.
func Encode(c *Collection) ([]byte, error) {
	records := make([]record, 0, len(c.Tasks))

	for _, tsk := range c.Tasks {
		records = append(records, record{
			ID:          tsk.ID,
			Description: tsk.Description,
			Status:      tsk.Status,
			CreatedAt:   FormatTimestamp(tsk.CreatedAt),
			UpdatedAt:   FormatTimestamp(tsk.UpdatedAt),
		})
	}

	data, err := json.MarshalIndent(records, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}

	return append(data, '\n'), nil
}

// Decode parses a task file. Any structural problem (invalid JSON, schema
// violation, duplicate ids, unparseable timestamps) is reported as
// [ErrMalformedStorage].
func Decode(data []byte) (*Collection, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedStorage, err)
	}

	err = validateDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedStorage, err)
	}

	var records []record

	err = json.Unmarshal(data, &records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedStorage, err)
	}

	coll := &Collection{Tasks: make([]Task, 0, len(records))}
	seen := make(map[int]bool, len(records))

	for i, rec := range records {
		if seen[rec.ID] {
			return nil, fmt.Errorf("%w: [%d]: duplicate id %d", ErrMalformedStorage, i, rec.ID)
		}

		seen[rec.ID] = true

		created, err := parseTimestamp(rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: [%d].createdAt: %w", ErrMalformedStorage, i, err)
		}

		updated, err := parseTimestamp(rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: [%d].updatedAt: %w", ErrMalformedStorage, i, err)
		}

		coll.Tasks = append(coll.Tasks, Task{
			ID:          rec.ID,
			Description: rec.Description,
			Status:      rec.Status,
			CreatedAt:   created,
			UpdatedAt:   updated,
		})
	}

	return coll, nil
}

var errTrailingData = errors.New("unexpected data after top-level value")

func decodeDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any

	err := dec.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return doc, nil
}
