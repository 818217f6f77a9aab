package task

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/calvinalkan/task-tracker/internal/fs"

	"go.uber.org/zap"
)

// DefaultFileName is the backing file used when none is configured.
const DefaultFileName = "tasks.json"

const (
	dirPerms  = 0o750
	filePerms = 0o644
)

// Store persists a [Collection] to a single file.
//
// Every operation loads the whole file, and every successful mutation
// rewrites it in full. Nothing is cached between calls. There is no locking:
// two processes racing on the same file lose updates (last writer wins).
type Store struct {
	path string
	fs   fs.FS
	log  *zap.Logger
	now  func() time.Time
}

// Option configures a [Store].
type Option func(*Store)

// WithFS sets the filesystem. Defaults to [fs.NewReal].
func WithFS(fsys fs.FS) Option {
	return func(s *Store) { s.fs = fsys }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock sets the time source. Defaults to [time.Now].
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a store backed by the file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		fs:   fs.NewReal(),
		log:  zap.NewNop(),
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With(zap.String("file", path))

	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Init creates the backing file with an empty collection if it is missing.
// Safe to call on every startup.
func (s *Store) Init() error {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	if exists {
		return nil
	}

	err = s.fs.MkdirAll(filepath.Dir(s.path), dirPerms)
	if err != nil {
		return fmt.Errorf("create task file directory: %w", err)
	}

	err = s.Save(&Collection{})
	if err != nil {
		return err
	}

	s.log.Info("initialized task file")

	return nil
}

// Load reads and parses the whole backing file.
func (s *Store) Load() (*Collection, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	coll, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	s.log.Debug("loaded tasks", zap.Int("count", coll.Len()))

	return coll, nil
}

// Save rewrites the backing file with c.
func (s *Store) Save(c *Collection) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}

	err = s.fs.WriteFileAtomic(s.path, data, filePerms)
	if err != nil {
		return fmt.Errorf("write task file: %w", err)
	}

	s.log.Debug("saved tasks", zap.Int("count", c.Len()), zap.Int("bytes", len(data)))

	return nil
}

// Add appends a new todo task and returns its id.
func (s *Store) Add(description string) (int, error) {
	if strings.TrimSpace(description) == "" {
		return 0, ErrDescriptionEmpty
	}

	coll, err := s.Load()
	if err != nil {
		return 0, err
	}

	tsk := coll.Append(description, s.timestamp())

	err = s.Save(coll)
	if err != nil {
		return 0, err
	}

	s.log.Info("added task", zap.Int("id", tsk.ID))

	return tsk.ID, nil
}

// Update replaces the description of task id.
// Returns [ErrTaskNotFound] without writing if no such task exists.
func (s *Store) Update(id int, description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionEmpty
	}

	return s.mutate(id, "updated task", func(t *Task) {
		t.Description = description
	})
}

// SetStatus sets the status of task id.
// Returns [ErrTaskNotFound] without writing if no such task exists.
func (s *Store) SetStatus(id int, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, uint8(status))
	}

	return s.mutate(id, "set task status", func(t *Task) {
		t.Status = status
	})
}

// Delete removes task id.
// Returns [ErrTaskNotFound] without writing if no such task exists.
func (s *Store) Delete(id int) error {
	coll, err := s.Load()
	if err != nil {
		return err
	}

	if !coll.Remove(id) {
		s.log.Debug("task not found", zap.Int("id", id))

		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	err = s.Save(coll)
	if err != nil {
		return err
	}

	s.log.Info("deleted task", zap.Int("id", id))

	return nil
}

// ListOptions filters [Store.List]. The zero value lists everything.
type ListOptions struct {
	Status Status
}

// List returns tasks in collection order. Read-only.
func (s *Store) List(opts ListOptions) ([]Task, error) {
	if opts.Status != 0 && !opts.Status.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, uint8(opts.Status))
	}

	coll, err := s.Load()
	if err != nil {
		return nil, err
	}

	return coll.Filter(opts.Status), nil
}

func (s *Store) mutate(id int, msg string, apply func(*Task)) error {
	coll, err := s.Load()
	if err != nil {
		return err
	}

	tsk := coll.Get(id)
	if tsk == nil {
		s.log.Debug("task not found", zap.Int("id", id))

		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	apply(tsk)
	tsk.touch(s.timestamp())

	err = s.Save(coll)
	if err != nil {
		return err
	}

	s.log.Info(msg, zap.Int("id", id), zap.Stringer("status", tsk.Status))

	return nil
}

// timestamp returns the current time at persisted precision, without a
// monotonic reading, so in-memory and reloaded tasks compare equal.
func (s *Store) timestamp() time.Time {
	return s.now().Truncate(timestampPrecision)
}
