package fs

import (
	"os"
	"sync"
)

// Recorder wraps another [FS] and records every write that reaches it.
//
// Tests use it to prove that an operation did not touch the backing file,
// and to simulate write failures via [Recorder.FailWrites].
type Recorder struct {
	inner FS

	mu        sync.Mutex
	writes    []string
	reads     int
	failWrite error
}

// NewRecorder returns a [Recorder] delegating to inner.
func NewRecorder(inner FS) *Recorder {
	return &Recorder{inner: inner}
}

// FailWrites makes every subsequent WriteFileAtomic return err without
// touching the inner filesystem. Pass nil to stop failing.
func (r *Recorder) FailWrites(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failWrite = err
}

// Writes returns the paths written so far, in order.
func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.writes...)
}

// Reads returns how many ReadFile calls were made.
func (r *Recorder) Reads() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.reads
}

func (r *Recorder) ReadFile(path string) ([]byte, error) {
	r.mu.Lock()
	r.reads++
	r.mu.Unlock()

	return r.inner.ReadFile(path)
}

func (r *Recorder) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	r.mu.Lock()
	failErr := r.failWrite
	r.mu.Unlock()

	if failErr != nil {
		return &os.PathError{Op: "write", Path: path, Err: failErr}
	}

	err := r.inner.WriteFileAtomic(path, data, perm)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.writes = append(r.writes, path)
	r.mu.Unlock()

	return nil
}

func (r *Recorder) MkdirAll(path string, perm os.FileMode) error {
	return r.inner.MkdirAll(path, perm)
}

func (r *Recorder) Exists(path string) (bool, error) {
	return r.inner.Exists(path)
}

var _ FS = (*Recorder)(nil)
