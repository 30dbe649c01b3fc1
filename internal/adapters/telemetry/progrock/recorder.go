// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/forge/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu    sync.Mutex
	runs  map[string]int
	close sync.Once
}

// New creates a new Recorder with a default tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:    w,
		rec:  progrock.NewRecorder(w),
		runs: make(map[string]int),
	}
}

// Record starts recording a new vertex named after the phase.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(r.digestFor(name), name)
	return ctx, &Vertex{vertex: v}
}

// digestFor derives a vertex digest from name that stays unique when the
// same name is recorded more than once in a session.
func (r *Recorder) digestFor(name string) digest.Digest {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[name]++
	return digest.FromString(fmt.Sprintf("%s#%d", name, r.runs[name]))
}

// Close flushes and closes the recording session. It is safe to call more than once.
func (r *Recorder) Close() error {
	var err error
	r.close.Do(func() {
		// If the writer implements Close, call it.
		if c, ok := r.w.(interface{ Close() error }); ok {
			err = c.Close()
		}
	})
	return err
}
