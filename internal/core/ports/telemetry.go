package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of the phases of a run.
type Telemetry interface {
	// Record starts recording a new unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and ends the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Log attaches a progress message to the vertex.
	Log(msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
