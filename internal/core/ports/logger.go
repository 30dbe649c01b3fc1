package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Warn(msg string)
	Error(err error)
	// SetVerbose toggles debug-level output.
	SetVerbose(verbose bool)
}
