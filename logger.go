package cacheagent

// Fields carries structured context for one log line.
type Fields map[string]any

// Logger is the agent's leveled logging surface. Adapters for zap, logrus
// and slog live under log/; anything else needs four methods. A nil
// Options.Logger disables logging entirely.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
