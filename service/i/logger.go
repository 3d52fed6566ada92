package i

// Logger writes leveled log messages for a subsystem.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
