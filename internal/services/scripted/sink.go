package scripted

import "log"

// DiagnosticSink receives non-fatal anomaly reports from the scripted
// layer: bad static ids, misuse of helpers, and similar. Reports never
// alter control flow; the offending call still returns its normal
// negative result.
type DiagnosticSink interface {
	Warnf(format string, args ...any)
}

// logSink is the default sink, writing to the standard logger.
type logSink struct{}

// NewLogSink creates a DiagnosticSink backed by the standard logger.
func NewLogSink() DiagnosticSink {
	return logSink{}
}

// Warnf implements DiagnosticSink.Warnf.
func (logSink) Warnf(format string, args ...any) {
	log.Printf("[script] "+format, args...)
}
