package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AuditEntry records one command invocation.
type AuditEntry struct {
	Command    string
	TraceID    string
	Parameters map[string]string
	Success    bool
	Error      string
	Results    int
	TotalKg    float64
	Duration   time.Duration
	Timestamp  time.Time
}

// NewAuditEntry starts an entry for command.
func NewAuditEntry(command, traceID string) *AuditEntry {
	return &AuditEntry{
		Command:   command,
		TraceID:   traceID,
		Timestamp: time.Now().UTC(),
	}
}

// WithParameters sets the request parameters.
func (e *AuditEntry) WithParameters(params map[string]string) *AuditEntry {
	e.Parameters = params
	return e
}

// WithError marks the entry failed.
func (e *AuditEntry) WithError(msg string) *AuditEntry {
	e.Success = false
	e.Error = msg
	return e
}

// WithSuccess marks the entry successful with its result count and the
// total emissions it reported.
func (e *AuditEntry) WithSuccess(results int, totalKg float64) *AuditEntry {
	e.Success = true
	e.Results = results
	e.TotalKg = totalKg
	return e
}

// WithDuration sets the duration since start.
func (e *AuditEntry) WithDuration(start time.Time) *AuditEntry {
	e.Duration = time.Since(start)
	return e
}

// AuditLogger persists audit entries.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditEntry)
	Enabled() bool
	Close() error
}

// AuditLoggerConfig enables the audit trail and names its file.
type AuditLoggerConfig struct {
	Enabled bool
	File    string
}

// NewAuditLogger returns a JSON-lines audit logger, or a no-op logger when
// disabled or when the file cannot be opened.
func NewAuditLogger(cfg AuditLoggerConfig) AuditLogger {
	if !cfg.Enabled || cfg.File == "" {
		return noopAuditLogger{}
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
		log.Warn().Err(err).Str("file", cfg.File).Msg("audit log disabled: cannot create directory")
		return noopAuditLogger{}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.File).Msg("audit log disabled: cannot open file")
		return noopAuditLogger{}
	}
	return newWriterAuditLogger(f, f)
}

// NewAuditLoggerTo returns an audit logger writing to w.
func NewAuditLoggerTo(w io.Writer) AuditLogger {
	return newWriterAuditLogger(w, nil)
}

type writerAuditLogger struct {
	mu     sync.Mutex
	logger zerolog.Logger
	closer io.Closer
}

func newWriterAuditLogger(w io.Writer, closer io.Closer) *writerAuditLogger {
	return &writerAuditLogger{
		logger: zerolog.New(w).With().Str("type", "audit").Logger(),
		closer: closer,
	}
}

func (a *writerAuditLogger) Log(_ context.Context, entry AuditEntry) {
	params := zerolog.Dict()
	keys := make([]string, 0, len(entry.Parameters))
	for k := range entry.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		params = params.Str(k, entry.Parameters[k])
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ev := a.logger.Log().
		Time("timestamp", entry.Timestamp).
		Str("command", entry.Command).
		Str("trace_id", entry.TraceID).
		Dict("parameters", params).
		Bool("success", entry.Success).
		Int64("duration_ms", entry.Duration.Milliseconds())
	if entry.Success {
		ev = ev.Int("result_count", entry.Results).Float64("total_kg", entry.TotalKg)
	} else {
		ev = ev.Str("error", entry.Error)
	}
	ev.Send()
}

func (a *writerAuditLogger) Enabled() bool { return true }

func (a *writerAuditLogger) Close() error {
	if a.closer == nil {
		return nil
	}
	if err := a.closer.Close(); err != nil {
		return fmt.Errorf("closing audit log: %w", err)
	}
	a.closer = nil
	return nil
}

type noopAuditLogger struct{}

func (noopAuditLogger) Log(context.Context, AuditEntry) {}
func (noopAuditLogger) Enabled() bool { return false }
func (noopAuditLogger) Close() error { return nil }

type auditLoggerKey struct{}

// ContextWithAuditLogger attaches an audit logger to ctx.
func ContextWithAuditLogger(ctx context.Context, a AuditLogger) context.Context {
	return context.WithValue(ctx, auditLoggerKey{}, a)
}

// AuditLoggerFromContext returns the attached audit logger or a no-op one.
func AuditLoggerFromContext(ctx context.Context) AuditLogger {
	if ctx != nil {
		if a, ok := ctx.Value(auditLoggerKey{}).(AuditLogger); ok && a != nil {
			return a
		}
	}
	return noopAuditLogger{}
}
