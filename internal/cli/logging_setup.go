package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/config"
	"github.com/rshade/carbonwise/internal/logging"
)

// commandLoggingConfig returns the logging settings for this invocation.
// --debug forces debug-level console output on stderr.
func commandLoggingConfig(cmd *cobra.Command) config.LoggingConfig {
	cfg := config.GetLoggingConfig()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Level = "debug"
		cfg.Format = logging.FormatConsole
		cfg.File = ""
	}
	return cfg
}

// setupLogging builds the command logger, attaches it with a trace ID and
// the audit logger to the command context, and returns the open log
// destination for cleanupLogging.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	cfg := commandLoggingConfig(cmd)
	stderr := cmd.ErrOrStderr()

	if cfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(stderr, "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(cfg.ToLoggingConfig())
	switch {
	case result.UsingFile:
		logging.PrintLogPathMessage(stderr, result.FilePath)
	case result.FallbackUsed:
		logging.PrintFallbackWarning(stderr, result.FallbackReason)
	}

	ctx := withCommandLogger(cmd.Context(), result)
	ctx = logging.ContextWithAuditLogger(ctx, logging.NewAuditLogger(cfg.ToAuditLoggerConfig()))
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.CommandPath()).Msg("command started")
	return result
}

// withCommandLogger sets the package logger to a trace-tagged "cli"
// component logger and stores it in ctx.
func withCommandLogger(ctx context.Context, result logging.LogPathResult) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	logger = logging.WithTraceID(logging.ComponentLogger(result.Logger, "cli"), traceID)
	return logger.WithContext(logging.ContextWithTraceID(ctx, traceID))
}

// cleanupLogging flushes the audit trail and closes the log file.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	if err := logging.AuditLoggerFromContext(cmd.Context()).Close(); err != nil {
		return fmt.Errorf("closing audit log: %w", err)
	}
	if logResult == nil {
		return nil
	}
	return logResult.Close()
}
