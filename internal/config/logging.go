package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/carbonwise/internal/logging"
)

// ToLoggingConfig converts the logging section to a logging.Config. A set
// File selects file output; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global logging section. Callers
// apply flag overrides such as --debug to the copy.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

func (lc *LoggingConfig) validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(lc.Level)); err != nil || lc.Level == "" {
		return fmt.Errorf("logging.level %q", lc.Level)
	}
	switch strings.ToLower(lc.Format) {
	case logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("logging.format %q", lc.Format)
	}
}

// AuditLogFileName is the audit trail file under the config directory's
// logs folder when logging.audit.file is unset.
const AuditLogFileName = "audit.log"

// ToAuditLoggerConfig converts the audit section, filling in the default
// file location.
func (lc *LoggingConfig) ToAuditLoggerConfig() logging.AuditLoggerConfig {
	file := lc.Audit.File
	if lc.Audit.Enabled && file == "" {
		if dir, err := GetConfigDir(); err == nil {
			file = filepath.Join(dir, "logs", AuditLogFileName)
		}
	}
	return logging.AuditLoggerConfig{Enabled: lc.Audit.Enabled, File: file}
}
