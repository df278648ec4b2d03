package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogger_WritesEntries(t *testing.T) {
	var buf bytes.Buffer
	a := NewAuditLoggerTo(&buf)
	require.True(t, a.Enabled())

	start := time.Now().Add(-50 * time.Millisecond)
	a.Log(context.Background(), *NewAuditEntry("compare", "trace-1").
		WithParameters(map[string]string{"vehicles": "a,b", "state": "Delhi"}).
		WithSuccess(2, 18000).
		WithDuration(start))
	a.Log(context.Background(), *NewAuditEntry("calculate", "trace-2").WithError("vehicle not found"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var ok map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &ok))
	assert.Equal(t, "audit", ok["type"])
	assert.Equal(t, "compare", ok["command"])
	assert.Equal(t, "trace-1", ok["trace_id"])
	assert.Equal(t, true, ok["success"])
	assert.InDelta(t, 2.0, ok["result_count"], 0)
	assert.InDelta(t, 18000.0, ok["total_kg"], 0)
	assert.Equal(t, map[string]any{"state": "Delhi", "vehicles": "a,b"}, ok["parameters"])
	assert.GreaterOrEqual(t, ok["duration_ms"], 50.0)

	var failed map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failed))
	assert.Equal(t, false, failed["success"])
	assert.Equal(t, "vehicle not found", failed["error"])
}

func TestNewAuditLogger(t *testing.T) {
	assert.False(t, NewAuditLogger(AuditLoggerConfig{}).Enabled())
	assert.False(t, NewAuditLogger(AuditLoggerConfig{Enabled: true}).Enabled())

	path := filepath.Join(t.TempDir(), "logs", "audit.log")
	a := NewAuditLogger(AuditLoggerConfig{Enabled: true, File: path})
	require.True(t, a.Enabled())
	a.Log(context.Background(), *NewAuditEntry("audit", "t").WithSuccess(1, 0))
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"command":"audit"`)
}

func TestAuditLoggerFromContext(t *testing.T) {
	assert.False(t, AuditLoggerFromContext(context.Background()).Enabled())

	a := NewAuditLoggerTo(&bytes.Buffer{})
	ctx := ContextWithAuditLogger(context.Background(), a)
	assert.Same(t, a, AuditLoggerFromContext(ctx))
}
