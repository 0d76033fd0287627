package stats_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/escrowd/pkg/stats"
)

func TestDumpPrometheusDefaults(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, stats.DumpPrometheusDefaults(dir))

	content, err := os.ReadFile(filepath.Join(dir, stats.DumpFile))
	require.NoError(t, err)
	require.Contains(t, string(content), "# dumped at ")
	require.Contains(t, string(content), "# TYPE go_goroutines gauge")

	// Dumps are appended.
	require.NoError(t, stats.DumpPrometheusDefaults(dir))
	content, err = os.ReadFile(filepath.Join(dir, stats.DumpFile))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(content), "# dumped at "))
}

func TestEnableMemoryStatistics(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	done := stats.EnableMemoryStatistics(ctx, 10*time.Millisecond, dir)
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stats routine did not stop")
	}
	require.FileExists(t, filepath.Join(dir, stats.DumpFile))
}
