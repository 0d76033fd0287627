package stats

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
)

const (
	BYTE = 1 << (10 * iota)
	KILOBYTE
	MEGABYTE
	GIGABYTE
	TERABYTE

	// DumpFile is the name of the file where metrics are dumped on exit.
	DumpFile = "stats"
)

// EnableMemoryStatistics starts a goroutine that logs memory usage and the
// number of goroutines every interval. Once ctx is done the metrics of the
// default prometheus registry are appended to the stats file in dumpDir and
// the returned channel is closed.
func EnableMemoryStatistics(
	ctx context.Context, interval time.Duration, dumpDir string,
) <-chan struct{} {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				PrintMemoryStatistics()
				PrintNumOfRoutines()
			case <-ctx.Done():
				if err := DumpPrometheusDefaults(dumpDir); err != nil {
					log.WithError(err).Warn("stats: failed to dump metrics")
				}
				return
			}
		}
	}()

	return done
}

func toGigabytes(bytes uint64) float64 {
	return float64(bytes) / GIGABYTE
}

// PrintMemoryStatistics logs the memory statistics of the go runtime.
func PrintMemoryStatistics() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	log.WithFields(log.Fields{
		"total_alloc_gb": fmt.Sprintf("%.3f", toGigabytes(memStats.TotalAlloc)),
		"heap_alloc_gb":  fmt.Sprintf("%.3f", toGigabytes(memStats.HeapAlloc)),
		"mallocs":        memStats.Mallocs,
		"frees":          memStats.Frees,
		"num_gc":         memStats.NumGC,
	}).Info("stats: memory")
}

// PrintNumOfRoutines logs the number of goroutines currently running.
func PrintNumOfRoutines() {
	log.WithField("goroutines", runtime.NumGoroutine()).Info("stats: routines")
}

// DumpPrometheusDefaults appends the metrics of the default registry, in the
// prometheus text format, to the stats file in dir. Every dump starts with a
// comment line carrying the dump time.
func DumpPrometheusDefaults(dir string) error {
	metricFamilies, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(
		filepath.Join(dir, DumpFile),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := fmt.Fprintf(
		writer, "# dumped at %s\n", time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}
	for _, mf := range metricFamilies {
		if _, err := expfmt.MetricFamilyToText(writer, mf); err != nil {
			return err
		}
	}
	return writer.Flush()
}
