/*
Package monitoring provides metrics collection for the pipeline.

# Overview

This package implements Prometheus-based counters for the three pipeline
stages plus per-run durations. Each Metrics value owns its registry, so
batch runs and tests never collide on the default global registry.

# Usage

	metrics := monitoring.NewMetrics()
	metrics.RunStarted()

	// ... run the pipeline ...
	metrics.IncProduced()

	snap := metrics.GetSnapshot()
	logger.Info("transfer complete",
		zap.Int64("written", snap.RecordsWritten))
*/
package monitoring
