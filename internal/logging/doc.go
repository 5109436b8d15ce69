// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// All output goes to stderr: stdout is reserved for the interactive
// console surface (banners, prompts, transfer status).
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Pipeline starting", zap.String("input", path))
//	logger.Error("Channel read failed", zap.Error(err))
package logging
