// Package config provides 12-factor configuration for the file pipeline.
//
// Configuration is loaded from environment variables with sensible
// defaults, or from a TOML file when one is supplied on the command line.
//
// Configuration Sections:
//   - Pipeline: record size cap and the header-terminator marker
//   - Logging: log level and output format
//   - Console: interactive console behavior
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		// reject the environment; do not run on guesses
//	}
//	fmt.Printf("record cap: %d bytes\n", cfg.Pipeline.LineCap)
//
// Environment Variables:
//   - LINE_CAP, HEADER_MARKER
//   - LOG_LEVEL, LOG_DEV
//   - CONSOLE_COLOR
package config
