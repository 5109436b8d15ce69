// Package fileio handles the file edges of the pipeline: opening input,
// creating output, transparent gzip for .gz paths, content-type sniffing,
// and glob expansion for batch runs.
//
// The pipeline core only sees io.Reader/io.Writer; everything
// path-shaped lives here.
package fileio
