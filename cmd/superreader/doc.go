// Command superreader copies the body of a text file past its header
// block to an output file, using a three-stage concurrent pipeline
// synchronized by a circulating token.
//
// Usage:
//
//	superreader -in notes.txt -out body.txt
//	superreader -glob 'logs/**/*.txt'
//	superreader            # prompts for filenames
//
// Configuration comes from the environment (LINE_CAP, HEADER_MARKER,
// LOG_LEVEL, ...) or a TOML file passed with -config.
package main
