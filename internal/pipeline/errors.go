package pipeline

import "errors"

// Error classes. The cmd maps each class to a distinct exit code.
var (
	// ErrConfig marks an unusable pipeline configuration.
	ErrConfig = errors.New("invalid pipeline configuration")

	// ErrChannel marks a failure to create the byte channel.
	ErrChannel = errors.New("byte channel creation failed")

	// ErrChannelWrite marks a failed write to the byte channel.
	ErrChannelWrite = errors.New("byte channel write failed")

	// ErrChannelRead marks a failed or empty read from the byte channel.
	ErrChannelRead = errors.New("byte channel read failed")
)
