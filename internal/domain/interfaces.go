package domain

import "time"

// Logger defines the logging interface.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Log(msg string)
}

// ConfigLoader defines the interface for loading extension profiles.
type ConfigLoader interface {
	LoadProfile(path string) (*ProfileConfig, error)
	ValidateProfile(data []byte) error
}

// Clock provides the current time, injectable for tests.
type Clock interface {
	Now() time.Time
}
