package boxchart

import (
	"errors"
	"fmt"
)

// ErrIncomplete indicates that an accessor required for the chart's mode
// is unset. Layout and Render treat this as "nothing to draw"; Validate
// reports it.
var ErrIncomplete = errors.New("incomplete accessors")

// ErrUnknownFormat indicates an unknown label format name.
var ErrUnknownFormat = errors.New("unknown label format")

// ErrNoRecords indicates a data source without any record.
var ErrNoRecords = errors.New("no records")

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Path  string // file the configuration was read from, may be empty
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config field %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: field %s: %v", e.Path, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
