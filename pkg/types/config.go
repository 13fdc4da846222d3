// Package types defines the entity types, configuration, and standard
// errors for the Cadence persistence layer.
// See docs/ARCHITECTURE.md § Data Model.
package types

import "errors"

// Config holds the parameters for opening a Store.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
	Model   string `json:"model" yaml:"model"`
}

// DefaultModel is the chat model used by the assist layer when the
// config does not name one.
const DefaultModel = "gpt-4-turbo-preview"

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data dir must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
