package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every configuration file found under paths and returns
	// the merged, defaulted and validated site settings.
	Load(ctx context.Context, paths ...string) (*Site, error)
}
