// Package viewer serves browsable trees for a directory of archive
// containers over HTTP.
package viewer

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/btidor/ziptree/internal"
	"github.com/btidor/ziptree/tree"
)

type Config struct {
	// Address to listen on, e.g. ":5050"
	Listen string
	// Public base URL of the UI, used to build leaf navigation URLs
	Origin string
	// View route embedded in leaf URLs; must be a recognized route token
	Route string
	// Directory holding the container files (*.zip, *.tar.xz)
	Containers string
	// Where to keep zstd-compressed table caches; empty disables caching
	CacheDir string
	// Optional doublestar globs applied to every listing
	Include []string
	Exclude []string
	// Visible-node budget for the initial expansion
	MaxExpanded int
	// Env var holding host:key:secret:bucket for container sync, optional
	BucketVar string
}

func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var config Config
	if _, err := toml.Decode(string(raw), &config); err != nil {
		return Config{}, err
	}

	if config.Origin == "" {
		return Config{}, fmt.Errorf("config: origin is required")
	}
	internal.URLMustParse(config.Origin)
	if config.Containers == "" {
		return Config{}, fmt.Errorf("config: containers directory is required")
	}
	if config.Listen == "" {
		config.Listen = ":5050"
	}
	if config.Route == "" {
		config.Route = "calltree"
	}
	if err := tree.ValidateRoute(config.Route); err != nil {
		return Config{}, err
	}
	if config.MaxExpanded == 0 {
		config.MaxExpanded = tree.DefaultMaxExpanded
	}
	return config, nil
}
