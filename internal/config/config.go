// Package config loads the driver's optional YAML configuration file,
// mirroring the teacher's own funxy.yaml loader in shape: a plain struct
// with yaml tags, unmarshaled with gopkg.in/yaml.v3, absent file treated
// as a zero-value config rather than an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional nyxc.yaml sitting next to a source file.
type Config struct {
	// Dump enables a disassembly dump of the compiled program after a
	// successful compile.
	Dump bool `yaml:"dump,omitempty"`

	// Trace sets the driver's log level to debug. The compiler itself
	// emits no per-statement trace events.
	Trace bool `yaml:"trace,omitempty"`

	// CachePath is the directory the compile cache is rooted at. Empty
	// disables the cache.
	CachePath string `yaml:"cache_path,omitempty"`
}

// Load reads and parses the YAML file at path. A missing file returns a
// zero-value Config and no error — config is entirely optional.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
