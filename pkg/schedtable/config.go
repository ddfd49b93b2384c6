package schedtable

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadOptions reads options from a TOML (.toml) or YAML (.yaml, .yml) file
// on top of DefaultOptions.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("unable to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &opts); err != nil {
			return opts, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	default:
		return opts, fmt.Errorf("config %s: %w: %q", path, ErrUnsupportedFormat, ext)
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks option values that can come from user input.
func (o Options) Validate() error {
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	switch o.OnConflict {
	case "", ConflictFail, ConflictSkip:
	default:
		return fmt.Errorf("invalid conflict policy %q (must be fail or skip)", o.OnConflict)
	}
	for _, d := range o.Days {
		if d.Date == "" {
			return fmt.Errorf("day selection without date")
		}
	}
	return nil
}
