package keymap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk keymap format:
//
//	name: user
//	bindings:
//	  - keys: alt+down
//	    action: block.moveDown
type fileConfig struct {
	Name     string    `yaml:"name"`
	Bindings []Binding `yaml:"bindings"`
}

// LoadFile loads a keymap from a YAML file.
func LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader loads a keymap from a reader.
func LoadReader(r io.Reader) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "user"
	}

	km := New(name)
	for _, b := range cfg.Bindings {
		if b.Action == "" {
			return nil, fmt.Errorf("binding %q: missing action", b.Keys)
		}
		if err := km.Bind(b.Keys, b.Action); err != nil {
			return nil, err
		}
	}
	return km, nil
}

// Load returns the default keymap overlaid with the user keymap at path.
// An empty path, or a missing file, yields just the defaults.
func Load(path string) (*Keymap, error) {
	km := Default()
	if path == "" {
		return km, nil
	}

	user, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return km, nil
		}
		return nil, err
	}

	km.Merge(user)
	return km, nil
}
