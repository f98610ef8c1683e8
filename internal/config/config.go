// Package config loads the optional sixshift config file.
//
// The file is YAML, validated against an embedded CUE schema before
// any field is used. A missing file is not an error; every field has a
// default. Unknown fields and out-of-domain values are errors, so a
// typo in the config surfaces immediately instead of being ignored.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Config holds user preferences for the CLI and TUI.
type Config struct {
	// Format is the default output format: "text" or "json".
	Format string `yaml:"format"`

	// Copy controls whether results are copied to the clipboard by
	// default (equivalent to passing --copy on every invocation).
	Copy bool `yaml:"copy"`

	// Accent is the TUI accent color: an ANSI 256 index or "#rrggbb".
	Accent string `yaml:"accent"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Format: "text",
		Copy:   false,
		Accent: "63",
	}
}

// DefaultPath returns the conventional config file location
// ($XDG_CONFIG_HOME/sixshift/config.yaml or the OS equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "sixshift", "config.yaml"), nil
}

// Load reads and validates the config file at path. A nonexistent file
// yields Default() with no error; any other read, parse, or schema
// failure is reported.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := validate(path, data); err != nil {
		return cfg, err
	}

	// The schema has already accepted the document; unmarshalling fills
	// in only the fields that are present.
	var dto struct {
		Format *string `yaml:"format"`
		Copy   *bool   `yaml:"copy"`
		Accent *string `yaml:"accent"`
	}
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if dto.Format != nil {
		cfg.Format = *dto.Format
	}
	if dto.Copy != nil {
		cfg.Copy = *dto.Copy
	}
	if dto.Accent != nil {
		cfg.Accent = *dto.Accent
	}
	return cfg, nil
}

// validate unifies the YAML document with the closed #Config schema.
func validate(path string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("looking up config schema: %w", err)
	}

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("building config %s: %w", path, err)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("invalid config %s: %s", path, cueerrors.Details(err, nil))
	}
	return nil
}
