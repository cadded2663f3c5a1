// Package config loads run settings for convertor-generator.
//
// Settings are layered, later layers winning:
//
//	Default() < YAML file < .env / environment < command-line flags
//
// The per-workbook config sheet is applied on top by the generator and only
// affects the generated names.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"convertor-generator/internal/mapping"
)

// DefaultFile is read when no config file is given and it exists.
const DefaultFile = "convertor-generator.yaml"

// DefaultOutDir is the output directory used when none is configured.
const DefaultOutDir = "./out"

// Environment variables read by LoadEnv.
const (
	EnvOutDir      = "CONVGEN_OUTDIR"
	EnvSourceType  = "CONVGEN_SOURCE_TYPE"
	EnvDestType    = "CONVGEN_DEST_TYPE"
	EnvFunction    = "CONVGEN_FUNCTION"
	EnvParam       = "CONVGEN_PARAM"
	EnvPlaceholder = "CONVGEN_PLACEHOLDER"
	EnvStrict      = "CONVGEN_STRICT"
)

// Settings holds everything a run needs besides the input list.
type Settings struct {
	OutDir string `yaml:"outdir"`
	Strict bool   `yaml:"strict"`
	Quiet  bool   `yaml:"quiet"`
	Names  Names  `yaml:"names"`
}

// Names are the generator defaults a workbook config sheet may override.
type Names struct {
	SourceTypeName string `yaml:"source_type_name"`
	DestTypeName   string `yaml:"dest_type_name"`
	FunctionName   string `yaml:"function_name"`
	ParamName      string `yaml:"param_name"`
	Placeholder    string `yaml:"placeholder"`
}

// Default returns the built-in settings.
func Default() Settings {
	c := mapping.DefaultConfig()

	return Settings{
		OutDir: DefaultOutDir,
		Names: Names{
			SourceTypeName: c.SourceTypeName,
			DestTypeName:   c.DestTypeName,
			FunctionName:   c.FunctionName,
			ParamName:      c.ParamName,
			Placeholder:    c.Placeholder,
		},
	}
}

// Mapping returns the names as the base config for a workbook.
func (s Settings) Mapping() mapping.Config {
	return mapping.Config{
		SourceTypeName: s.Names.SourceTypeName,
		DestTypeName:   s.Names.DestTypeName,
		FunctionName:   s.Names.FunctionName,
		ParamName:      s.Names.ParamName,
		Placeholder:    s.Names.Placeholder,
	}
}

// Load builds settings from defaults, the YAML file at path and the
// environment. An empty path reads DefaultFile when it exists.
func Load(path string) (Settings, error) {
	s := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		if err := s.LoadFile(path); err != nil {
			return s, err
		}
	}

	if err := s.LoadEnv(); err != nil {
		return s, err
	}

	return s, nil
}

// LoadFile overlays the YAML file at path. Keys missing from the file keep
// their current values.
func (s *Settings) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return s.Parse(data)
}

// Parse overlays YAML data.
func (s *Settings) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return nil
}

// Marshal serializes the settings to YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// LoadEnv reads .env files (missing files are fine) and overlays the
// process environment.
func (s *Settings) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	return s.ApplyEnv(os.LookupEnv)
}

// ApplyEnv overlays variables returned by lookup.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvOutDir, &s.OutDir},
		{EnvSourceType, &s.Names.SourceTypeName},
		{EnvDestType, &s.Names.DestTypeName},
		{EnvFunction, &s.Names.FunctionName},
		{EnvParam, &s.Names.ParamName},
		{EnvPlaceholder, &s.Names.Placeholder},
	}

	for _, e := range strs {
		if v, ok := lookup(e.key); ok && v != "" {
			*e.dst = v
		}
	}

	if v, ok := lookup(EnvStrict); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrict, err)
		}

		s.Strict = b
	}

	return nil
}
