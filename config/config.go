/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the generator.
package config

import "github.com/lilingxi01/radix-colors-tailwind/internal/version"

// Config represents the generator configuration.
type Config struct {
	// Source is the directory holding the Radix Colors source stylesheets.
	Source string `yaml:"source" json:"source"`

	// Output is the directory the generated files are written into.
	Output string `yaml:"output" json:"output"`

	// Glob filters source filenames, e.g. "*.css" or "red*.css" to
	// regenerate a subset of families.
	Glob string `yaml:"glob" json:"glob"`

	// ImportPrefix is prepended to each filename in the manifest's
	// @import statements.
	ImportPrefix string `yaml:"importPrefix" json:"importPrefix"`

	// Version overrides the build version embedded in generated headers.
	Version string `yaml:"version" json:"version"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Source:       "node_modules/@radix-ui/colors",
		Output:       "colors",
		Glob:         "*.css",
		ImportPrefix: "./",
		Version:      version.Get(),
	}
}

// ApplyDefaults fills any unset fields from Default.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Source == "" {
		c.Source = d.Source
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Glob == "" {
		c.Glob = d.Glob
	}
	if c.ImportPrefix == "" {
		c.ImportPrefix = d.ImportPrefix
	}
	if c.Version == "" {
		c.Version = d.Version
	}
}
