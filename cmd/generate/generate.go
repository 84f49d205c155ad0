/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for radixgen.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lilingxi01/radix-colors-tailwind/config"
	"github.com/lilingxi01/radix-colors-tailwind/fs"
	genlib "github.com/lilingxi01/radix-colors-tailwind/generate"
	"github.com/lilingxi01/radix-colors-tailwind/internal/logger"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the color variable files and import manifest",
	Long: `Regenerate the per-family CSS variable files and the aggregate import
manifest from the Radix Colors source stylesheets.

Every run is a full rebuild: all families are regenerated from source and
the manifest is rewritten from the resulting output directory.

Examples:
  # Generate from node_modules into ./colors
  radixgen generate

  # Explicit source and output directories
  radixgen generate --source vendor/radix-colors --output dist/colors

  # Regenerate a subset of families
  radixgen generate --glob "red*.css"`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("source", "s", "", "Source stylesheet directory")
	Cmd.Flags().StringP("output", "o", "", "Output directory")
	Cmd.Flags().StringP("glob", "g", "", "Source filename filter")
	Cmd.Flags().String("import-prefix", "", "Path prefix for manifest @import statements")

	_ = viper.BindPFlag("source", Cmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("output", Cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("glob", Cmd.Flags().Lookup("glob"))
	_ = viper.BindPFlag("import-prefix", Cmd.Flags().Lookup("import-prefix"))
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	logger.SetVerbose(viper.GetBool("verbose"))

	// Config file first, then env and flags on top via viper.
	cfg := config.LoadOrDefault(filesystem, ".")
	if v := viper.GetString("source"); v != "" {
		cfg.Source = v
	}
	if v := viper.GetString("output"); v != "" {
		cfg.Output = v
	}
	if v := viper.GetString("glob"); v != "" {
		cfg.Glob = v
	}
	if v := viper.GetString("import-prefix"); v != "" {
		cfg.ImportPrefix = v
	}

	if err := genlib.Run(filesystem, cfg); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	logger.Info("generated color files in %s", cfg.Output)
	return nil
}
