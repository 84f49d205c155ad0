/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for radixgen.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lilingxi01/radix-colors-tailwind/cmd/generate"
	"github.com/lilingxi01/radix-colors-tailwind/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "radixgen",
	Short: "Regenerate Radix Colors CSS variables for Tailwind themes",
	Long:  `radixgen converts the Radix Colors palette stylesheets into layered OKLCH CSS custom properties consumable by Tailwind CSS v4 themes.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetEnvPrefix("RADIXGEN")
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print per-family progress")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
