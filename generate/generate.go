/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package generate orchestrates a full regeneration run: discovery,
// per-family emission, and the aggregate import manifest.
package generate

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/multierr"

	"github.com/lilingxi01/radix-colors-tailwind/config"
	"github.com/lilingxi01/radix-colors-tailwind/emit"
	"github.com/lilingxi01/radix-colors-tailwind/fs"
	"github.com/lilingxi01/radix-colors-tailwind/internal/logger"
	"github.com/lilingxi01/radix-colors-tailwind/load"
	"github.com/lilingxi01/radix-colors-tailwind/parser"
	"github.com/lilingxi01/radix-colors-tailwind/token"
)

// ManifestName is the aggregate import file written after all families.
const ManifestName = "index.css"

// Run executes one full generation pass. Families are generated
// concurrently; no two tasks share state or touch the same output path.
// The manifest is written strictly after every family file, by listing the
// output directory rather than collecting results from the tasks.
func Run(filesystem fs.FileSystem, cfg *config.Config) error {
	families, err := load.Discover(filesystem, cfg.Source, cfg.Glob)
	if err != nil {
		return err
	}

	if err := filesystem.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for _, fam := range families {
		wg.Add(1)
		go func(fam load.Family) {
			defer wg.Done()
			if err := generateFamily(filesystem, cfg, fam); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
		}(fam)
	}
	wg.Wait()
	if errs != nil {
		return errs
	}

	return writeManifest(filesystem, cfg)
}

// generateFamily scans one family's source files and writes its output
// file. A missing dark companion contributes nothing; any other read
// failure is fatal for the run.
func generateFamily(filesystem fs.FileSystem, cfg *config.Config, fam load.Family) error {
	table := token.NewTable()

	for _, path := range []string{fam.LightPath, fam.DarkPath} {
		if path == "" {
			continue
		}
		data, err := filesystem.ReadFile(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("reading %s: %w", path, err)
		}
		parser.Scan(table, string(data), fam.Stem)
	}

	out := emit.Emit(table, emit.Options{
		Name:      fam.Name,
		AlphaOnly: fam.AlphaOnly,
		Version:   cfg.Version,
	})

	target := filepath.Join(cfg.Output, fam.Name+".css")
	if err := filesystem.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	logger.Debug("generated %s (%d variables)", target, len(table))
	return nil
}

// writeManifest lists the generated family files and writes one aggregate
// import file referencing each in sorted filename order.
func writeManifest(filesystem fs.FileSystem, cfg *config.Config) error {
	entries, err := filesystem.ReadDir(cfg.Output)
	if err != nil {
		return fmt.Errorf("listing output directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == ManifestName || !strings.HasSuffix(name, ".css") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(emit.Header("colors", cfg.Version))
	sb.WriteString("\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "@import %q;\n", cfg.ImportPrefix+name)
	}

	target := filepath.Join(cfg.Output, ManifestName)
	if err := filesystem.WriteFile(target, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
