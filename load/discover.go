/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package load discovers Radix Colors source stylesheets and groups them
// into the family units the generator emits from.
package load

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lilingxi01/radix-colors-tailwind/fs"
)

// ErrNoSources indicates the source directory contained no usable
// stylesheet files; there is nothing to generate from.
var ErrNoSources = errors.New("no source stylesheets found")

// darkSuffix marks a dark-mode companion file, e.g. "red-dark.css".
const darkSuffix = "-dark"

// Family is one unit of generation: a base name, the variable stem used
// inside its files, and the light/dark source paths contributing to it.
type Family struct {
	// Name is the output file base name, e.g. "red" or "black-alpha".
	Name string

	// Stem is the variable stem inside source declarations, e.g. "red" or
	// "black" for the black-alpha family.
	Stem string

	// AlphaOnly marks the two achromatic families that carry only alpha
	// steps and scope their light block under a bare :root selector.
	AlphaOnly bool

	// LightPath and DarkPath are source file paths. DarkPath is empty when
	// no dark companion was discovered; a missing companion is an expected
	// condition, not an error.
	LightPath string
	DarkPath  string
}

// Discover lists dir, filters filenames against glob, and groups matching
// stylesheets into families sorted by name. A "<name>-dark.css" file joins
// the "<name>" family as its dark companion. The black-alpha and
// white-alpha files form the two achromatic alpha-only families.
func Discover(filesystem fs.FileSystem, dir, glob string) ([]Family, error) {
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	}

	byName := make(map[string]*Family)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if matched, _ := doublestar.Match(glob, name); !matched {
			continue
		}
		if !strings.HasSuffix(name, ".css") {
			continue
		}

		base := strings.TrimSuffix(name, ".css")
		path := filepath.Join(dir, name)

		famName := base
		dark := false
		if strings.HasSuffix(base, darkSuffix) {
			famName = strings.TrimSuffix(base, darkSuffix)
			dark = true
		}

		fam, ok := byName[famName]
		if !ok {
			fam = &Family{Name: famName, Stem: famName}
			if stem, alphaOnly := achromaticStem(famName); alphaOnly {
				fam.Stem = stem
				fam.AlphaOnly = true
			}
			byName[famName] = fam
		}
		if dark {
			fam.DarkPath = path
		} else {
			fam.LightPath = path
		}
	}

	if len(byName) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSources, dir)
	}

	families := make([]Family, 0, len(byName))
	for _, fam := range byName {
		families = append(families, *fam)
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].Name < families[j].Name
	})
	return families, nil
}

// achromaticStem maps the two-token alpha-only family names to their
// variable stems.
func achromaticStem(famName string) (string, bool) {
	switch famName {
	case "black-alpha":
		return "black", true
	case "white-alpha":
		return "white", true
	}
	return "", false
}
