// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package castgen generates the [cast.Caster] implementation for color
// types marked with the `//cast:array` comment directive, after
// verifying from each type's declaration that its memory layout is
// identical to a fixed-size homogeneous array of its channel values.
// Types that fail the checks get diagnostics instead, and no generated
// file is written for a package with any diagnostics.
package castgen

import (
	"fmt"

	"cogentcore.org/core/base/generate"
	"golang.org/x/tools/go/packages"
)

// ParsePackages parses the package(s) located in the configuration
// source directory.
func ParsePackages(cfg *Config) ([]*packages.Package, error) {
	pcfg := &packages.Config{
		Mode:  PackageModes(),
		Tests: false,
	}
	pkgs, err := generate.Load(pcfg, cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("castgen: error parsing package: %w", err)
	}
	return pkgs, err
}

// PackageModes returns the package load modes needed for castgen.
func PackageModes() packages.LoadMode {
	return packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedImports | packages.NeedSyntax
}

// Generate generates caster implementations for the color types in the
// configuration source directory, writing the result to the
// configuration output file. It is a simple entry point to castgen
// that does all of the steps; for more specific functionality, create
// a new [Generator] with [NewGenerator] and call methods on it.
//
//cli:cmd -root
func Generate(cfg *Config) error { //types:add
	pkgs, err := ParsePackages(cfg)
	if err != nil {
		return err
	}
	return GeneratePkgs(cfg, pkgs)
}

// GeneratePkgs generates caster implementations using the given
// configuration object and packages parsed from the configuration
// source directory, writing the result to the config output file.
// If any diagnostics are produced for a package, no output file is
// written for it and the diagnostics are returned as an error, so
// that a type reported as unsound can never end up usable.
func GeneratePkgs(cfg *Config, pkgs []*packages.Package) error {
	g := NewGenerator(cfg, pkgs)
	for _, pkg := range g.Pkgs {
		g.Pkg = pkg
		g.Buf.Reset()
		g.Diags = nil
		err := g.Find()
		if err != nil {
			return fmt.Errorf("castgen: error finding color types for package %q: %w", pkg.Name, err)
		}
		g.PrintHeader()
		has, err := g.Generate()
		if !has {
			continue
		}
		if err != nil {
			return fmt.Errorf("castgen: cannot generate code for package %q: %w", pkg.Name, err)
		}
		err = g.Write()
		if err != nil {
			return fmt.Errorf("castgen: error writing code for package %q: %w", pkg.Name, err)
		}
	}
	return nil
}
