// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package castgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"log"
	"reflect"
	"strconv"
	"text/template"

	"cogentcore.org/core/base/generate"
	"cogentcore.org/core/cli"
	"golang.org/x/tools/go/packages"
)

// Generator holds the state of the generator.
// It is primarily used to buffer the output.
type Generator struct {
	Config *Config             // The configuration information
	Buf    bytes.Buffer        // The accumulated output.
	Pkgs   []*packages.Package // The packages we are scanning.
	Pkg    *packages.Package   // The package we are currently on.
	Types  []*Type             // The color types to generate for
	Diags  []*Diagnostic       // The problems found in the current package
}

// NewGenerator returns a new generator with the
// given configuration information and parsed packages.
func NewGenerator(config *Config, pkgs []*packages.Package) *Generator {
	return &Generator{Config: config, Pkgs: pkgs}
}

// Printf prints the formatted string to the
// accumulated output in [Generator.Buf].
func (g *Generator) Printf(format string, args ...any) {
	fmt.Fprintf(&g.Buf, format, args...)
}

// PrintHeader prints the header and package clause
// to the accumulated output.
func (g *Generator) PrintHeader() {
	// we need manual imports of unsafe and cast because they are not
	// referenced by anything already in the package, but goimports
	// handles everything else, including pruning cast in internal mode
	generate.PrintHeader(&g.Buf, g.Pkg.Name, "unsafe", "cogentcore.org/colorcast/cast")
}

// Find goes through all of the types in the package, finds those
// marked with the `//cast:array` directive, and adds them to
// [Generator.Types].
func (g *Generator) Find() error {
	g.Types = []*Type{}
	err := generate.Inspect(g.Pkg, g.Inspect)
	if err != nil {
		return fmt.Errorf("error while inspecting: %w", err)
	}
	return nil
}

// Inspect looks at the given AST node and adds it to [Generator.Types]
// if it is marked with the `//cast:array` comment directive. It returns
// whether the AST inspector should continue, and an error if there is
// one. It should only be called in [ast.Inspect].
func (g *Generator) Inspect(n ast.Node) (bool, error) {
	gd, ok := n.(*ast.GenDecl)
	if !ok {
		return true, nil
	}
	if gd.Doc == nil {
		return true, nil
	}
	hasDir := false
	cfg := &Config{}
	*cfg = *g.Config
	for _, c := range gd.Doc.List {
		dir, err := cli.ParseDirective(c.Text)
		if err != nil {
			return false, fmt.Errorf("error parsing comment directive from %q: %w", c.Text, err)
		}
		if dir == nil || dir.Tool != "cast" {
			continue
		}
		if dir.Directive != "array" {
			return false, fmt.Errorf("unrecognized cast directive %q (from %q)", dir.Directive, c.Text)
		}
		hasDir = true
		leftovers, err := cli.SetFromArgs(cfg, dir.Args, cli.ErrNotFound)
		if err != nil {
			return false, fmt.Errorf("error setting config info from comment directive args: %w (from directive %q)", err, c.Text)
		}
		if len(leftovers) > 0 {
			return false, fmt.Errorf("expected 0 positional arguments but got %d (list: %v) (from directive %q)", len(leftovers), leftovers, c.Text)
		}
	}
	if !hasDir {
		return true, nil
	}
	for _, spec := range gd.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			return true, nil
		}
		g.Types = append(g.Types, &Type{
			Name:   ts.Name.Name,
			AST:    ts,
			Config: cfg,
		})
	}
	return true, nil
}

// Generate produces the caster implementations for the types stored in
// [Generator.Types] and stores them in [Generator.Buf]. It returns
// whether there were any types to generate for, and all of the
// diagnostics produced for the package joined into one error. Per
// [Generator.GenerateType], an implementation and diagnostics can
// coexist in the buffer for one run, but [GeneratePkgs] never writes
// the buffer when the error is non-nil.
func (g *Generator) Generate() (bool, error) {
	if len(g.Types) == 0 {
		return false, nil
	}
	for _, typ := range g.Types {
		g.GenerateType(typ)
	}
	if len(g.Diags) > 0 {
		errs := make([]error, len(g.Diags))
		for i, d := range g.Diags {
			errs[i] = d
		}
		return true, errors.Join(errs...)
	}
	return true, nil
}

// GenerateType collects the channel fields of the given type, checks
// them, and writes the caster implementation for the type to
// [Generator.Buf] if a channel type could be established. Every
// problem found is added to [Generator.Diags]; channel checking does
// not stop at the first mismatched field, so one run reports all of
// the mismatches together.
func (g *Generator) GenerateType(typ *Type) {
	if typ.AST.TypeParams != nil {
		g.Diag(UnsupportedShape, typ.Name, "", "Caster cannot be derived for generic types")
		return
	}
	st, ok := typ.AST.Type.(*ast.StructType)
	if !ok {
		if _, ok := typ.AST.Type.(*ast.InterfaceType); ok {
			g.Diag(UnsupportedShape, typ.Name, "", "Caster cannot be derived for interface types, because their storage includes a type descriptor")
		} else {
			g.Diag(UnsupportedShape, typ.Name, "", "Caster can only be derived for struct types")
		}
		return
	}
	fixed := false
	for _, field := range st.Fields.List {
		ftyp := types.ExprString(field.Type)
		if ftyp == "structs.HostLayout" {
			fixed = true
			continue
		}
		tag := fieldTag(field)
		switch sub := tag.Get("cast"); sub {
		case "-":
			continue
		case "":
		default:
			ftyp = sub
		}
		if len(field.Names) == 0 { // embedded
			typ.Fields = append(typ.Fields, Field{Name: ftyp, Type: ftyp})
			continue
		}
		for _, name := range field.Names {
			typ.Fields = append(typ.Fields, Field{Name: name.Name, Type: ftyp})
		}
	}
	if !fixed {
		g.Diag(MissingLayoutGuarantee, typ.Name, "", "a structs.HostLayout field is required to give "+typ.Name+" a fixed memory layout")
	}
	if len(typ.Fields) == 0 {
		g.Diag(NoChannelFields, typ.Name, "", "Caster can only be derived for structs with one or more channel fields")
		return
	}
	typ.Channel = typ.Fields[0].Type
	for _, f := range typ.Fields[1:] {
		if f.Type != typ.Channel {
			g.Diag(MismatchedChannelType, typ.Name, f.Name, "expected field "+f.Name+" of "+typ.Name+" to have type "+typ.Channel)
		}
	}
	typ.Array = fmt.Sprintf("[%d]%s", len(typ.Fields), typ.Channel)
	g.ExecTmpl(CasterTmpl, typ)
}

// Diag adds a new [Diagnostic] with the given information to
// [Generator.Diags].
func (g *Generator) Diag(cat Category, typ, field, message string) {
	g.Diags = append(g.Diags, &Diagnostic{Category: cat, Type: typ, Field: field, Message: message})
}

// ExecTmpl executes the given template with the given type and writes
// the result to [Generator.Buf]. It fatally logs any error. All
// castgen templates take a [Type] as their data.
func (g *Generator) ExecTmpl(t *template.Template, typ *Type) {
	err := t.Execute(&g.Buf, typ)
	if err != nil {
		log.Fatalf("programmer error: internal error: error executing template: %v", err)
	}
}

// Write formats the data in the the Generator's buffer
// ([Generator.Buf]) and writes it to the file specified by
// [Generator.Config.Output].
func (g *Generator) Write() error {
	return generate.Write(generate.Filepath(g.Pkg, g.Config.Output), g.Buf.Bytes(), nil)
}

// fieldTag returns the struct tag of the given field, or an empty tag
// if it has none.
func fieldTag(f *ast.Field) reflect.StructTag {
	if f.Tag == nil {
		return ""
	}
	tv, err := strconv.Unquote(f.Tag.Value)
	if err != nil {
		return ""
	}
	return reflect.StructTag(tv)
}
