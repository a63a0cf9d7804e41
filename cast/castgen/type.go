// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package castgen

import "go/ast"

// Type represents a parsed color type marked for caster generation.
type Type struct {

	// Name is the local name of the type in its package (eg: RGB)
	Name string

	// AST is the standard AST type spec
	AST *ast.TypeSpec

	// Fields are the channel fields remaining after exclusions and type
	// substitutions, in declaration order
	Fields []Field

	// Channel is the resolved type shared by the channel fields (eg: float32)
	Channel string

	// Array is the channel array type (eg: [3]float32)
	Array string

	// Config is the configuration information for this type;
	// it is initialized to the generator config info and then
	// updated from the comment directive arguments
	Config *Config
}

// CastPkg returns the package qualifier that generated code uses to
// reference the Caster interface ("" in internal mode, "cast."
// otherwise). It is used in [CasterTmpl].
func (t *Type) CastPkg() string {
	if t.Config.Internal {
		return ""
	}
	return "cast."
}

// Field is one channel field of a color type.
type Field struct {

	// Name is the name of the field (eg: R)
	Name string

	// Type is the field type after any substitution from the cast struct tag
	Type string
}
