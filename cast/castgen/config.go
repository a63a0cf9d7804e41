// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package castgen

// Config contains the configuration information used by castgen.
type Config struct { //types:add

	// the source directory to run castgen on (can be set to multiple through paths like ./...)
	Dir string `default:"." posarg:"0" required:"-"`

	// the output file location relative to the package on which castgen is being called
	Output string `default:"castgen.go"`

	// whether the types being generated for are in the cast package itself,
	// in which case the generated code references Caster directly instead
	// of through an import of the cast package
	Internal bool
}
