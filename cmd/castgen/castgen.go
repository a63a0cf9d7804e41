// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command castgen provides the generation of array reinterpretation
// support for color types based on their channel fields.
package main

import (
	"cogentcore.org/colorcast/cast/castgen"
	"cogentcore.org/core/cli"
)

func main() {
	opts := cli.DefaultOptions("castgen", "Castgen provides the generation of array reinterpretation support for color types based on their channel fields.")
	cli.Run(opts, &castgen.Config{}, castgen.Generate)
}
