// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package castgen

import "text/template"

// CasterTmpl generates the caster implementation for a color type: the
// interface assertion, the Channels method, and two constant
// assertions that fail to compile unless the type and its channel
// array have exactly the same size.
var CasterTmpl = template.Must(template.New("Caster").Parse(
	`
var _ {{.CastPkg}}Caster[{{.Array}}] = {{.Name}}{}

// Channels returns the channel values of the {{.Name}} as a {{.Array}}.
func (c {{.Name}}) Channels() {{.Array}} {
	return *(*{{.Array}})(unsafe.Pointer(&c))
}

// {{.Name}} must be the same size as {{.Array}}.
const _ = unsafe.Sizeof({{.Name}}{}) - unsafe.Sizeof({{.Array}}{})
const _ = unsafe.Sizeof({{.Array}}{}) - unsafe.Sizeof({{.Name}}{})
`))
