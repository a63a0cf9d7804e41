// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package castgen

// Category is the kind of problem a [Diagnostic] reports.
type Category string

const (
	// UnsupportedShape is reported for type declarations whose storage
	// is not guaranteed to equal a flat array: interface types, generic
	// types, and anything else that is not a plain struct. It is fatal:
	// no other checks run for the type and nothing is generated for it.
	UnsupportedShape Category = "unsupported-shape"

	// MissingLayoutGuarantee is reported for structs with no
	// structs.HostLayout field. It is accumulated: channel checking
	// still runs and an implementation is still produced.
	MissingLayoutGuarantee Category = "missing-layout-guarantee"

	// NoChannelFields is reported for structs with no channel fields
	// left after exclusions. It is fatal for the type.
	NoChannelFields Category = "no-channel-fields"

	// MismatchedChannelType is reported once per field whose resolved
	// type differs from that of the first channel field. It is
	// accumulated alongside a best-effort implementation.
	MismatchedChannelType Category = "mismatched-channel-type"
)

// Diagnostic is one problem that castgen found with a color type
// declaration. Any diagnostic prevents the generated file for the
// type's package from being written.
type Diagnostic struct {

	// Category is the kind of problem
	Category Category

	// Type is the name of the color type
	Type string

	// Field is the name of the offending field, for [MismatchedChannelType]
	Field string

	// Message is the full human-readable description of the problem
	Message string
}

func (d *Diagnostic) Error() string {
	return "castgen: " + d.Message
}
