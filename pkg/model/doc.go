// Package model defines the typed form description consumed by renderers.
// A form is an ordered list of fields; phone fields carry a display pattern
// and choice fields carry their options. Widget selection lives in
// pkg/widgets and is recorded on fields through Widget or UIHints.
package model
