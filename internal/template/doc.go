// Package template holds the embedded project template sets behind
// "kickstart new" and "kickstart templates". Each set is a directory with a
// template.yaml manifest (validated against an embedded JSON Schema) plus
// the static files rendered into a freshly generated project.
package template
