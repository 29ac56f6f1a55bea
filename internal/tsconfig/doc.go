// Package tsconfig patches TypeScript compiler configuration files in place.
// It powers the "kickstart patch" command and the tsconfig step of
// "kickstart new", injecting the "@/*" import alias into compilerOptions.
//
// tsconfig.json is JSON with C-style comments and optional trailing commas.
// Rather than pattern-matching comments out of the raw text (which corrupts
// string literals containing "//" or "/*"), this package runs a minimal
// scanner that tracks string-literal boundaries and only strips comment
// sequences outside of strings. Parsed documents preserve key insertion
// order so repeated patching is byte-stable.
package tsconfig
