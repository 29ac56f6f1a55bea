// Package cli wires the kickstart commands: new, patch, templates, doctor,
// config, and version.
package cli
