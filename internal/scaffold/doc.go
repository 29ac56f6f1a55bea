// Package scaffold orchestrates project setup for "kickstart new": preflight
// tool checks, the Vite generator, dependency install, the UI-component
// generator, static template rendering, tsconfig alias patching, and the
// follow-up command handed to the clipboard. Steps run strictly in order and
// the first failing step aborts the whole setup.
package scaffold
