// Package tools verifies that the external binaries the setup pipeline
// depends on are installed and recent enough.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/kickstart-dev/kickstart/internal/runner"
)

// Requirement names a binary and the minimum version accepted for it.
// An empty MinVersion only checks presence.
type Requirement struct {
	Name       string
	MinVersion string
	Optional   bool
}

// Defaults are the tools "kickstart new" needs before any step runs.
var Defaults = []Requirement{
	{Name: "node", MinVersion: "18.0.0"},
	{Name: "npm", MinVersion: "9.0.0"},
	{Name: "git", Optional: true},
}

// Status is the outcome of checking one requirement.
type Status struct {
	Requirement Requirement
	Path        string
	Version     string
	Err         error
}

// OK reports whether the tool is usable.
func (s Status) OK() bool { return s.Err == nil }

// Check resolves a requirement: binary on PATH, `--version` parses, and the
// parsed version satisfies the minimum.
func Check(ctx context.Context, r runner.Runner, req Requirement) Status {
	st := Status{Requirement: req}

	path, err := r.LookPath(req.Name)
	if err != nil {
		st.Err = fmt.Errorf("%s not found: %w", req.Name, err)
		return st
	}
	st.Path = path

	if req.MinVersion == "" {
		return st
	}

	raw, err := r.Output(ctx, "", req.Name, "--version")
	if err != nil {
		st.Err = fmt.Errorf("querying %s version: %w", req.Name, err)
		return st
	}
	st.Version = raw

	current, err := parseSemver(raw)
	if err != nil {
		st.Err = fmt.Errorf("parsing %s version %q: %w", req.Name, raw, err)
		return st
	}
	minimum, err := parseSemver(req.MinVersion)
	if err != nil {
		st.Err = fmt.Errorf("parsing minimum version %q: %w", req.MinVersion, err)
		return st
	}

	if current.LessThan(minimum) {
		st.Err = fmt.Errorf("%s %s is older than required %s", req.Name, current, minimum)
	}
	return st
}

// CheckAll checks every requirement and returns the statuses plus an error
// if any non-optional tool is unusable.
func CheckAll(ctx context.Context, r runner.Runner, reqs []Requirement) ([]Status, error) {
	var statuses []Status
	var firstErr error

	for _, req := range reqs {
		st := Check(ctx, r, req)
		statuses = append(statuses, st)
		if st.Err != nil && !req.Optional && firstErr == nil {
			firstErr = st.Err
		}
	}
	return statuses, firstErr
}

// parseSemver strips a leading "v" and any surrounding text commonly printed
// by `--version` (e.g. "v20.11.1") and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimSpace(version)
	if i := strings.LastIndexByte(version, ' '); i >= 0 {
		version = version[i+1:]
	}
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
