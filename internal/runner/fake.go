package runner

import (
	"context"
	"fmt"
	"strings"
)

// Call records one command handed to a Recorder.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call the way it would appear on a shell line.
func (c Call) String() string {
	parts := append([]string{c.Name}, c.Args...)
	return strings.Join(parts, " ")
}

// Recorder is a Runner for tests. It records every command and can be told
// to fail specific commands or hide specific binaries.
type Recorder struct {
	Calls []Call

	// FailOn aborts any command whose shell-line rendering contains the key.
	FailOn map[string]error

	// Missing binaries are not found by LookPath.
	Missing map[string]bool

	// Outputs maps a shell-line substring to the stdout Output returns.
	Outputs map[string]string

	// OnRun, when set, observes every Run call after recording. Tests use it
	// to simulate side effects of external generators (files they create).
	OnRun func(Call) error
}

func (r *Recorder) Run(_ context.Context, dir, name string, args ...string) error {
	call := Call{Dir: dir, Name: name, Args: args}
	r.Calls = append(r.Calls, call)
	for key, err := range r.FailOn {
		if strings.Contains(call.String(), key) {
			return err
		}
	}
	if r.OnRun != nil {
		return r.OnRun(call)
	}
	return nil
}

func (r *Recorder) Output(_ context.Context, dir, name string, args ...string) (string, error) {
	call := Call{Dir: dir, Name: name, Args: args}
	r.Calls = append(r.Calls, call)
	for key, err := range r.FailOn {
		if strings.Contains(call.String(), key) {
			return "", err
		}
	}
	for key, out := range r.Outputs {
		if strings.Contains(call.String(), key) {
			return out, nil
		}
	}
	return "", nil
}

func (r *Recorder) LookPath(name string) (string, error) {
	if r.Missing[name] {
		return "", fmt.Errorf("%s: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}
