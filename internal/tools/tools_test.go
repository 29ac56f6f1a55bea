package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kickstart-dev/kickstart/internal/runner"
)

func TestCheckSatisfiedVersion(t *testing.T) {
	r := &runner.Recorder{Outputs: map[string]string{"node --version": "v20.11.1"}}

	st := Check(context.Background(), r, Requirement{Name: "node", MinVersion: "18.0.0"})
	if !st.OK() {
		t.Fatalf("Check() error: %v", st.Err)
	}
	if st.Version != "v20.11.1" {
		t.Errorf("Version = %q, want v20.11.1", st.Version)
	}
}

func TestCheckTooOld(t *testing.T) {
	r := &runner.Recorder{Outputs: map[string]string{"node --version": "v16.3.0"}}

	st := Check(context.Background(), r, Requirement{Name: "node", MinVersion: "18.0.0"})
	if st.OK() {
		t.Fatal("expected version error")
	}
	if !strings.Contains(st.Err.Error(), "older than required") {
		t.Errorf("error = %v", st.Err)
	}
}

func TestCheckMissingBinary(t *testing.T) {
	r := &runner.Recorder{Missing: map[string]bool{"node": true}}

	st := Check(context.Background(), r, Requirement{Name: "node", MinVersion: "18.0.0"})
	if st.OK() {
		t.Fatal("expected lookup error")
	}
}

func TestCheckPresenceOnly(t *testing.T) {
	r := &runner.Recorder{}

	st := Check(context.Background(), r, Requirement{Name: "git"})
	if !st.OK() {
		t.Fatalf("Check() error: %v", st.Err)
	}
	// Presence checks must not spawn a --version process.
	if len(r.Calls) != 0 {
		t.Errorf("unexpected calls: %v", r.Calls)
	}
}

func TestCheckAllOptionalFailureIsNotFatal(t *testing.T) {
	r := &runner.Recorder{
		Missing: map[string]bool{"git": true},
		Outputs: map[string]string{
			"node --version": "v20.0.0",
			"npm --version":  "10.2.0",
		},
	}

	statuses, err := CheckAll(context.Background(), r, Defaults)
	if err != nil {
		t.Fatalf("CheckAll() error: %v", err)
	}
	if len(statuses) != len(Defaults) {
		t.Fatalf("got %d statuses, want %d", len(statuses), len(Defaults))
	}
	if statuses[2].OK() {
		t.Error("git status should carry an error")
	}
}

func TestCheckAllRequiredFailureIsFatal(t *testing.T) {
	r := &runner.Recorder{
		Outputs: map[string]string{
			"node --version": "v17.9.0",
			"npm --version":  "10.2.0",
		},
	}

	_, err := CheckAll(context.Background(), r, Defaults)
	if err == nil {
		t.Fatal("expected error for stale node")
	}
}

func TestParseSemverForms(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v20.11.1", "20.11.1"},
		{"10.2.0", "10.2.0"},
		{"git version 2.43.0", "2.43.0"},
	}
	for _, tt := range tests {
		v, err := parseSemver(tt.in)
		if err != nil {
			t.Errorf("parseSemver(%q) error: %v", tt.in, err)
			continue
		}
		if v.String() != tt.want {
			t.Errorf("parseSemver(%q) = %s, want %s", tt.in, v, tt.want)
		}
	}
}

func TestCheckAllStopsAtFirstFatalMessage(t *testing.T) {
	wantErr := errors.New("boom")
	r := &runner.Recorder{FailOn: map[string]error{"npm --version": wantErr}, Outputs: map[string]string{"node --version": "v20.0.0"}}

	_, err := CheckAll(context.Background(), r, Defaults)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped boom", err)
	}
}
