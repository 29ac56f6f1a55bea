package runner

import (
	"context"
	"errors"
	"testing"
)

func TestRecorderRecordsCalls(t *testing.T) {
	r := &Recorder{}
	if err := r.Run(context.Background(), "/tmp/app", "npm", "install"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(r.Calls) != 1 {
		t.Fatalf("Calls = %v", r.Calls)
	}
	if got := r.Calls[0].String(); got != "npm install" {
		t.Errorf("Call.String() = %q", got)
	}
	if r.Calls[0].Dir != "/tmp/app" {
		t.Errorf("Dir = %q", r.Calls[0].Dir)
	}
}

func TestRecorderFailOn(t *testing.T) {
	boom := errors.New("exit status 1")
	r := &Recorder{FailOn: map[string]error{"shadcn": boom}}

	if err := r.Run(context.Background(), "", "npx", "shadcn@latest", "init"); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want boom", err)
	}
	if err := r.Run(context.Background(), "", "npm", "install"); err != nil {
		t.Errorf("unmatched command failed: %v", err)
	}
}

func TestRecorderMissingBinary(t *testing.T) {
	r := &Recorder{Missing: map[string]bool{"pnpm": true}}

	if _, err := r.LookPath("pnpm"); err == nil {
		t.Error("expected lookup failure for pnpm")
	}
	if path, err := r.LookPath("npm"); err != nil || path == "" {
		t.Errorf("LookPath(npm) = %q, %v", path, err)
	}
}

func TestRecorderOutputs(t *testing.T) {
	r := &Recorder{Outputs: map[string]string{"node --version": "v20.0.0"}}

	out, err := r.Output(context.Background(), "", "node", "--version")
	if err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if out != "v20.0.0" {
		t.Errorf("Output() = %q", out)
	}
}
