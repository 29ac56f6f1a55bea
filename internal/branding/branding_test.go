package branding

import "testing"

func TestIdentityValues(t *testing.T) {
	if CLIName() != "kickstart" {
		t.Errorf("CLIName() = %q", CLIName())
	}
	if HomeDir() != ".kickstart" {
		t.Errorf("HomeDir() = %q", HomeDir())
	}
	if GoModule() != "github.com/kickstart-dev/kickstart" {
		t.Errorf("GoModule() = %q", GoModule())
	}
	if GitHubRepo() != "kickstart-dev/kickstart" {
		t.Errorf("GitHubRepo() = %q", GitHubRepo())
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("template"); got != "KICKSTART_TEMPLATE" {
		t.Errorf("EnvVar(template) = %q", got)
	}
}
