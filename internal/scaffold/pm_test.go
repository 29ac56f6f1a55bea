package scaffold

import (
	"strings"
	"testing"
)

func TestParsePackageManager(t *testing.T) {
	for _, name := range []string{"npm", "pnpm", "yarn", "bun"} {
		pm, err := ParsePackageManager(name)
		if err != nil {
			t.Errorf("ParsePackageManager(%q) error: %v", name, err)
		}
		if string(pm) != name {
			t.Errorf("ParsePackageManager(%q) = %q", name, pm)
		}
	}

	if _, err := ParsePackageManager("cargo"); err == nil {
		t.Error("expected error for unsupported package manager")
	}
}

func TestCreateViteForms(t *testing.T) {
	tests := []struct {
		pm   PackageManager
		want string
	}{
		{NPM, "npm create vite@latest app -- --template react-ts"},
		{PNPM, "pnpm create vite app --template react-ts"},
		{Yarn, "yarn create vite app --template react-ts"},
		{Bun, "bun create vite app --template react-ts"},
	}

	for _, tt := range tests {
		name, args := tt.pm.CreateVite("app", "react-ts")
		got := name + " " + strings.Join(args, " ")
		if got != tt.want {
			t.Errorf("%s CreateVite = %q, want %q", tt.pm, got, tt.want)
		}
	}
}

func TestExecForms(t *testing.T) {
	tests := []struct {
		pm   PackageManager
		want string
	}{
		{NPM, "npx --yes shadcn@latest init"},
		{PNPM, "pnpm dlx shadcn@latest init"},
		{Yarn, "yarn dlx shadcn@latest init"},
		{Bun, "bunx shadcn@latest init"},
	}

	for _, tt := range tests {
		name, args := tt.pm.Exec("shadcn@latest", "init")
		got := name + " " + strings.Join(args, " ")
		if got != tt.want {
			t.Errorf("%s Exec = %q, want %q", tt.pm, got, tt.want)
		}
	}
}

func TestRunScriptForms(t *testing.T) {
	tests := []struct {
		pm   PackageManager
		want string
	}{
		{NPM, "npm run dev"},
		{PNPM, "pnpm dev"},
		{Yarn, "yarn dev"},
		{Bun, "bun run dev"},
	}

	for _, tt := range tests {
		if got := tt.pm.RunScript("dev"); got != tt.want {
			t.Errorf("%s RunScript = %q, want %q", tt.pm, got, tt.want)
		}
	}
}
