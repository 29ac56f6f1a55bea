package scaffold

import "fmt"

// PackageManager selects the command forms used for the generator steps.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// ParsePackageManager validates a package manager name from user config.
func ParsePackageManager(name string) (PackageManager, error) {
	switch PackageManager(name) {
	case NPM, PNPM, Yarn, Bun:
		return PackageManager(name), nil
	}
	return "", fmt.Errorf("unsupported package manager %q (expected npm, pnpm, yarn, or bun)", name)
}

// CreateVite returns the command that generates a Vite project named name
// from viteTemplate. npm needs the extra "--" separator before generator
// flags; the others pass them through directly.
func (pm PackageManager) CreateVite(name, viteTemplate string) (string, []string) {
	switch pm {
	case NPM:
		return "npm", []string{"create", "vite@latest", name, "--", "--template", viteTemplate}
	case PNPM:
		return "pnpm", []string{"create", "vite", name, "--template", viteTemplate}
	case Yarn:
		return "yarn", []string{"create", "vite", name, "--template", viteTemplate}
	case Bun:
		return "bun", []string{"create", "vite", name, "--template", viteTemplate}
	}
	return "npm", []string{"create", "vite@latest", name, "--", "--template", viteTemplate}
}

// Install returns the dependency install command.
func (pm PackageManager) Install() (string, []string) {
	switch pm {
	case Yarn:
		return "yarn", []string{"install"}
	case PNPM:
		return "pnpm", []string{"install"}
	case Bun:
		return "bun", []string{"install"}
	}
	return "npm", []string{"install"}
}

// Exec returns the command that runs a one-off package binary, used for the
// UI-component generator init.
func (pm PackageManager) Exec(args ...string) (string, []string) {
	switch pm {
	case PNPM:
		return "pnpm", append([]string{"dlx"}, args...)
	case Yarn:
		return "yarn", append([]string{"dlx"}, args...)
	case Bun:
		return "bunx", args
	}
	return "npx", append([]string{"--yes"}, args...)
}

// RunScript renders the shell line that runs a package.json script, e.g.
// "npm run dev". This is what lands on the user's clipboard.
func (pm PackageManager) RunScript(script string) string {
	switch pm {
	case Yarn:
		return "yarn " + script
	case PNPM:
		return "pnpm " + script
	case Bun:
		return "bun run " + script
	}
	return "npm run " + script
}
