package scaffold

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/kickstart-dev/kickstart/internal/clipboard"
	"github.com/kickstart-dev/kickstart/internal/emoji"
	"github.com/kickstart-dev/kickstart/internal/runner"
	"github.com/kickstart-dev/kickstart/internal/template"
	"github.com/kickstart-dev/kickstart/internal/tools"
	"github.com/kickstart-dev/kickstart/internal/tsconfig"
	"github.com/kickstart-dev/kickstart/internal/ui"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Options configure one setup run.
type Options struct {
	Name           string // project name, also the directory created
	ParentDir      string // directory the project is created under
	Template       string // template set name, e.g. "react-ts"
	PackageManager string
	Clipboard      bool  // publish the follow-up command
	EmojiFavicon   bool  // pick a random favicon emoji instead of the default
	Seed           int64 // emoji seed; 0 means time-based
	SkipPreflight  bool  // skip tool version checks (tests, CI images)
}

// Deps are the collaborators Setup shells out through. Zero-value fields get
// real implementations, so tests can swap in fakes selectively.
type Deps struct {
	Runner    runner.Runner
	Clipboard clipboard.Publisher
	Printer   ui.Printer
}

// Result reports what a completed setup produced.
type Result struct {
	ProjectDir  string
	Files       []string // template files rendered into the project
	Patched     []string // tsconfig files that received the path alias
	NextCommand string   // e.g. "cd my-app && npm run dev"
	Copied      bool     // NextCommand landed on the clipboard
	Warnings    []string
}

func (d *Deps) fill() {
	if d.Runner == nil {
		d.Runner = &runner.ExecRunner{}
	}
	if d.Clipboard == nil {
		d.Clipboard = clipboard.System{}
	}
}

// Setup runs the full project pipeline. Steps are strictly sequential; the
// first error aborts the run and propagates to the caller, leaving any
// partially created directory for the operator to inspect.
func Setup(ctx context.Context, opts Options, deps Deps) (*Result, error) {
	deps.fill()
	p := deps.Printer

	if !namePattern.MatchString(opts.Name) {
		return nil, fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9-]*", opts.Name)
	}

	pm, err := ParsePackageManager(opts.PackageManager)
	if err != nil {
		return nil, err
	}

	set, err := template.Load(opts.Template)
	if err != nil {
		return nil, err
	}

	projectDir := filepath.Join(opts.ParentDir, opts.Name)
	if entries, err := os.ReadDir(projectDir); err == nil && len(entries) > 0 {
		return nil, fmt.Errorf("directory %s already exists and is not empty", projectDir)
	}

	result := &Result{ProjectDir: projectDir}

	// Preflight: required tools present and recent enough.
	if !opts.SkipPreflight {
		p.Step("Checking required tools")
		statuses, err := tools.CheckAll(ctx, deps.Runner, tools.Defaults)
		if err != nil {
			return nil, fmt.Errorf("preflight check failed: %w", err)
		}
		for _, st := range statuses {
			if st.Err != nil {
				warn := st.Err.Error()
				result.Warnings = append(result.Warnings, warn)
				p.Warn("%s", warn)
			}
		}
	}

	// Generator: create the Vite project.
	p.Step("Creating %s project %s", set.Manifest.DisplayName, opts.Name)
	name, args := pm.CreateVite(opts.Name, set.Manifest.ViteTemplate)
	if err := deps.Runner.Run(ctx, opts.ParentDir, name, args...); err != nil {
		return nil, fmt.Errorf("project generator failed: %w", err)
	}

	// Dependencies.
	p.Step("Installing dependencies")
	name, args = pm.Install()
	if err := deps.Runner.Run(ctx, projectDir, name, args...); err != nil {
		return nil, fmt.Errorf("dependency install failed: %w", err)
	}

	// UI-component generator.
	if set.Manifest.UIInit {
		p.Step("Initializing UI components")
		name, args = pm.Exec("shadcn@latest", "init", "--yes", "--defaults")
		if err := deps.Runner.Run(ctx, projectDir, name, args...); err != nil {
			return nil, fmt.Errorf("UI generator failed: %w", err)
		}
	}

	// Static template files.
	p.Step("Writing project files")
	data := template.Data{
		ProjectName:    opts.Name,
		PackageManager: string(pm),
		Emoji:          pickEmoji(opts),
		DevCommand:     pm.RunScript(set.Manifest.DevScript),
		Year:           time.Now().Year(),
	}
	files, err := set.Render(projectDir, data)
	if err != nil {
		return nil, fmt.Errorf("writing template files: %w", err)
	}
	result.Files = files

	// tsconfig path alias. The first declared config is required; the rest
	// are generator-dependent and skipped when absent.
	p.Step("Patching TypeScript configuration")
	for i, rel := range set.Manifest.TSConfigs {
		path := filepath.Join(projectDir, rel)
		err := tsconfig.PatchFile(path)
		if err == nil {
			result.Patched = append(result.Patched, rel)
			continue
		}
		if i > 0 && errors.Is(err, tsconfig.ErrNotFound) {
			continue
		}
		return nil, err
	}

	// Follow-up command: best effort, never fatal.
	result.NextCommand = fmt.Sprintf("cd %s && %s", opts.Name, pm.RunScript(set.Manifest.DevScript))
	if opts.Clipboard {
		copied, err := deps.Clipboard.Copy(result.NextCommand)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("clipboard copy failed: %v", err))
		}
		result.Copied = copied
	}

	if result.Copied {
		p.Success("Done. Next command copied to clipboard: %s", result.NextCommand)
	} else {
		p.Success("Done. Next: %s", result.NextCommand)
	}

	return result, nil
}

func pickEmoji(opts Options) string {
	if !opts.EmojiFavicon {
		return emoji.Catalog[0]
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return emoji.Pick(rand.NewSource(seed), emoji.Catalog)
}
