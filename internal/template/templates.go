package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"text/template"
)

// Dotfiles (.prettierrc, .vscode/) require the all: prefix.
//
//go:embed all:templates
var templateFS embed.FS

// Data holds the variables available to template payload files.
type Data struct {
	ProjectName    string
	PackageManager string
	Emoji          string
	DevCommand     string
	Year           int
}

// Set is a loaded template set: its manifest plus access to payload files.
type Set struct {
	Manifest *Manifest

	dir string // embedded directory, e.g. "templates/react-ts"
}

// List returns the manifests of every embedded template set, sorted by name.
func List() ([]*Manifest, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	var manifests []*Manifest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		set, err := Load(entry.Name())
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, set.Manifest)
	}

	sort.Slice(manifests, func(i, j int) bool { return manifests[i].Name < manifests[j].Name })
	return manifests, nil
}

// Load reads and validates the template set with the given name.
func Load(name string) (*Set, error) {
	dir := path.Join("templates", name)

	data, err := templateFS.ReadFile(path.Join(dir, "template.yaml"))
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", name, err)
	}

	m, err := parseManifest(data, name+"/template.yaml")
	if err != nil {
		return nil, err
	}
	return &Set{Manifest: m, dir: dir}, nil
}

// Render writes every payload file of the set into outputDir, executing each
// through text/template with data. Parent directories are created as needed;
// existing files are overwritten, matching the plain overwrite semantics of
// the setup pipeline. Returns the written paths relative to outputDir.
func (s *Set) Render(outputDir string, data Data) ([]string, error) {
	var written []string

	for _, rel := range s.Manifest.Files {
		srcPath := path.Join(s.dir, "files", rel+".tmpl")
		raw, err := fs.ReadFile(templateFS, srcPath)
		if err != nil {
			return nil, fmt.Errorf("reading template payload %s: %w", srcPath, err)
		}

		tmpl, err := template.New(rel).Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", rel, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", rel, err)
		}

		outPath := filepath.Join(outputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		written = append(written, rel)
	}

	return written, nil
}
