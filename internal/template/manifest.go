package template

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Manifest describes one project template set.
type Manifest struct {
	Name         string   `yaml:"name" json:"name"`
	DisplayName  string   `yaml:"display_name" json:"display_name"`
	Description  string   `yaml:"description" json:"description"`
	Version      string   `yaml:"version" json:"version"`
	ViteTemplate string   `yaml:"vite_template" json:"vite_template"`
	UIInit       bool     `yaml:"ui_init,omitempty" json:"ui_init,omitempty"`
	Files        []string `yaml:"files" json:"files"`
	TSConfigs    []string `yaml:"tsconfigs" json:"tsconfigs"`
	DevScript    string   `yaml:"dev_script" json:"dev_script"`
}

// parseManifest decodes manifest YAML after schema validation.
func parseManifest(data []byte, source string) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", source, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid template manifest %s: %s", source, result.Issues[0].String())
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	return &m, nil
}
