package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/viper"
)

// Settings are the user preferences consumed by "kickstart new". Boolean
// fields are pointers so an absent key is distinguishable from false.
type Settings struct {
	PackageManager string `mapstructure:"package_manager"`
	Template       string `mapstructure:"template"`
	Clipboard      *bool  `mapstructure:"clipboard"`
	EmojiFavicon   *bool  `mapstructure:"emoji_favicon"`
}

// Defaults returns the settings used when the config file sets nothing.
func Defaults() Settings {
	on := true
	return Settings{
		PackageManager: "npm",
		Template:       "react-ts",
		Clipboard:      &on,
		EmojiFavicon:   &on,
	}
}

// Resolve unmarshals the loaded config and fills unset fields from Defaults.
func Resolve() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	if err := mergo.Merge(&s, Defaults()); err != nil {
		return Settings{}, fmt.Errorf("applying default settings: %w", err)
	}
	return s, nil
}

// ClipboardEnabled reports whether the follow-up command should be copied.
func (s Settings) ClipboardEnabled() bool {
	return s.Clipboard == nil || *s.Clipboard
}

// EmojiFaviconEnabled reports whether a random emoji favicon is generated.
func (s Settings) EmojiFaviconEnabled() bool {
	return s.EmojiFavicon == nil || *s.EmojiFavicon
}
