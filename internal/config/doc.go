// Package config manages user-level settings stored at
// ~/.kickstart/config.yaml, such as the preferred package manager and
// whether the follow-up command is copied to the clipboard.
package config
