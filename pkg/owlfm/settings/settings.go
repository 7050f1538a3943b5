// Package settings loads user preferences. The values are read by viper
// from a config file or environment variables.
package settings

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/owltech/owlfm/pkg/fsutils"
)

const defaultSettingsDir = "~/.owlfm"

// Settings stores the user-tunable behavior of the browser.
type Settings struct {
	// ShowHidden controls whether dot-files appear in listings.
	ShowHidden bool `mapstructure:"show_hidden"`
	// EditorStyle is the chroma style used to highlight previewed files.
	EditorStyle string `mapstructure:"editor_style"`
	// LogFile enables debug logging when set.
	LogFile string `mapstructure:"log_file"`
}

// Load reads settings from configPath, or from owlfm.yaml in the settings
// directory when configPath is empty. A missing config file yields defaults.
func Load(configPath string) (*Settings, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(fsutils.ExpandHome(defaultSettingsDir))
		v.SetConfigName("owlfm")
		v.SetConfigType("yaml")
	}

	v.SetDefault("show_hidden", true)
	v.SetDefault("editor_style", "dracula")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("OWLFM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
