/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/config"
)

// fileConfig is the on-disk CLI configuration. All fields are optional;
// absent fields keep the built-in defaults.
type fileConfig struct {
	Dumper          string `toml:"dumper"`
	Flow            string `toml:"flow"`
	Indent          int    `toml:"indent"`
	IndentSequences *bool  `toml:"indent_sequences"`
	AllowUnicode    *bool  `toml:"allow_unicode"`
}

// defaultConfigPath returns the conventional config location,
// $XDG_CONFIG_HOME/yamx/yamx.toml or ~/.config/yamx/yamx.toml.
func defaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "yamx", "yamx.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "yamx", "yamx.toml")
}

// loadConfig reads the TOML config at path. A missing file at the default
// location is not an error; an explicitly requested file must exist.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// styleOptions converts the config into style options, validated by the
// same option constructors the library uses.
func (c fileConfig) styleOptions() ([]config.Option, error) {
	var opts []config.Option
	if c.Flow != "" {
		mode, err := config.ParseFlowMode(c.Flow)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithFlow(mode))
	}
	if c.Indent != 0 {
		opts = append(opts, config.WithIndent(c.Indent))
	}
	if c.IndentSequences != nil {
		opts = append(opts, config.WithIndentSequences(*c.IndentSequences))
	}
	if c.AllowUnicode != nil {
		opts = append(opts, config.WithAllowUnicode(*c.AllowUnicode))
	}
	return opts, nil
}

// flowModeFlag parses the --flow flag value, sharing spellings with the
// config file ("auto", "never", "always").
func flowModeFlag(s string) (apis.FlowMode, error) {
	return config.ParseFlowMode(s)
}
