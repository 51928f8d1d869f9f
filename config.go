// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type OutputConfig struct {
	Separator string `yaml:"separator"`
}

type FilterConfig struct {
	BloomBits   uint `yaml:"bloom_bits"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type CacheConfig struct {
	NameLookupMinutes int `yaml:"name_lookup_minutes"`
	HelpPageMinutes   int `yaml:"help_page_minutes"`
}

type ShellConfig struct {
	Prompt     string `yaml:"prompt"`
	Scrollback int    `yaml:"scrollback"`
}

type Config struct {
	Output OutputConfig `yaml:"output"`
	Filter FilterConfig `yaml:"filter"`
	Cache  CacheConfig  `yaml:"cache"`
	Shell  ShellConfig  `yaml:"shell"`
}

var defaultConfig = Config{
	Output: OutputConfig{
		Separator: ", ",
	},
	Filter: FilterConfig{
		BloomBits:   1 << 16,
		BloomHashes: 5,
	},
	Cache: CacheConfig{
		NameLookupMinutes: 10,
		HelpPageMinutes:   30,
	},
	Shell: ShellConfig{
		Prompt:     "avl> ",
		Scrollback: 500,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avltree.yaml. Any problem with the file falls back to
// the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at configPath. Settings missing from the
// file keep their default values.
func LoadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", configPath, err)
		config = defaultConfig
		return &config, nil
	}

	config.sanitize()
	return &config, nil
}

// sanitize replaces unusable values with defaults.
func (c *Config) sanitize() {
	if c.Filter.BloomBits == 0 {
		c.Filter.BloomBits = defaultConfig.Filter.BloomBits
	}
	if c.Filter.BloomHashes == 0 {
		c.Filter.BloomHashes = defaultConfig.Filter.BloomHashes
	}
	if c.Cache.NameLookupMinutes <= 0 {
		c.Cache.NameLookupMinutes = defaultConfig.Cache.NameLookupMinutes
	}
	if c.Cache.HelpPageMinutes <= 0 {
		c.Cache.HelpPageMinutes = defaultConfig.Cache.HelpPageMinutes
	}
	if c.Shell.Scrollback <= 0 {
		c.Shell.Scrollback = defaultConfig.Shell.Scrollback
	}
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = defaultConfig.Shell.Prompt
	}
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 avltree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🖨  %sOutput:%s\n", Green, Reset)
	fmt.Printf("  • %sseparator%s: %q\n\n", Green, Reset, config.Output.Separator)

	fmt.Printf("🔍 %sKey filter:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_bits%s: %d\n", Green, Reset, config.Filter.BloomBits)
	fmt.Printf("  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Filter.BloomHashes)

	fmt.Printf("🗃  %sCache:%s\n", Green, Reset)
	fmt.Printf("  • %sname_lookup_minutes%s: %d\n", Green, Reset, config.Cache.NameLookupMinutes)
	fmt.Printf("  • %shelp_page_minutes%s: %d\n\n", Green, Reset, config.Cache.HelpPageMinutes)

	fmt.Printf("💻 %sShell:%s\n", Green, Reset)
	fmt.Printf("  • %sprompt%s: %q\n", Green, Reset, config.Shell.Prompt)
	fmt.Printf("  • %sscrollback%s: %d\n", Green, Reset, config.Shell.Scrollback)
}
