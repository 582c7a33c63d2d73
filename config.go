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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlstore.yaml"

type RunConfig struct {
	Input            string `yaml:"input"`
	Output           string `yaml:"output"`
	ShowProgress     bool   `yaml:"show_progress"`
	VerifyInvariants bool   `yaml:"verify_invariants"`
}

type StoreConfig struct {
	BloomFilterSize   uint `yaml:"bloom_filter_size"`
	BloomFilterHashes uint `yaml:"bloom_filter_hashes"`
}

type RenderConfig struct {
	CacheExpirationMinutes int `yaml:"cache_expiration_minutes"`
}

type Config struct {
	Run    RunConfig    `yaml:"run"`
	Store  StoreConfig  `yaml:"store"`
	Render RenderConfig `yaml:"render"`
}

var defaultConfig = Config{
	Run: RunConfig{
		Input:  "input.txt",
		Output: "output.txt",
	},
	Store: StoreConfig{
		BloomFilterSize:   1 << 16,
		BloomFilterHashes: 5,
	},
	Render: RenderConfig{
		CacheExpirationMinutes: 30,
	},
}

// DefaultConfig returns a copy of the built-in settings
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

// RenderCacheExpiration returns how long a rendered tree stays cached
func (c *Config) RenderCacheExpiration() time.Duration {
	return time.Duration(c.Render.CacheExpirationMinutes) * time.Minute
}

// LoadConfig reads ~/.avlstore.yaml, falling back to defaults when the
// file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at configPath. Fields absent from the file
// keep their default values; zero sizes are replaced by defaults.
func LoadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), nil
	}

	if config.Store.BloomFilterSize == 0 {
		config.Store.BloomFilterSize = defaultConfig.Store.BloomFilterSize
	}
	if config.Store.BloomFilterHashes == 0 {
		config.Store.BloomFilterHashes = defaultConfig.Store.BloomFilterHashes
	}
	if config.Render.CacheExpirationMinutes <= 0 {
		config.Render.CacheExpirationMinutes = defaultConfig.Render.CacheExpirationMinutes
	}

	return config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
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

		if err := writeDefaultConfigFile(configPath); err != nil {
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

	fmt.Printf("🔧 avlstore Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("▶ %sReplay:%s\n", Green, Reset)
	fmt.Printf("  • %sinput%s: %s\n", Green, Reset, config.Run.Input)
	fmt.Printf("  • %soutput%s: %s\n", Green, Reset, config.Run.Output)
	fmt.Printf("  • %sshow_progress%s: %t\n", Green, Reset, config.Run.ShowProgress)
	fmt.Printf("  • %sverify_invariants%s: %t\n\n", Green, Reset, config.Run.VerifyInvariants)

	fmt.Printf("🌳 %sStore:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_filter_size%s: %d bits\n", Green, Reset, config.Store.BloomFilterSize)
	fmt.Printf("  • %sbloom_filter_hashes%s: %d\n\n", Green, Reset, config.Store.BloomFilterHashes)

	fmt.Printf("🖼  %sRender:%s\n", Green, Reset)
	fmt.Printf("  • %scache_expiration_minutes%s: %d\n\n", Green, Reset, config.Render.CacheExpirationMinutes)

	if !config.Run.VerifyInvariants {
		fmt.Printf("💡 To check tree invariants after every replayed command, edit %s:\n", configPath)
		fmt.Printf("   run:\n     verify_invariants: true\n")
	}
}
