// Package configfile reads and rewrites the YAML config files the scaffold
// pipeline patches. Each file is a typed structure with an inline rest map,
// so a partial update never drops keys it does not know about.
package configfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YarnRC models .yarnrc.yml.
type YarnRC struct {
	NodeLinker string `yaml:"nodeLinker,omitempty"`

	Rest map[string]interface{} `yaml:",inline"`
}

// ESLintConfig models .eslintrc.yml.
type ESLintConfig struct {
	Extends interface{} `yaml:"extends,omitempty"`

	Rest map[string]interface{} `yaml:",inline"`
}

// LoadYarnRC reads the yarn config at path. A missing file loads as an
// empty config so the caller can create it on save.
func LoadYarnRC(path string) (*YarnRC, error) {
	var rc YarnRC
	if err := loadYAML(path, &rc); err != nil {
		return nil, err
	}
	return &rc, nil
}

// SaveYarnRC writes the yarn config to path.
func SaveYarnRC(path string, rc *YarnRC) error {
	return saveYAML(path, rc)
}

// LoadESLint reads the eslint config at path. A missing file loads as an
// empty config.
func LoadESLint(path string) (*ESLintConfig, error) {
	var cfg ESLintConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveESLint writes the eslint config to path.
func SaveESLint(path string, cfg *ESLintConfig) error {
	return saveYAML(path, cfg)
}

func loadYAML(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func saveYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
