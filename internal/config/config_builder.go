// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configurations from several sources and
// merges them into one. Sources appended first win: mergo only fills fields
// that are still zero in the destination.
type configBuilder struct {
	configs   []*StructuredConfig
	validator func(*StructuredConfig) error
	err       error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:   make([]*StructuredConfig, 0, 4),
		validator: (*StructuredConfig).validate,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := mergo.Merge(config, defaults()); err != nil {
		return nil, fmt.Errorf("error applying default configs: %w", err)
	}

	if err := b.validator(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (b *configBuilder) withValidator(validator func(*StructuredConfig) error) *configBuilder {
	b.validator = validator
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withJSONPath records an explicitly chosen JSON file path ahead of other
// sources so that it wins over the CONFIG environment variable.
func (b *configBuilder) withJSONPath(path string) *configBuilder {
	if path != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	}
	return b
}

// withJSON loads the JSON file named by the first source that sets
// JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
