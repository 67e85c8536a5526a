// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder stacks partial configs from env, flags, a JSON file and the
// defaults. A layer added earlier wins; later layers only fill zero fields.
type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

// layer runs load and stacks its result. A nil config with no error means
// the source has nothing to contribute.
func (b *configBuilder) layer(source string, load func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := load()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.layer("env", func() (*StructuredConfig, error) {
		cfg := &StructuredConfig{}
		return cfg, parseEnv(cfg)
	})
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.layer("flags", func() (*StructuredConfig, error) {
		return parseFlags(b.args)
	})
}

// withJSON reads the file named by the highest-priority layer that sets
// JSONFilePath. It is skipped once an earlier source has failed.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}
	return b.layer("json", func() (*StructuredConfig, error) {
		for _, cfg := range b.configs {
			if cfg.JSONFilePath != "" {
				return parseJSON(cfg.JSONFilePath)
			}
		}
		return nil, nil
	})
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.layer("defaults", func() (*StructuredConfig, error) {
		return defaultConfig(), nil
	})
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, nil
}
