package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	options []*Options
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		options: make([]*Options, 0, 3),
	}
}

func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building options: %w", b.err)
	}

	options := new(Options)
	for _, opts := range b.options {
		if err := mergo.Merge(options, opts, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	if err := options.validate(); err != nil {
		return nil, err
	}
	return options, nil
}

func (b *optionsBuilder) withDefaults() *optionsBuilder {
	b.options = append(b.options, defaultOptions())
	return b
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts, nil); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, envOpts)
	return b
}

func (b *optionsBuilder) withFlags(args []string) *optionsBuilder {
	flagOpts, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, flagOpts)
	return b
}
