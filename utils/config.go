package utils

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// fileConfig mirrors the command line options that may be given
// default values in a TOML configuration file.
type fileConfig struct {
	Domain             *string `toml:"domain"`
	Task               *string `toml:"task"`
	Function           *string `toml:"fun"`
	MaxReductionRounds *uint   `toml:"max-reduction-rounds"`
	NoColorize         *bool   `toml:"no-colorize"`
	Verbose            *bool   `toml:"verbose"`
	LogAI              *bool   `toml:"ai-logging"`
}

// loadConfig reads the TOML file at path and applies every option that was
// not set explicitly on the command line.
func loadConfig(path string, explicit map[string]bool) error {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("%s: unknown option %q", path, undecoded[0].String())
	}

	setString := func(name string, dst *string, src *string) {
		if src != nil && !explicit[name] {
			*dst = *src
		}
	}
	setBool := func(name string, dst *bool, src *bool) {
		if src != nil && !explicit[name] {
			*dst = *src
		}
	}

	setString("domain", &opts.domain, cfg.Domain)
	setString("task", &opts.task, cfg.Task)
	setString("fun", &opts.function, cfg.Function)
	if cfg.MaxReductionRounds != nil && !explicit["max-reduction-rounds"] {
		opts.maxReductionRounds = *cfg.MaxReductionRounds
	}
	setBool("no-colorize", &opts.noColorize, cfg.NoColorize)
	setBool("verbose", &opts.verbose, cfg.Verbose)
	setBool("ai-logging", &opts.logai, cfg.LogAI)
	return nil
}
