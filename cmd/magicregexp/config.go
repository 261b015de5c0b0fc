package main

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/pkg/errors"
)

const envPrefix = "MAGICREGEXP__"

// settings are the defaults that can come from the environment, e.g.
// MAGICREGEXP__LOG_LEVEL=debug.
type settings struct {
	LogLevel string `koanf:"log_level"`
}

func loadSettings() (*settings, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env")
	}

	s := &settings{LogLevel: "info"}
	if err := k.Unmarshal("", s); err != nil {
		return nil, errors.Wrap(err, "unmarshal env")
	}
	return s, nil
}
