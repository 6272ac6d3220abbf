package config

import (
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Credentials holds the resolved Blackboard REST application credentials.
type Credentials struct {
	Host           string `koanf:"host" validate:"required,url"`
	Key            string `koanf:"key" validate:"required"`
	Secret         string `koanf:"secret" validate:"required"`
	TimeoutSeconds int    `koanf:"timeout_seconds" default:"60" validate:"gte=1"`
}

var validate = validator.New()

// Resolve builds Credentials with precedence CLI flags > environment
// (BB_HOST / BB_KEY / BB_SECRET) > TOML config file. The config file may
// carry the values in a [blackboard] table or at the top level.
func Resolve(flagHost, flagKey, flagSecret, configPath string) (*Credentials, error) {
	k := koanf.New(".")

	if configPath != "" {
		fileK := koanf.New(".")
		if err := fileK.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", configPath)
		}
		if sub := fileK.Cut("blackboard"); len(sub.Keys()) > 0 {
			fileK = sub
		}
		if err := k.Merge(fileK); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	// Environment overrides the config file.
	err := k.Load(env.Provider("BB_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BB_"))
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	creds := &Credentials{}
	if err := defaults.Set(creds); err != nil {
		return nil, errors.WithStack(err)
	}

	creds.Host = strings.TrimRight(firstNonEmpty(flagHost, k.String("host")), "/")
	creds.Key = firstNonEmpty(flagKey, k.String("key"))
	creds.Secret = firstNonEmpty(flagSecret, k.String("secret"))
	if k.Exists("timeout_seconds") {
		creds.TimeoutSeconds = k.Int("timeout_seconds")
	}

	if err := validate.Struct(creds); err != nil {
		return nil, errors.Wrap(err, "missing credentials: provide host, key, and secret via flags, BB_* environment variables, or a TOML config file")
	}

	return creds, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
