// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/darray-cli/darray/constant"
	"github.com/darray-cli/darray/filesystem"
	"github.com/darray-cli/darray/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// FileType is the serialization format of the configuration file.
const FileType = "toml"

// Setup initializes the global configuration state: factory defaults, environment bindings and the optional config file.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType(FileType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, name := range EnvExposed {
		// viper casts env strings by the default's type and cannot split int lists
		if _, ok := Default[name].Value.([]int); !ok {
			viper.MustBindEnv(name)
		}
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read config: %w", err)
	}

	return mergeIntListEnv()
}

// mergeIntListEnv parses the environment variables of int list keys and places
// them above the config file, so that only flags take precedence over them.
func mergeIntListEnv() error {
	for _, name := range EnvExposed {
		field := Default[name]
		if _, ok := field.Value.([]int); !ok {
			continue
		}

		raw, ok := os.LookupEnv(field.Env())
		if !ok {
			continue
		}

		ints, err := ParseInts(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", field.Env(), err)
		}

		if err := viper.MergeConfigMap(nested(name, ints)); err != nil {
			return err
		}
	}

	return nil
}

// nested turns a dotted key into the nested map viper merges config from.
func nested(name string, value any) map[string]any {
	path := strings.Split(name, ".")

	m := map[string]any{path[len(path)-1]: value}
	for i := len(path) - 2; i >= 0; i-- {
		m = map[string]any{path[i]: m}
	}

	return m
}

// ParseInts parses a list of integers separated by commas or whitespace.
// Surrounding brackets are accepted, so "[1, 2, 3]", "1,2,3" and "1 2 3" are equal.
func ParseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	ints := make([]int, 0, len(parts))
	for _, part := range parts {
		parsed, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", part)
		}
		ints = append(ints, parsed)
	}

	return ints, nil
}

// Path returns the location of the configuration file, whether or not it exists.
func Path() string {
	return filepath.Join(where.Config(), constant.App+"."+FileType)
}
