// Package configuration merges parameters from config files, environment variables and command line flags.
package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
//
// All keys are stored lower-cased, lookups are case-insensitive.
type Configuration struct {
	config  *koanf.Koanf
	flagSet *flag.FlagSet
	// boundParameters keeps track of all parameters that were bound using the BindParameters function.
	boundParameters map[string]*BoundParameter
}

// New returns a new configuration that defines its parameters on the given FlagSet.
func New(flagSet *flag.FlagSet) *Configuration {
	return &Configuration{
		config:          koanf.New("."),
		flagSet:         flagSet,
		boundParameters: make(map[string]*BoundParameter),
	}
}

// NewUnsortedFlagSet creates a FlagSet that prints its flags in definition order.
func NewUnsortedFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, errorHandling)
	flagSet.SortFlags = false

	return flagSet
}

// FlagSet returns the FlagSet the parameters are defined on.
func (c *Configuration) FlagSet() *flag.FlagSet {
	return c.flagSet
}

// LoadFile loads parameters from a JSON or YAML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return ierrors.Wrapf(err, "unable to load config file '%s'", filePath)
	}

	var parser koanf.Parser
	switch filepath.Ext(filePath) {
	case ".json":
		parser = &JSONLowerParser{}
	case ".yaml", ".yml":
		parser = &YAMLLowerParser{}
	default:
		return ierrors.Wrapf(ErrUnknownConfigFormat, "'%s'", filePath)
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "unable to parse config file '%s'", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from the FlagSet including default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet() error {
	return c.config.Load(lowerPosflagProvider(c.flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars, "_" separates the levels of a key.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Set sets the value of the given key.
func (c *Configuration) Set(key string, value interface{}) error {
	return c.config.Set(strings.ToLower(key), value)
}

// Exists returns true if the given key is set.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

// Get returns the raw value of the given key.
func (c *Configuration) Get(key string) interface{} {
	return c.config.Get(strings.ToLower(key))
}

// String returns the string value of the given key.
func (c *Configuration) String(key string) string {
	return c.config.String(strings.ToLower(key))
}

// Strings returns the []string value of the given key.
func (c *Configuration) Strings(key string) []string {
	return c.config.Strings(strings.ToLower(key))
}

// Bool returns the bool value of the given key.
func (c *Configuration) Bool(key string) bool {
	return c.config.Bool(strings.ToLower(key))
}

// Int returns the int value of the given key.
func (c *Configuration) Int(key string) int {
	return c.config.Int(strings.ToLower(key))
}

// UnmarshalKey unmarshals the value of the given key into out, matching the "json" tags of out.
func (c *Configuration) UnmarshalKey(key string, out interface{}) error {
	if err := c.config.UnmarshalWithConf(strings.ToLower(key), out, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return ierrors.Wrapf(err, "unable to unmarshal config key '%s'", key)
	}

	return nil
}

// All returns the flattened map of all loaded keys.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}
