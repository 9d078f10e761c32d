package main

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/store"
	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/rcol"
)

// envPrefix namespaces environment overrides: RCOL_LOG_LEVEL sets log.level.
const envPrefix = "RCOL"

// Config is the full rcolctl configuration.
type Config struct {
	// Log configures the zap logger.
	Log LogConfig `mapstructure:"log"`
	// Parse configures decoding.
	Parse ParseConfig `mapstructure:"parse"`
	// Store selects and configures the resource store.
	Store StoreConfig `mapstructure:"store"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `mapstructure:"level" default:"warn"`
	// Format is console or json.
	Format string `mapstructure:"format" default:"console"`
	// File, when set, sends logs to a rotated file instead of stderr.
	File string `mapstructure:"file" default:""`
	// MaxSizeMB is the size at which the log file rotates.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"10"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `mapstructure:"max_backups" default:"3"`
	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `mapstructure:"max_age_days" default:"7"`
	// Compress gzips rotated files.
	Compress bool `mapstructure:"compress" default:"false"`
}

// ParseConfig holds decoding settings.
type ParseConfig struct {
	// Mode is the default validation mode: lenient or strict.
	Mode string `mapstructure:"mode" default:"lenient"`
	// StrictTags pins chunk tags (comma separated hex) to strict mode.
	StrictTags string `mapstructure:"strict_tags" default:""`
	// LenientTags pins chunk tags (comma separated hex) to lenient mode.
	LenientTags string `mapstructure:"lenient_tags" default:""`
	// KeyOrder is the field order of container keys: TGI, ITG or IGT.
	KeyOrder string `mapstructure:"key_order" default:"TGI"`
}

// StoreConfig selects a resource store backend.
type StoreConfig struct {
	// Backend is memory, bolt or object.
	Backend string `mapstructure:"backend" default:"bolt"`
	// BoltPath is the database file of the bolt backend.
	BoltPath string `mapstructure:"bolt_path" default:"rcol.db"`
	// Object configures the object backend.
	Object store.ObjectConfig `mapstructure:"object"`
}

// LoadConfig reads defaults, an optional config file, a .env file next to
// it (or in the working directory), and RCOL_* environment variables, in
// increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	envPath := ".env"
	if path != "" {
		envPath = filepath.Join(filepath.Dir(path), ".env")
	}
	// Missing .env files are normal.
	_ = godotenv.Load(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if _, err := c.Options(); err != nil {
		return nil, err
	}
	return &c, nil
}

func defaultConfig() *Config {
	v := viper.New()
	bindValues(v, Config{}, "")
	var c Config
	_ = v.Unmarshal(&c)
	return &c
}

// bindValues walks the struct and registers each mapstructure key with its
// default tag value so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

// Options converts the parse settings into decoder options.
func (c *Config) Options() (*rcol.Options, error) {
	order, err := tgi.ParseOrder(c.Parse.KeyOrder)
	if err != nil {
		return nil, err
	}
	switch c.Parse.Mode {
	case "strict", "lenient", "":
	default:
		return nil, fmt.Errorf("parse.mode %q: want strict or lenient", c.Parse.Mode)
	}

	policy := codec.Policy{Default: codec.ParseMode(c.Parse.Mode)}
	for _, pin := range []struct {
		list string
		mode codec.Mode
	}{
		{c.Parse.StrictTags, codec.Strict},
		{c.Parse.LenientTags, codec.Lenient},
	} {
		tags, err := parseTags(pin.list)
		if err != nil {
			return nil, err
		}
		for _, tag := range tags {
			policy = policy.With(tag, pin.mode)
		}
	}
	return &rcol.Options{Policy: policy, KeyOrder: order}, nil
}

func parseTags(s string) ([]uint32, error) {
	var out []uint32
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(f), "0x"), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("chunk tag %q: %w", f, err)
		}
		out = append(out, uint32(n))
	}
	return out, nil
}
