// Copyright (C) 2025 TheLionCoder
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package config loads operational settings the CLI flags do not expose.
package config

import (
	"reflect"
	"strings"

	"github.com/spf13/viper"

	"github.com/thelioncoder/csvsplit/internal/filereader"
	"github.com/thelioncoder/csvsplit/internal/splitter"
)

// Config aggregates configuration for the application.
type Config struct {
	Reader  ReaderConfig  `mapstructure:"reader"`
	Writer  WriterConfig  `mapstructure:"writer"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ReaderConfig struct {
	// BufferSize is the input read buffer in bytes.
	BufferSize int `mapstructure:"buffer_size"`
}

type WriterConfig struct {
	// BufferSize is the write buffer per output file in bytes.
	BufferSize int `mapstructure:"buffer_size"`
}

type LoggingConfig struct {
	// Debug forces debug-level logging without the DEBUG env variable.
	Debug bool `mapstructure:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Reader: ReaderConfig{BufferSize: filereader.DefaultBufferSize},
		Writer: WriterConfig{BufferSize: splitter.DefaultWriterBufferSize},
	}
}

// Load reads configuration from an optional config file and environment
// variables. Environment variables use the prefix "CSVSPLIT" and the dot
// character in keys is replaced by an underscore. For example,
// "writer.buffer_size" becomes "CSVSPLIT_WRITER_BUFFER_SIZE".
func Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("CSVSPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v, cfg)
	_ = v.ReadInConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindEnvs registers all keys within cfg so that viper will look up
// corresponding environment variables when unmarshalling.
func bindEnvs(v *viper.Viper, cfg any, parts ...string) {
	val := reflect.ValueOf(cfg)
	typ := reflect.TypeOf(cfg)
	if typ.Kind() == reflect.Ptr {
		val = val.Elem()
		typ = typ.Elem()
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" {
			tag = strings.ToLower(f.Name)
		}
		key := append(parts, tag)
		if f.Type.Kind() == reflect.Struct {
			bindEnvs(v, val.Field(i).Interface(), key...)
			continue
		}
		_ = v.BindEnv(strings.Join(key, "."))
	}
}
