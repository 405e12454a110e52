package config

import (
	"reflect"
	"strings"

	"record-manager/core/dataset"
	"record-manager/core/logger"
	"record-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Datasets holds the locations of the primary and secondary record sets.
	Datasets dataset.Config `mapstructure:"datasets"`
	// Export holds configuration for the rewrite and chunked export pipeline.
	Export ExportConfig `mapstructure:"export"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the optional object storage mirror.
	Storage storage.Config `mapstructure:"storage"`
}

// ExportConfig holds configuration for the rewrite engine and the optional
// reduced-column chunked export.
type ExportConfig struct {
	// Enabled toggles the chunked export alongside the full rewrite.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Dir is the directory chunk files are written into.
	Dir string `mapstructure:"dir" default:"./export"`
	// ChunkSize is the number of rows per chunk file.
	ChunkSize int `mapstructure:"chunk_size" default:"100"`
	// Fields is the comma-separated field subset carried by chunk files.
	Fields string `mapstructure:"fields" default:"id,name,email"`
	// Workers is the fixed size of the rewrite task pool.
	Workers int `mapstructure:"workers" default:"4"`
}

// FieldList returns the configured chunk field subset as a slice.
func (c ExportConfig) FieldList() []string {
	parts := strings.Split(c.Fields, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. EXPORT_CHUNK_SIZE -> export.chunk_size)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
