package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// DataDir is where CSV files, the sort log, and generated output live.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	// DefaultAlgorithm is the sort used by the shell's sort command.
	DefaultAlgorithm string `mapstructure:"default_algorithm" yaml:"default_algorithm"`
	// SchemaFile optionally overrides the built-in column classification.
	SchemaFile string `mapstructure:"schema_file" yaml:"schema_file"`
	// SampleDisplayRows caps how many rows commands print to the terminal.
	SampleDisplayRows int `mapstructure:"sample_display_rows" yaml:"sample_display_rows"`
	// RandomSeed fixes the random source when nonzero; 0 seeds from time.
	RandomSeed int64 `mapstructure:"random_seed" yaml:"random_seed"`
	// ImagePath is the default image for ASCII conversion.
	ImagePath string `mapstructure:"image_path" yaml:"image_path"`
}

// Save writes the configuration to cfgFile, or ~/.penguin/config.yaml
// when empty, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".penguin")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("PENGUIN")
	v.AutomaticEnv()

	v.SetDefault("data_dir", "./data")
	v.SetDefault("default_algorithm", "merge")
	v.SetDefault("schema_file", "")
	v.SetDefault("sample_display_rows", 20)
	v.SetDefault("random_seed", 0)
	v.SetDefault("image_path", "900.jpeg")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".penguin")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
